package service

// OTPGenerator produces short-lived numeric verification codes.
type OTPGenerator interface {
	// Generate returns the plaintext code for delivery and its hash for storage.
	Generate() (code string, hash string, err error)
	// Verify reports whether the presented code matches the stored hash.
	Verify(hash, code string) bool
}
