package service

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
