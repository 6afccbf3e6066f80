package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"

	"voyago/internal/domain/service"
	"voyago/internal/errors"
)

const otpDigits = 6

// otpGenerator produces 6-digit numeric codes using crypto/rand and stores
// them as keyed hashes so a database leak does not expose live codes.
type otpGenerator struct {
	key []byte
}

// NewOTPGenerator is the constructor for otpGenerator. The key must stay
// stable across restarts or pending challenges become unverifiable.
func NewOTPGenerator(key string) (service.OTPGenerator, error) {
	if key == "" {
		return nil, errors.New("otp hash key must be provided")
	}

	return &otpGenerator{key: []byte(key)}, nil
}

// Generate returns a fresh 6-digit code and its hash for storage.
func (g *otpGenerator) Generate() (string, string, error) {
	upper := big.NewInt(1)
	for range otpDigits {
		upper.Mul(upper, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate otp")
	}

	code := n.String()
	for len(code) < otpDigits {
		code = "0" + code
	}

	return code, g.hash(code), nil
}

// Verify compares the presented code against the stored hash in constant time.
func (g *otpGenerator) Verify(hash, code string) bool {
	if hash == "" || code == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(hash), []byte(g.hash(code))) == 1
}

func (g *otpGenerator) hash(code string) string {
	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(code))

	return hex.EncodeToString(mac.Sum(nil))
}
