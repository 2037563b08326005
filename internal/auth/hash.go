package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
)

// SaltSize is the number of random bytes generated per registration.
const SaltSize = 32

// GenerateSalt returns fresh cryptographically secure random bytes.
// A failure to obtain entropy is an internal error, never a fallback.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// HashPassword computes SHA-256 over the UTF-8 password bytes followed by
// the salt bytes. Deterministic: the same inputs always yield the same
// digest, so the login path can recompute and compare.
func HashPassword(password string, salt []byte) []byte {
	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	return h.Sum(nil)
}

// VerifyPassword recomputes the digest for the submitted password and
// compares it against the stored one in constant time.
func VerifyPassword(password string, salt, digest []byte) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(computed, digest) == 1
}
