// Package auth implements credential hashing and JWT issuance/verification.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
)

const saltLength = 64

// HashPassword derives a keyed SHA-512 hash of the password using a fresh
// random salt as the HMAC key. The plaintext is never retained.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// VerifyPassword recomputes the keyed hash with the stored salt and compares
// it against the stored hash in constant time.
func VerifyPassword(password string, hash, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), hash)
}
