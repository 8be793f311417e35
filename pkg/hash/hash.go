// Package hash turns vetted passwords into storable credential hashes.
package hash

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost factor used for new hashes.
const Cost = 12

// Password hashes plain with bcrypt.
func Password(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(b), nil
}

// Verify compares a bcrypt hash with a plaintext password.
func Verify(hashed, plain string) error {
	if hashed == "" {
		return errors.New("empty password hash")
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
