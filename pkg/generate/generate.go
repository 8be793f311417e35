// Package generate produces random password suggestions.
package generate

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// MinLength is the shortest password this package will produce.
const MinLength = 8

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()-_=+[]{}<>?"
)

// pools each contribute at least one character to every password.
var pools = []string{lower, upper, digits, symbols}

// Password returns a cryptographically random password of the given
// length with at least one character from each class, so the result
// always rates as strong.
func Password(length int) (string, error) {
	if length < MinLength {
		return "", errors.Errorf("length must be at least %d", MinLength)
	}

	all := lower + upper + digits + symbols

	out := make([]byte, 0, length)
	for _, pool := range pools {
		c, err := pick(pool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// shuffle so the class-guaranteed characters are not always first
	for i := len(out) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func pick(pool string) (byte, error) {
	i, err := randInt(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}
	return int(v.Int64()), nil
}
