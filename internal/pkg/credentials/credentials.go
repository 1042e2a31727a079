// Package credentials produces human-usable usernames and randomized
// passwords for newly approved accounts.
package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const (
	digits           = "0123456789"
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"

	// DefaultPasswordLength matches the length issued at account approval.
	DefaultPasswordLength = 12
)

// GenerateUsername derives a username candidate from a full name: all
// non-alphanumeric characters stripped, lowercased, with 3 random digits
// appended. Uniqueness is enforced by the store, not here; on a duplicate
// the caller is expected to generate a fresh candidate and retry.
func GenerateUsername(fullName string) (string, error) {
	var b strings.Builder
	for _, r := range fullName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	suffix, err := randomString(digits, 3)
	if err != nil {
		return "", fmt.Errorf("failed to generate username suffix: %w", err)
	}
	return b.String() + suffix, nil
}

// GeneratePassword draws length characters uniformly from letters, digits
// and a small symbol set using a cryptographically secure source. There is
// no composition guarantee beyond the alphabet itself.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}
	password, err := randomString(passwordAlphabet, length)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return password, nil
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}
