package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// Alphanumeric only. Credentials end up in query strings and shell one-liners,
// so we avoid characters that need escaping.
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a cryptographically secure random alphanumeric string
// of the given length.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("cryptox: length must be positive, got %d", length)
	}
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to read random source: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// MustRandomString is like RandomString but panics on error. Use only where a
// failing system random source is unrecoverable anyway.
func MustRandomString(length int) string {
	s, err := RandomString(length)
	if err != nil {
		panic(err)
	}
	return s
}

// ConstantTimeEquals compares two strings without leaking the position of the
// first differing byte. Length differences still short-circuit, which is fine
// for fixed-length digests.
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
