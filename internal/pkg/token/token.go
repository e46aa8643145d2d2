// Package token generates the opaque random identifiers used in public
// webhook URLs and account API keys.
package token

import (
	"crypto/rand"
	"errors"
)

// URL-safe alphabet, 64 characters so a random byte maps to exactly one
// character without modulo bias.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

const (
	SlugLength   = 12
	apiKeyPrefix = "key_"
	apiKeyLength = 13
)

var ErrInvalidLength = errors.New("token length must be positive")

// New returns a cryptographically random URL-safe string of length n.
func New(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[b&63]
	}
	return string(out), nil
}

// NewSlug returns a fresh webhook slug. Collisions are not checked here;
// the unique index on webhooks.slug is the backstop.
func NewSlug() (string, error) {
	return New(SlugLength)
}

// NewAPIKey returns a fresh account API key of the form "key_<random>".
func NewAPIKey() (string, error) {
	s, err := New(apiKeyLength)
	if err != nil {
		return "", err
	}
	return apiKeyPrefix + s, nil
}
