package shortener

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/shortlabs/linkd/internal/validate"
)

const (
	// Base62 characters: 0-9, a-z, A-Z (case sensitive)
	base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultCodeLength is the length of generated codes unless configured otherwise
	DefaultCodeLength = 7
)

// RandomGenerator produces random codes over the base62 alphabet using
// crypto/rand. Calls are independent; collisions are rare and resolved by the
// store's uniqueness constraint at insertion.
type RandomGenerator struct {
	length int
}

// NewRandomGenerator creates a generator for codes of the given length
func NewRandomGenerator(length int) (*RandomGenerator, error) {
	if length < validate.MinCodeLength || length > validate.MaxCodeLength {
		return nil, fmt.Errorf("code length must be between %d and %d, got %d",
			validate.MinCodeLength, validate.MaxCodeLength, length)
	}
	return &RandomGenerator{length: length}, nil
}

// GenerateCode produces one random candidate code
func (g *RandomGenerator) GenerateCode(ctx context.Context) (string, error) {
	b := make([]byte, g.length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	// Map every byte into the alphabet instead of dropping out-of-range
	// bytes, so the code length is always preserved.
	for i := range b {
		b[i] = base62Chars[int(b[i])%len(base62Chars)]
	}

	return string(b), nil
}

// Close performs cleanup
func (g *RandomGenerator) Close() error {
	return nil
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)
