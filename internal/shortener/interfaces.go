package shortener

import (
	"context"
)

// Generator defines the interface for producing candidate short codes
type Generator interface {
	// GenerateCode produces one candidate code. Every candidate satisfies the
	// code validator; uniqueness is enforced at insertion, not here.
	GenerateCode(ctx context.Context) (string, error)

	// Close performs cleanup when the generator is no longer needed
	Close() error
}

// Config holds configuration for code generators
type Config struct {
	CodeLength int `json:"code_length"` // Length of generated codes, within the validator's bounds
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CodeLength: DefaultCodeLength,
	}
}
