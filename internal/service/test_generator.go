package service

import (
	"context"
	"fmt"
)

// TestGenerator is a deterministic generator for testing purposes
type TestGenerator struct {
	counter int
	calls   int
	err     error
}

// NewTestGenerator creates a new test generator
func NewTestGenerator() *TestGenerator {
	return &TestGenerator{}
}

// GenerateCode produces a deterministic 8-character code
func (g *TestGenerator) GenerateCode(ctx context.Context) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	g.counter++
	return fmt.Sprintf("test%04d", g.counter), nil
}

// Close performs cleanup
func (g *TestGenerator) Close() error {
	return nil
}

// Calls reports how many times GenerateCode has been invoked
func (g *TestGenerator) Calls() int {
	return g.calls
}

// FailWith makes subsequent GenerateCode calls return err
func (g *TestGenerator) FailWith(err error) {
	g.err = err
}
