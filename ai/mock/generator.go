package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// MockGenerator is a test double for ai.ResponseGenerator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateResponseFunc is called by GenerateResponse if set.
	// If nil, uses default deterministic behavior.
	GenerateResponseFunc func(ctx context.Context, query string, candidates []*core.SearchResult) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateResponse returns a deterministic summary built from the candidate names.
func (m *MockGenerator) GenerateResponse(ctx context.Context, query string, candidates []*core.SearchResult) (string, error) {
	m.callCount++

	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, query, candidates)
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Record.Name
	}
	return fmt.Sprintf("mock recommendation for %q: %s", query, strings.Join(names, ", ")), nil
}

// CallCount returns the number of times GenerateResponse was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateResponseFunc = nil
}
