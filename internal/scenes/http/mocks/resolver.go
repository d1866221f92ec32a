// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResolver is a mock implementation of the identity Resolver for testing.
type MockResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method of Resolver.
func (m *MockResolver) Resolve(ctx context.Context, credential string) (string, error) {
	args := m.Called(ctx, credential)
	return args.String(0), args.Error(1)
}
