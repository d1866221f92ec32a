// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// MockSceneUseCase is a mock implementation of SceneUseCase for testing.
type MockSceneUseCase struct {
	mock.Mock
}

// Fetch mocks the Fetch method of SceneUseCase.
func (m *MockSceneUseCase) Fetch(ctx context.Context, identity string) (scenesDomain.ScenesPayload, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(scenesDomain.ScenesPayload), args.Error(1)
}

// Save mocks the Save method of SceneUseCase.
func (m *MockSceneUseCase) Save(ctx context.Context, identity string, payload scenesDomain.ScenesPayload) error {
	args := m.Called(ctx, identity, payload)
	return args.Error(0)
}
