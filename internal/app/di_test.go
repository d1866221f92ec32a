package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/scenes/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:              "localhost",
		ServerPort:              8080,
		StorageDriver:           "memory",
		IdentityProviderURL:     "https://identity.example.com/v1/me",
		IdentityProviderTimeout: 10 * time.Second,
		LogLevel:                "error",
		CORSEnabled:             true,
		MetricsEnabled:          false,
		MetricsNamespace:        "scenes",
		MetricsPort:             8081,
	}
}

func TestContainer_Logger(t *testing.T) {
	container := NewContainer(testConfig())

	logger := container.Logger()
	require.NotNil(t, logger)

	// Same instance on repeated access.
	assert.Same(t, logger, container.Logger())
}

func TestContainer_RecordStore(t *testing.T) {
	t.Run("memory driver", func(t *testing.T) {
		container := NewContainer(testConfig())

		store, err := container.RecordStore()
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		cfg := testConfig()
		cfg.StorageDriver = "redis"
		container := NewContainer(cfg)

		store, err := container.RecordStore()
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestContainer_SceneUseCase(t *testing.T) {
	container := NewContainer(testConfig())

	useCase, err := container.SceneUseCase()
	require.NoError(t, err)
	assert.NotNil(t, useCase)
}

func TestContainer_HTTPServer(t *testing.T) {
	container := NewContainer(testConfig())

	server, err := container.HTTPServer()
	require.NoError(t, err)
	assert.NotNil(t, server)
	assert.NotNil(t, server.GetHandler())
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainer_MetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, metricsServer)

	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_Shutdown(t *testing.T) {
	container := NewContainer(testConfig())

	_, err := container.SceneUseCase()
	require.NoError(t, err)

	assert.NoError(t, container.Shutdown(context.Background()))
}
