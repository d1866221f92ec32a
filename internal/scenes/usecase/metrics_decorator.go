package usecase

import (
	"context"
	"time"

	"github.com/allisson/scenes/internal/metrics"
	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// sceneUseCaseWithMetrics decorates SceneUseCase with metrics instrumentation.
type sceneUseCaseWithMetrics struct {
	next    SceneUseCase
	metrics metrics.BusinessMetrics
}

// NewSceneUseCaseWithMetrics wraps a SceneUseCase with metrics recording.
func NewSceneUseCaseWithMetrics(useCase SceneUseCase, m metrics.BusinessMetrics) SceneUseCase {
	return &sceneUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Fetch records metrics for scene fetch operations.
func (s *sceneUseCaseWithMetrics) Fetch(
	ctx context.Context,
	identity string,
) (scenesDomain.ScenesPayload, error) {
	start := time.Now()
	payload, err := s.next.Fetch(ctx, identity)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "scenes", "scenes_fetch", status)
	s.metrics.RecordDuration(ctx, "scenes", "scenes_fetch", time.Since(start), status)

	return payload, err
}

// Save records metrics for scene save operations.
func (s *sceneUseCaseWithMetrics) Save(
	ctx context.Context,
	identity string,
	payload scenesDomain.ScenesPayload,
) error {
	start := time.Now()
	err := s.next.Save(ctx, identity, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "scenes", "scenes_save", status)
	s.metrics.RecordDuration(ctx, "scenes", "scenes_save", time.Since(start), status)

	return err
}
