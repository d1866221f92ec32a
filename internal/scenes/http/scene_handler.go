package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/scenes/internal/errors"
	"github.com/allisson/scenes/internal/httputil"
	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
	"github.com/allisson/scenes/internal/scenes/http/dto"
	scenesUseCase "github.com/allisson/scenes/internal/scenes/usecase"
	customValidation "github.com/allisson/scenes/internal/validation"
)

// SceneHandler handles HTTP requests for scene sync operations.
type SceneHandler struct {
	sceneUseCase scenesUseCase.SceneUseCase
	logger       *slog.Logger
}

// NewSceneHandler creates a new scene handler with required dependencies.
func NewSceneHandler(sceneUseCase scenesUseCase.SceneUseCase, logger *slog.Logger) *SceneHandler {
	return &SceneHandler{
		sceneUseCase: sceneUseCase,
		logger:       logger,
	}
}

// FetchHandler retrieves the caller's stored scenes.
// GET /api/scenes - Requires authentication.
// Returns 200 OK with the scene collection; an empty collection when nothing
// is stored or the stored record could not be read.
func (h *SceneHandler) FetchHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	payload, err := h.sceneUseCase.Fetch(c.Request.Context(), identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPayloadToResponse(payload))
}

// SaveHandler replaces the caller's stored scenes with the submitted snapshot.
// PUT /api/scenes - Requires authentication.
// Returns 200 OK on success, 400 for malformed or invalid payloads, and 413
// when the payload exceeds the size limit.
func (h *SceneHandler) SaveHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Reject obviously oversized bodies before reading them. The declared
	// length is a hint; the use case re-checks the serialized size.
	if c.Request.ContentLength > scenesDomain.MaxPayloadBytes {
		httputil.HandleErrorGin(c, scenesDomain.ErrPayloadTooLarge, h.logger)
		return
	}

	var req dto.SaveScenesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.sceneUseCase.Save(c.Request.Context(), identity, req.ToPayload()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SaveScenesResponse{OK: true})
}
