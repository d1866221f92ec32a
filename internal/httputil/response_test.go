package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/scenes/internal/errors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/scenes", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthorized",
			err:        apperrors.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "wrapped unauthorized",
			err:        apperrors.Wrap(apperrors.ErrUnauthorized, "identity resolution"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "invalid input",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "scenes field must be an array"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "payload too large",
			err:        apperrors.Wrap(apperrors.ErrPayloadTooLarge, "payload must not exceed 51200 bytes"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "payload_too_large",
		},
		{
			name:       "not found",
			err:        apperrors.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "unknown error maps to internal",
			err:        apperrors.New("backend connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantCode, response.Error)
		})
	}

	t.Run("internal error detail never leaks", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, apperrors.New("pq: connection refused at 10.0.0.5"), logger)

		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := testContext()

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := testContext()

	HandleBadRequestGin(c, apperrors.New("unexpected end of JSON input"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "unexpected end of JSON input", response.Message)
}
