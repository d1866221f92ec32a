package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/scenes/internal/errors"
	"github.com/allisson/scenes/internal/scenes/http/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticationMiddleware_Success(t *testing.T) {
	mockResolver := &mocks.MockResolver{}
	logger := createTestLogger()

	credential := "access-token-xyz789"
	mockResolver.On("Resolve", mock.Anything, credential).Return("user123", nil).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockResolver, logger))
	router.GET("/test", func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		require.True(t, ok, "identity should be in context")
		assert.Equal(t, "user123", identity)

		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+credential)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockResolver.AssertExpectations(t)
}

func TestAuthenticationMiddleware_Success_CaseInsensitiveBearer(t *testing.T) {
	testCases := []struct {
		name   string
		prefix string
	}{
		{"lowercase_bearer", "bearer "},
		{"uppercase_BEARER", "BEARER "},
		{"mixedcase_BeArEr", "BeArEr "},
		{"standard_Bearer", "Bearer "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockResolver := &mocks.MockResolver{}
			logger := createTestLogger()

			credential := "access-token-xyz789"
			mockResolver.On("Resolve", mock.Anything, credential).Return("user123", nil).Once()

			router := gin.New()
			router.Use(AuthenticationMiddleware(mockResolver, logger))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", tc.prefix+credential)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			mockResolver.AssertExpectations(t)
		})
	}
}

func TestAuthenticationMiddleware_Error_MissingAuthorizationHeader(t *testing.T) {
	mockResolver := &mocks.MockResolver{}
	logger := createTestLogger()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockResolver, logger))
	router.GET("/test", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockResolver.AssertNotCalled(t, "Resolve")
}

func TestAuthenticationMiddleware_Error_MalformedAuthorizationHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{"missing_bearer_prefix", "access-token-xyz789"},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"empty_credential", "Bearer "},
		{"prefix_only", "Bearer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockResolver := &mocks.MockResolver{}
			logger := createTestLogger()

			router := gin.New()
			router.Use(AuthenticationMiddleware(mockResolver, logger))
			router.GET("/test", func(c *gin.Context) {
				t.Fatal("handler should not be reached")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", tc.header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			mockResolver.AssertNotCalled(t, "Resolve")
		})
	}
}

func TestAuthenticationMiddleware_Error_RejectedCredential(t *testing.T) {
	mockResolver := &mocks.MockResolver{}
	logger := createTestLogger()

	mockResolver.On("Resolve", mock.Anything, "expired-token").
		Return("", apperrors.Wrap(apperrors.ErrUnauthorized, "identity provider rejected credential")).
		Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockResolver, logger))
	router.GET("/test", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockResolver.AssertExpectations(t)
}
