package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware creates the CORS middleware for the scene sync API.
// Returns nil if CORS is disabled.
//
// The policy is deliberately wide open: any origin may call the API. Access
// control lives entirely in the Authorization header, which browsers only
// attach when the calling page holds a valid credential, so origin
// restrictions add nothing here. Preflight OPTIONS requests are answered
// with 200 for compatibility with clients that treat any non-2xx preflight
// response as a hard failure.
func createCORSMiddleware(enabled bool, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	logger.Info("CORS enabled", slog.String("policy", "allow all origins"))

	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Authorization",
			"Content-Type",
		},
		ExposeHeaders: []string{
			"X-Request-Id",
		},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}

	return cors.New(config)
}
