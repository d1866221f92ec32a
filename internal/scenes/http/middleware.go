package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/scenes/internal/errors"
	"github.com/allisson/scenes/internal/httputil"
	identityService "github.com/allisson/scenes/internal/identity/service"
)

// AuthenticationMiddleware provides authentication via Bearer credential in the
// Authorization header.
//
// The middleware:
// 1. Extracts the bearer credential from the Authorization header (case-insensitive)
// 2. Resolves the credential to a stable identity via the identity resolver
// 3. Stores the resolved identity in the request context
// 4. Allows downstream handlers to access the identity via GetIdentity()
//
// The raw credential is never stored, logged, or passed beyond the resolver
// call. Resolution happens on every request; no identity is cached between
// requests, so revocation at the identity provider takes effect immediately.
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Empty bearer credential → 401 Unauthorized
//   - Credential rejected by the identity provider → 401 Unauthorized
func AuthenticationMiddleware(
	resolver identityService.Resolver,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		// Parse Bearer credential (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		credential := authHeader[len(bearerPrefix):]
		if credential == "" {
			logger.Debug("authentication failed: empty bearer credential")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), credential)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
