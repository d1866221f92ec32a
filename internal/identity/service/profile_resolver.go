package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/allisson/scenes/internal/errors"
)

// maxProfileBodyBytes bounds how much of the provider's response is read.
const maxProfileBodyBytes = 1 << 20

// ProfileResolver implements Resolver against an HTTP profile ("who am I")
// endpoint that returns a JSON body with an "id" field, such as the Spotify
// Web API's /v1/me.
type ProfileResolver struct {
	client     *http.Client
	profileURL string
	logger     *slog.Logger
}

// NewProfileResolver creates a ProfileResolver for the given profile endpoint.
// The timeout bounds each outbound call end to end.
func NewProfileResolver(profileURL string, timeout time.Duration, logger *slog.Logger) *ProfileResolver {
	return &ProfileResolver{
		client:     &http.Client{Timeout: timeout},
		profileURL: profileURL,
		logger:     logger,
	}
}

// Resolve exchanges the bearer credential for the provider's user identifier.
func (r *ProfileResolver) Resolve(ctx context.Context, credential string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.profileURL, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to build profile request")
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("identity resolution failed: transport error", slog.Any("error", err))
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "identity provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.Debug("identity resolution failed: provider rejected credential",
			slog.Int("status_code", resp.StatusCode))
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "identity provider rejected credential")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBodyBytes))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "failed to read provider response")
	}

	var profile struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &profile); err != nil || profile.ID == "" {
		r.logger.Debug("identity resolution failed: malformed provider response")
		return "", apperrors.Wrap(apperrors.ErrUnauthorized, "malformed provider response")
	}

	return profile.ID, nil
}
