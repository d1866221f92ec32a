// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"

	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// ScenesResponse represents the stored scene collection in API responses.
// Scene objects are returned verbatim, in the order they were saved.
type ScenesResponse struct {
	Scenes []json.RawMessage `json:"scenes"`
}

// MapPayloadToResponse converts a domain payload to an API response.
func MapPayloadToResponse(payload scenesDomain.ScenesPayload) ScenesResponse {
	scenes := payload.Scenes
	if scenes == nil {
		scenes = []json.RawMessage{}
	}
	return ScenesResponse{Scenes: scenes}
}

// SaveScenesResponse confirms a successful save.
type SaveScenesResponse struct {
	OK bool `json:"ok"`
}
