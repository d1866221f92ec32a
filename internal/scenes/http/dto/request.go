// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	scenesDomain "github.com/allisson/scenes/internal/scenes/domain"
)

// SaveScenesRequest contains the full scene collection to persist. The save is
// a snapshot replacement: the submitted list overwrites whatever was stored
// before, there is no per-scene merge.
type SaveScenesRequest struct {
	Scenes []json.RawMessage `json:"scenes"`
}

// Validate checks if the save scenes request is valid.
func (r *SaveScenesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scenes,
			validation.NotNil,
			validation.Length(0, scenesDomain.MaxScenes),
		),
	)
}

// ToPayload converts the request to a domain payload.
func (r *SaveScenesRequest) ToPayload() scenesDomain.ScenesPayload {
	return scenesDomain.ScenesPayload{Scenes: r.Scenes}
}
