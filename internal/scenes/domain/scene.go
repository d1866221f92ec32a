// Package domain defines the core domain model for scene presets. A scene is
// a user-saved playlist + device + volume combination; the service stores the
// whole collection per user as one encrypted record.
package domain

import (
	"encoding/json"
)

// MaxScenes is the maximum number of scenes a single payload may contain.
const MaxScenes = 50

// MaxPayloadBytes is the maximum serialized size of a scenes payload (50 KiB).
const MaxPayloadBytes = 50 * 1024

// ScenesPayload is the unit of storage. Scene entries are kept as raw JSON:
// the service constrains only the overall count and byte size, and preserves
// the caller-supplied content and order verbatim, with no reordering or
// deduplication. Each entry carries an identifier, display name, target
// device, target playlist, and volume level, but none of those fields are
// interpreted here.
type ScenesPayload struct {
	Scenes []json.RawMessage `json:"scenes"`
}

// EmptyPayload returns a payload with an empty (non-nil) scene sequence, the
// canonical "no scenes" result.
func EmptyPayload() ScenesPayload {
	return ScenesPayload{Scenes: []json.RawMessage{}}
}
