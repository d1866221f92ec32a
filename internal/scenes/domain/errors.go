package domain

import (
	"fmt"

	"github.com/allisson/scenes/internal/errors"
)

// Scene payload error definitions.
var (
	// ErrMissingScenes indicates the payload lacks an array-typed scenes field.
	ErrMissingScenes = errors.Wrap(errors.ErrInvalidInput, "scenes field must be an array")

	// ErrTooManyScenes indicates the payload exceeds MaxScenes entries.
	ErrTooManyScenes = errors.Wrap(
		errors.ErrInvalidInput,
		fmt.Sprintf("payload must not contain more than %d scenes", MaxScenes),
	)

	// ErrPayloadTooLarge indicates the serialized payload exceeds MaxPayloadBytes.
	ErrPayloadTooLarge = errors.Wrap(
		errors.ErrPayloadTooLarge,
		fmt.Sprintf("payload must not exceed %d bytes", MaxPayloadBytes),
	)
)
