package domain

import (
	"github.com/allisson/scenes/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures.
var (
	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// Derived encryption keys must be exactly 32 bytes (256 bits) for
	// AES-256-GCM. This error is returned when a key of incorrect length
	// is provided to the cipher.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrDecryptionFailed indicates a sealed blob could not be opened.
	//
	// This error can occur due to:
	//   - Wrong decryption key used (record written under a different identity)
	//   - Blob has been tampered with (authentication failure)
	//   - Truncated or malformed transport encoding
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.New("decryption failed")
)
