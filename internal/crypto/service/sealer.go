package service

import (
	"encoding/base64"
	"strings"

	cryptoDomain "github.com/allisson/scenes/internal/crypto/domain"
)

// SealerService implements Sealer using AES-256-GCM and standard base64 as
// the transport encoding. The sealed blob layout is nonce (12 bytes) followed
// by ciphertext with the 16-byte authentication tag appended, base64-encoded
// as a single string.
type SealerService struct{}

// NewSealer creates a new SealerService.
func NewSealer() *SealerService {
	return &SealerService{}
}

// Seal encrypts plaintext under key and returns the transport-encoded blob.
func (s *SealerService) Seal(plaintext, key []byte) (string, error) {
	aead, err := NewAESGCM(key)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := aead.Encrypt(plaintext)
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open decodes a sealed blob and decrypts it with key. Any framing,
// decoding, or authentication failure yields ErrDecryptionFailed; no partial
// plaintext is ever returned.
func (s *SealerService) Open(blob string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	// Need at least a full nonce plus the GCM tag.
	if len(raw) < cryptoDomain.NonceSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	nonce := raw[:cryptoDomain.NonceSize]
	ciphertext := raw[cryptoDomain.NonceSize:]

	aead, err := NewAESGCM(key)
	if err != nil {
		return nil, err
	}

	return aead.Decrypt(ciphertext, nonce)
}

// IsEncrypted classifies a stored record value as sealed blob versus legacy
// plaintext JSON: anything that does not start with '{' is treated as
// encrypted. Purely syntactic; it picks a decode path and never asserts
// trust — the authentication tag does that.
func IsEncrypted(raw string) bool {
	return !strings.HasPrefix(raw, "{")
}
