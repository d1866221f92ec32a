package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/scenes/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM.
//
// Security properties:
//   - 256-bit key size
//   - 12-byte nonce (96 bits, randomly generated per encryption)
//   - 16-byte authentication tag (128 bits, appended to ciphertext)
//
// Nonce uniqueness per encryption call is required for GCM security and is
// satisfied by fresh random generation on every Encrypt; nonces are never
// counter-based or reused across calls for the same key.
//
// Thread safety: the cipher instance is stateless and safe for concurrent use
// from multiple goroutines.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits). Returns ErrInvalidKeySize for
// any other length.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM.
//
// A unique 12-byte nonce is randomly generated for each encryption operation
// using crypto/rand. The nonce must be stored alongside the ciphertext for
// later decryption. The returned ciphertext includes the 16-byte
// authentication tag appended to the end.
func (a *AESGCMCipher) Encrypt(plaintext []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the provided nonce.
//
// The authentication tag is verified before any plaintext is returned; if
// verification fails the ciphertext has been tampered with or was produced
// under a different key, and ErrDecryptionFailed is returned.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
