// Package service provides the cryptographic services behind scene record
// storage: deterministic key derivation from user identities and authenticated
// encryption of record payloads into self-contained sealed blobs.
package service

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext and returns ciphertext (with the
	// authentication tag appended) and the freshly generated nonce.
	Encrypt(plaintext []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce, verifying the
	// authentication tag before returning plaintext.
	Decrypt(ciphertext, nonce []byte) ([]byte, error)
}

// Sealer converts byte payloads to and from the sealed blob transport format
// (base64 of nonce ++ ciphertext ++ tag) under a caller-supplied key.
type Sealer interface {
	// Seal encrypts plaintext under key and returns the transport-encoded blob.
	Seal(plaintext, key []byte) (string, error)

	// Open decodes and decrypts a sealed blob. It fails closed: on any
	// authentication or framing error no plaintext is returned.
	Open(blob string, key []byte) ([]byte, error)
}
