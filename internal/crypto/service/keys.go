package service

import (
	"crypto/sha256"
	"encoding/hex"

	cryptoDomain "github.com/allisson/scenes/internal/crypto/domain"
)

// Key derivation for scene record storage.
//
// All three functions are pure: identical input always yields identical
// output, with no randomness or I/O. The same user identity therefore maps to
// the same storage slot and encryption key on every request, without the
// service ever persisting either.

// StorageKeyFor derives the current-generation backend lookup key for a user
// identity: the namespace prefix plus the first 32 lowercase hex characters
// of SHA-256(identity). The truncated digest keeps 128 bits, enough to make
// collisions negligible at this scale while keeping the identity
// non-reversible.
func StorageKeyFor(identity string) string {
	digest := sha256.Sum256([]byte(identity))
	return cryptoDomain.StorageKeyPrefix + hex.EncodeToString(digest[:])[:cryptoDomain.StorageKeyHashLength]
}

// LegacyStorageKeyFor derives the first-generation lookup key: the namespace
// prefix concatenated with the raw identity. Identity-leaking; kept only as a
// read-side fallback for records written before key hashing was introduced.
func LegacyStorageKeyFor(identity string) string {
	return cryptoDomain.StorageKeyPrefix + identity
}

// EncryptionKeyFor derives the AES-256 key for a user identity: the full
// SHA-256 digest of its UTF-8 bytes. The digest length matches the cipher's
// key size exactly, so no truncation or expansion is applied.
func EncryptionKeyFor(identity string) []byte {
	digest := sha256.Sum256([]byte(identity))
	return digest[:]
}
