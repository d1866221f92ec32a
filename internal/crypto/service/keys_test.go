package service

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageKeyFor(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, StorageKeyFor("user123"), StorageKeyFor("user123"))
	})

	t.Run("matches truncated sha256 digest", func(t *testing.T) {
		digest := sha256.Sum256([]byte("user123"))
		want := "scenes:" + hex.EncodeToString(digest[:])[:32]

		assert.Equal(t, want, StorageKeyFor("user123"))
	})

	t.Run("prefix plus 32 hex chars", func(t *testing.T) {
		key := StorageKeyFor("some-identity")

		assert.Len(t, key, len("scenes:")+32)
		assert.Regexp(t, `^scenes:[0-9a-f]{32}$`, key)
	})

	t.Run("distinct identities yield distinct keys", func(t *testing.T) {
		assert.NotEqual(t, StorageKeyFor("user123"), StorageKeyFor("user456"))
	})

	t.Run("does not contain the raw identity", func(t *testing.T) {
		assert.NotContains(t, StorageKeyFor("user123"), "user123")
	})
}

func TestLegacyStorageKeyFor(t *testing.T) {
	assert.Equal(t, "scenes:user123", LegacyStorageKeyFor("user123"))
	assert.Equal(t, "scenes:", LegacyStorageKeyFor(""))
}

func TestEncryptionKeyFor(t *testing.T) {
	t.Run("full sha256 digest sized for aes-256", func(t *testing.T) {
		key := EncryptionKeyFor("user123")

		digest := sha256.Sum256([]byte("user123"))
		assert.Equal(t, digest[:], key)
		assert.Len(t, key, 32)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, EncryptionKeyFor("user123"), EncryptionKeyFor("user123"))
	})

	t.Run("distinct identities yield distinct keys", func(t *testing.T) {
		assert.NotEqual(t, EncryptionKeyFor("user123"), EncryptionKeyFor("user456"))
	})
}
