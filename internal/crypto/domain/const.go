// Package domain defines core cryptographic constants and errors for the
// per-user scene record encryption scheme.
package domain

// KeySize is the AES-256 key size in bytes.
const KeySize = 32

// NonceSize is the GCM nonce size in bytes (96 bits).
const NonceSize = 12

// StorageKeyPrefix namespaces all scene record keys in the backend.
const StorageKeyPrefix = "scenes:"

// StorageKeyHashLength is the number of lowercase hex characters of the
// SHA-256 digest kept in a current-generation storage key (128 bits).
const StorageKeyHashLength = 32
