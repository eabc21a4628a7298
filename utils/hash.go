package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"
)

// HashBytes returns the lowercase hex SHA-256 digest of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// BuildObjectKey derives the content-addressed store key for a file:
// the digest of its bytes plus the extension of its declared name.
// Identical bytes always map to the identical key.
func BuildObjectKey(digest, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	return digest + "." + ext
}
