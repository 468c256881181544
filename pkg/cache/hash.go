package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey returns the key for a rendered artifact. snapshotHash is the
// [Hash] of the encoded snapshot; format names the output ("svg", "json")
// and opts carries any renderer options that change the output bytes.
func ArtifactKey(snapshotHash, format string, opts ...string) string {
	return hashKey("artifact", snapshotHash, format, opts)
}
