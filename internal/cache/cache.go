// Package cache stores downloaded roster PDFs so repeated extractions of
// the same document do not re-hit the source host.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory and disk layers
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a document URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "rosterscan:v1:" + hex.EncodeToString(hash[:])
}
