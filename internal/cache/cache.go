package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for decision caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DecisionKey derives a cache key from a normalized narrative and the
// effective submission date. The date is part of the key because it changes
// validation and therefore routing.
func DecisionKey(normalized string, submissionDate string) string {
	h := sha256.New()
	h.Write([]byte(normalized))
	h.Write([]byte{0})
	h.Write([]byte(submissionDate))
	return "fnoltriage:v1:" + hex.EncodeToString(h.Sum(nil))
}
