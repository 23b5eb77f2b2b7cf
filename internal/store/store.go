// Package store persists triage decisions. The pipeline itself never
// touches storage; callers hand finished decisions to a Store, which
// assigns the record identity.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// ErrNotFound is returned when no record exists for an ID
var ErrNotFound = errors.New("record not found")

// Store persists decision records
type Store interface {
	// Save stores a decision and returns the full record with its
	// assigned ID and timestamp.
	Save(ctx context.Context, source string, decision model.Decision) (model.Record, error)

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (model.Record, error)

	// List returns the most recent records, newest first. A non-positive
	// limit returns everything.
	List(ctx context.Context, limit int) ([]model.Record, error)

	Close() error
}

// Record IDs are monotonic ULIDs so that lexicographic order follows
// creation order.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newRecordID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
