package cache

import (
	"context"
	"time"
)

// Store is the interface for the query-result cache.
//
// Implementations must never surface backend failures to the caller:
// a failed write is skipped, a failed read is a miss, a failed flush is a
// no-op, each logged at warning level. The system stays correct (if
// slower) with no cache available at all.
type Store interface {
	// Set stores an encoded payload under key. A non-positive ttl stores
	// the entry without expiry. Overwrites any existing entry.
	Set(ctx context.Context, key string, payload string, ttl time.Duration)

	// Get retrieves the payload stored under key, if present and
	// unexpired.
	Get(ctx context.Context, key string) Lookup

	// FlushAll unconditionally removes every entry. Idempotent.
	FlushAll(ctx context.Context)

	// Close releases backend resources.
	Close() error
}

// Lookup is the outcome of a cache read: a hit carrying the stored
// payload, or a miss. Whether a hit's payload actually decodes is the
// repository's concern; a payload that fails to decode is treated there
// as corruption.
type Lookup struct {
	payload string
	found   bool
}

// Hit builds a lookup carrying a stored payload.
func Hit(payload string) Lookup {
	return Lookup{payload: payload, found: true}
}

// Miss builds an empty lookup.
func Miss() Lookup {
	return Lookup{}
}

// Payload returns the stored payload and whether the lookup was a hit.
func (l Lookup) Payload() (string, bool) {
	return l.payload, l.found
}
