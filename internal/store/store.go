// Package store implements the durable content stores behind the CMS:
// featured events, staff (principal and teachers) and announcements. Each
// store owns its keys in the shared key-value store exclusively, writes
// full collections atomically under a single key, and publishes a change
// signal after every successful write. Reads never fail outward; corrupt
// or missing data degrades to an empty collection.
package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

// Options carries the injected collaborators shared by all stores. Zero
// fields get sensible defaults; KV is required.
type Options struct {
	KV     kvstore.Store
	Bus    *bus.Bus
	Logger *zap.Logger

	// Observe reports the outcome of each persistence operation, for
	// instrumentation. Nil disables reporting.
	Observe func(store, operation string, err error)

	// Now and NewID exist so tests can pin clocks and identities.
	Now   func() time.Time
	NewID func() string
}

func (o Options) withDefaults() Options {
	if o.Bus == nil {
		o.Bus = bus.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Observe == nil {
		o.Observe = func(string, string, error) {}
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}
