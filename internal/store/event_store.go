package store

import (
	"encoding/json"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/seed"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

const (
	eventsKey        = "featuredEvents"
	eventsVersionKey = "featuredEvents_version"
)

// EventStore provides CRUD, ordering and feature-filtering for featured
// events. It is the sole writer of the featuredEvents keys.
type EventStore struct {
	opts Options
}

// NewEventStore builds the store. Call Initialize once at startup to seed
// an empty or outdated installation.
func NewEventStore(opts Options) *EventStore {
	return &EventStore{opts: opts.withDefaults()}
}

// Initialize seeds the collection with bundled fixtures when the key is
// absent or the stored version marker does not match the current fixture
// version. The overwrite is destructive: a version bump discards any
// edits made under the previous version.
func (s *EventStore) Initialize() error {
	_, exists := s.opts.KV.Get(eventsKey)
	version, _ := s.opts.KV.Get(eventsVersionKey)
	if exists && version == seed.EventsVersion {
		return nil
	}

	raw, err := json.Marshal(seed.Events())
	if err != nil {
		return err
	}
	if err := s.opts.KV.Set(eventsKey, string(raw)); err != nil {
		return err
	}
	if err := s.opts.KV.Set(eventsVersionKey, seed.EventsVersion); err != nil {
		return err
	}
	s.opts.Logger.Info("event fixtures loaded", zap.String("version", seed.EventsVersion))
	return nil
}

// Load returns the full collection. Missing or corrupt data yields an
// empty slice, never an error.
func (s *EventStore) Load() []models.Event {
	raw, ok := s.opts.KV.Get(eventsKey)
	if !ok {
		return []models.Event{}
	}
	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.opts.Logger.Error("corrupt event collection, treating as empty", zap.Error(err))
		return []models.Event{}
	}
	return events
}

// Save writes the full collection atomically under the single events key
// and publishes a change signal on success. A kvstore.ErrQuotaExceeded is
// passed through so callers can surface an actionable capacity warning;
// any other failure is logged and returned with prior state left intact.
func (s *EventStore) Save(events []models.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		s.opts.Logger.Error("encode event collection", zap.Error(err))
		return err
	}
	if err := s.opts.KV.Set(eventsKey, string(raw)); err != nil {
		if errors.Is(err, kvstore.ErrQuotaExceeded) {
			s.opts.Logger.Warn("storage quota exceeded saving events")
		} else {
			s.opts.Logger.Error("persist event collection", zap.Error(err))
		}
		s.opts.Observe("events", "save", err)
		return err
	}
	s.opts.Observe("events", "save", nil)
	s.opts.Bus.Publish(bus.TopicEvents)
	return nil
}

// LoadFeatured returns the events visible on the public carousel: featured
// and published, ordered by the explicit order field when both sides have
// one (a missing order sorts last), falling back to eventDate when order
// is absent on either side. The sort is stable.
func (s *EventStore) LoadFeatured() []models.Event {
	events := s.Load()

	visible := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Visible() {
			visible = append(visible, e)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		switch {
		case a.Order != nil && b.Order != nil:
			return *a.Order < *b.Order
		case a.Order != nil:
			return true
		case b.Order != nil:
			return false
		}
		// Legacy entries without an order fall back to date ordering.
		// Dates are validated ISO YYYY-MM-DD strings, so comparing them
		// lexically matches chronological order.
		switch {
		case a.EventDate != "" && b.EventDate != "":
			return a.EventDate < b.EventDate
		case a.EventDate != "":
			return true
		default:
			return false
		}
	})
	return visible
}

// Create appends a new event with a fresh identity, stamped timestamps and
// order equal to the current collection length.
func (s *EventStore) Create(input models.Event) (models.Event, error) {
	events := s.Load()

	now := s.opts.Now()
	input.ID = s.opts.NewID()
	input.CreatedAt = now
	input.UpdatedAt = now
	order := len(events)
	input.Order = &order

	events = append(events, input)
	if err := s.Save(events); err != nil {
		return models.Event{}, err
	}
	return input, nil
}

// Update merges the patch over the event with the given id and refreshes
// its updatedAt stamp. A missing id is a benign miss reported as
// (nil, nil); the caller decides what to surface.
func (s *EventStore) Update(id string, patch models.EventPatch) (*models.Event, error) {
	events := s.Load()
	for i := range events {
		if events[i].ID != id {
			continue
		}
		patch.Apply(&events[i])
		events[i].UpdatedAt = s.opts.Now()
		if err := s.Save(events); err != nil {
			return nil, err
		}
		updated := events[i]
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the event with the given id. The bool reports whether
// anything was removed.
func (s *EventStore) Delete(id string) (bool, error) {
	events := s.Load()
	filtered := events[:0:0]
	for _, e := range events {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(events) {
		return false, nil
	}
	if err := s.Save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Reorder persists the collection in the given sequence, reassigning each
// event's order to its positional index. This is the only path that
// re-densifies the order invariant (dense, 0-based).
func (s *EventStore) Reorder(ordered []models.Event) error {
	now := s.opts.Now()
	for i := range ordered {
		idx := i
		ordered[i].Order = &idx
		ordered[i].UpdatedAt = now
	}
	return s.Save(ordered)
}

// ToggleFeatured flips the featured flag of the event with the given id.
func (s *EventStore) ToggleFeatured(id string) (*models.Event, error) {
	return s.toggle(id, func(e models.Event) models.EventPatch {
		next := !e.Featured
		return models.EventPatch{Featured: &next}
	})
}

// TogglePublished flips the published flag of the event with the given id.
func (s *EventStore) TogglePublished(id string) (*models.Event, error) {
	return s.toggle(id, func(e models.Event) models.EventPatch {
		next := !e.Published
		return models.EventPatch{Published: &next}
	})
}

func (s *EventStore) toggle(id string, patch func(models.Event) models.EventPatch) (*models.Event, error) {
	for _, e := range s.Load() {
		if e.ID == id {
			return s.Update(id, patch(e))
		}
	}
	return nil, nil
}
