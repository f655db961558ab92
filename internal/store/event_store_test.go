package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/seed"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

// failingKV wraps a Store and fails every Set with the configured error.
type failingKV struct {
	kvstore.Store
	err error
}

func (f *failingKV) Set(key, value string) error { return f.err }

func newEventStore(t *testing.T, kv kvstore.Store) *EventStore {
	t.Helper()
	seq := 0
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return NewEventStore(Options{
		KV:  kv,
		Bus: bus.New(),
		Now: func() time.Time {
			seq++
			return base.Add(time.Duration(seq) * time.Second)
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("event-%d", seq)
		},
	})
}

func TestEventStoreSeedBootstrap(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newEventStore(t, kv)
	require.NoError(t, s.Initialize())

	events := s.Load()
	assert.Equal(t, seed.Events(), events)

	version, ok := kv.Get("featuredEvents_version")
	require.True(t, ok)
	assert.Equal(t, seed.EventsVersion, version)
}

func TestEventStoreReseedOnVersionBump(t *testing.T) {
	kv := kvstore.NewMemory()
	custom, _ := json.Marshal([]models.Event{{ID: "custom-1", Title: "Hand-edited"}})
	require.NoError(t, kv.Set("featuredEvents", string(custom)))
	require.NoError(t, kv.Set("featuredEvents_version", "1"))

	s := newEventStore(t, kv)
	require.NoError(t, s.Initialize())

	events := s.Load()
	assert.Equal(t, seed.Events(), events)
	for _, e := range events {
		assert.NotEqual(t, "custom-1", e.ID, "old custom entries must be destroyed")
	}
}

func TestEventStoreInitializeIsIdempotent(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newEventStore(t, kv)
	require.NoError(t, s.Initialize())

	created, err := s.Create(models.Event{Title: "Book Week"})
	require.NoError(t, err)

	require.NoError(t, s.Initialize())
	events := s.Load()
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Contains(t, ids, created.ID, "matching version must not re-seed")
}

func TestEventStoreLoadMissingAndCorrupt(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newEventStore(t, kv)

	assert.Empty(t, s.Load())

	require.NoError(t, kv.Set("featuredEvents", "{broken"))
	assert.Empty(t, s.Load())
}

func TestEventStoreRoundTrip(t *testing.T) {
	kv := kvstore.NewMemory()
	s := newEventStore(t, kv)

	created, err := s.Create(models.Event{
		Title:     "Open House",
		Category:  models.CategoryGeneral,
		EventDate: "2026-11-02",
		Featured:  true,
		Published: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Order)
	assert.Equal(t, 0, *created.Order)

	loaded := s.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, created, loaded[0])
	assert.False(t, loaded[0].UpdatedAt.Before(loaded[0].CreatedAt))
}

func TestEventStoreUpdateRefreshesTimestamp(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	created, err := s.Create(models.Event{Title: "Old Title"})
	require.NoError(t, err)

	title := "New Title"
	updated, err := s.Update(created.ID, models.EventPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New Title", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestEventStoreUpdateMissReturnsNil(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	title := "x"
	updated, err := s.Update("no-such-id", models.EventPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestLoadFeaturedFiltersAndSorts(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	two, zero := 2, 0
	require.NoError(t, s.Save([]models.Event{
		{ID: "a", Featured: true, Published: true, Order: &two},
		{ID: "b", Featured: true, Published: false, Order: &zero},
		{ID: "c", Featured: false, Published: true, Order: &zero},
		{ID: "d", Featured: true, Published: true, EventDate: "2026-01-05"},
		{ID: "e", Featured: true, Published: true, Order: &zero},
		{ID: "f", Featured: true, Published: true, EventDate: "2025-12-01"},
	}))

	featured := s.LoadFeatured()
	ids := make([]string, 0, len(featured))
	for _, e := range featured {
		require.True(t, e.Featured, "unfeatured event leaked into carousel")
		require.True(t, e.Published, "unpublished event leaked into carousel")
		ids = append(ids, e.ID)
	}
	// Ordered entries first by order, then legacy entries by date.
	assert.Equal(t, []string{"e", "a", "f", "d"}, ids)
}

func TestReorderIsIdempotent(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	for _, title := range []string{"first", "second", "third"} {
		_, err := s.Create(models.Event{Title: title})
		require.NoError(t, err)
	}

	events := s.Load()
	reversed := []models.Event{events[2], events[0], events[1]}
	require.NoError(t, s.Reorder(reversed))

	check := func() {
		got := s.Load()
		require.Len(t, got, 3)
		for i, e := range got {
			require.NotNil(t, e.Order)
			assert.Equal(t, i, *e.Order, "order must match array position")
		}
		assert.Equal(t, "third", got[0].Title)
	}
	check()

	// Reordering with the same sequence must not change anything.
	require.NoError(t, s.Reorder(s.Load()))
	check()
}

func TestSportsDayScenario(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	_, err := s.Create(models.Event{Title: "Existing", Featured: true, Published: true})
	require.NoError(t, err)

	created, err := s.Create(models.Event{
		Title:     "Sports Day",
		Category:  models.CategorySports,
		Featured:  true,
		Published: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Order)
	assert.Equal(t, 1, *created.Order)

	featured := s.LoadFeatured()
	require.NotEmpty(t, featured)
	assert.Equal(t, "Sports Day", featured[len(featured)-1].Title, "new event lands at the tail")

	toggled, err := s.ToggleFeatured(created.ID)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.False(t, toggled.Featured)

	for _, e := range s.LoadFeatured() {
		assert.NotEqual(t, created.ID, e.ID)
	}

	removed, err := s.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete of the same id must miss")
}

func TestTogglePublishedRoundTrip(t *testing.T) {
	s := newEventStore(t, kvstore.NewMemory())
	created, err := s.Create(models.Event{Title: "Art Show", Published: true})
	require.NoError(t, err)

	toggled, err := s.TogglePublished(created.ID)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.False(t, toggled.Published)

	toggled, err = s.TogglePublished(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Published)

	missing, err := s.ToggleFeatured("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveQuotaFailureKeepsPriorState(t *testing.T) {
	mem := kvstore.NewMemory()
	s := newEventStore(t, mem)
	created, err := s.Create(models.Event{Title: "Keep Me"})
	require.NoError(t, err)

	failing := &failingKV{Store: mem, err: kvstore.ErrQuotaExceeded}
	broken := newEventStore(t, failing)

	err = broken.Save([]models.Event{})
	require.ErrorIs(t, err, kvstore.ErrQuotaExceeded)

	// The previously persisted collection is unchanged.
	events := s.Load()
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestSaveGenericFailureReturnsError(t *testing.T) {
	failing := &failingKV{Store: kvstore.NewMemory(), err: errors.New("disk detached")}
	s := newEventStore(t, failing)

	err := s.Save([]models.Event{{ID: "x"}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, kvstore.ErrQuotaExceeded)
}

func TestSavePublishesChangeSignal(t *testing.T) {
	b := bus.New()
	s := NewEventStore(Options{KV: kvstore.NewMemory(), Bus: b})

	var signals int
	sub := b.Subscribe(bus.TopicEvents, func() { signals++ })
	defer sub.Cancel()

	require.NoError(t, s.Save([]models.Event{}))
	assert.Equal(t, 1, signals)

	// Failed writes must not publish.
	broken := NewEventStore(Options{KV: &failingKV{Store: kvstore.NewMemory(), err: kvstore.ErrQuotaExceeded}, Bus: b})
	_ = broken.Save([]models.Event{})
	assert.Equal(t, 1, signals)
}
