package store

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/bus"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/seed"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

const announcementsKey = "announcements"

// AnnouncementStore provides CRUD for school stories. New entries are
// prepended so the list stays newest-first, unlike the event store's
// append semantics.
type AnnouncementStore struct {
	opts Options
}

// NewAnnouncementStore builds the store.
func NewAnnouncementStore(opts Options) *AnnouncementStore {
	return &AnnouncementStore{opts: opts.withDefaults()}
}

// Initialize seeds the collection with bundled fixtures when the key is
// missing. There is no version marker for announcements.
func (s *AnnouncementStore) Initialize() error {
	if _, ok := s.opts.KV.Get(announcementsKey); ok {
		return nil
	}
	raw, err := json.Marshal(seed.Announcements())
	if err != nil {
		return err
	}
	if err := s.opts.KV.Set(announcementsKey, string(raw)); err != nil {
		return err
	}
	s.opts.Logger.Info("announcement fixtures loaded")
	return nil
}

// Load returns the full collection, newest first. Missing or corrupt data
// yields an empty slice, never an error.
func (s *AnnouncementStore) Load() []models.Announcement {
	raw, ok := s.opts.KV.Get(announcementsKey)
	if !ok {
		return []models.Announcement{}
	}
	var announcements []models.Announcement
	if err := json.Unmarshal([]byte(raw), &announcements); err != nil {
		s.opts.Logger.Error("corrupt announcement collection, treating as empty", zap.Error(err))
		return []models.Announcement{}
	}
	return announcements
}

// Save writes the full collection atomically and publishes a change
// signal on success.
func (s *AnnouncementStore) Save(announcements []models.Announcement) error {
	raw, err := json.Marshal(announcements)
	if err != nil {
		s.opts.Logger.Error("encode announcement collection", zap.Error(err))
		return err
	}
	if err := s.opts.KV.Set(announcementsKey, string(raw)); err != nil {
		if errors.Is(err, kvstore.ErrQuotaExceeded) {
			s.opts.Logger.Warn("storage quota exceeded saving announcements")
		} else {
			s.opts.Logger.Error("persist announcement collection", zap.Error(err))
		}
		s.opts.Observe("announcements", "save", err)
		return err
	}
	s.opts.Observe("announcements", "save", nil)
	s.opts.Bus.Publish(bus.TopicAnnouncements)
	return nil
}

// Create prepends a new announcement with a fresh identity and stamped
// timestamps.
func (s *AnnouncementStore) Create(input models.Announcement) (models.Announcement, error) {
	announcements := s.Load()

	now := s.opts.Now()
	input.ID = s.opts.NewID()
	input.CreatedAt = now
	input.UpdatedAt = now

	announcements = append([]models.Announcement{input}, announcements...)
	if err := s.Save(announcements); err != nil {
		return models.Announcement{}, err
	}
	return input, nil
}

// Update merges the patch over the announcement with the given id and
// refreshes its updated_at stamp. A missing id is a benign miss reported
// as (nil, nil).
func (s *AnnouncementStore) Update(id string, patch models.AnnouncementPatch) (*models.Announcement, error) {
	announcements := s.Load()
	for i := range announcements {
		if announcements[i].ID != id {
			continue
		}
		patch.Apply(&announcements[i])
		announcements[i].UpdatedAt = s.opts.Now()
		if err := s.Save(announcements); err != nil {
			return nil, err
		}
		updated := announcements[i]
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the announcement with the given id. Confirmation gating
// for destructive deletes lives in the admin UI, not here. The bool
// reports whether anything was removed.
func (s *AnnouncementStore) Delete(id string) (bool, error) {
	announcements := s.Load()
	filtered := announcements[:0:0]
	for _, a := range announcements {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(announcements) {
		return false, nil
	}
	if err := s.Save(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Published returns only published announcements, preserving the stored
// newest-first order.
func (s *AnnouncementStore) Published() []models.Announcement {
	all := s.Load()
	published := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if a.IsPublished {
			published = append(published, a)
		}
	}
	return published
}
