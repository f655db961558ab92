package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

type eventStore interface {
	Load() []models.Event
	LoadFeatured() []models.Event
	Create(input models.Event) (models.Event, error)
	Update(id string, patch models.EventPatch) (*models.Event, error)
	Delete(id string) (bool, error)
	Reorder(ordered []models.Event) error
	ToggleFeatured(id string) (*models.Event, error)
	TogglePublished(id string) (*models.Event, error)
}

// EventService binds the admin and public HTTP surface to the event store.
type EventService struct {
	store     eventStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(store eventStore, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{store: store, validator: validate, logger: logger}
}

// List returns the full collection for the admin panel.
func (s *EventService) List() []models.Event {
	return s.store.Load()
}

// ListFeatured returns the public carousel events.
func (s *EventService) ListFeatured() []models.Event {
	return s.store.LoadFeatured()
}

// Create validates and persists a new event.
func (s *EventService) Create(req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	created, err := s.store.Create(req.Model())
	if err != nil {
		return nil, storageError(err)
	}
	return &created, nil
}

// Update applies a typed patch to an existing event.
func (s *EventService) Update(id string, patch models.EventPatch) (*models.Event, error) {
	updated, err := s.store.Update(id, patch)
	if err != nil {
		return nil, storageError(err)
	}
	if updated == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return updated, nil
}

// Delete removes an event by id.
func (s *EventService) Delete(id string) error {
	found, err := s.store.Delete(id)
	if err != nil {
		return storageError(err)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return nil
}

// Reorder persists the collection in the sequence given by ids. Every
// current event id must appear exactly once.
func (s *EventService) Reorder(req dto.ReorderEventsRequest) ([]models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reorder payload")
	}

	events := s.store.Load()
	byID := make(map[string]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	if len(req.IDs) != len(events) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reorder must list every event exactly once")
	}

	ordered := make([]models.Event, 0, len(events))
	for _, id := range req.IDs {
		e, ok := byID[id]
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown event id in reorder: "+id)
		}
		delete(byID, id)
		ordered = append(ordered, e)
	}

	if err := s.store.Reorder(ordered); err != nil {
		return nil, storageError(err)
	}
	return s.store.Load(), nil
}

// ToggleFeatured flips an event's featured flag.
func (s *EventService) ToggleFeatured(id string) (*models.Event, error) {
	return s.toggleResult(s.store.ToggleFeatured(id))
}

// TogglePublished flips an event's published flag.
func (s *EventService) TogglePublished(id string) (*models.Event, error) {
	return s.toggleResult(s.store.TogglePublished(id))
}

func (s *EventService) toggleResult(event *models.Event, err error) (*models.Event, error) {
	if err != nil {
		return nil, storageError(err)
	}
	if event == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	return event, nil
}

// storageError maps store write failures onto the API error taxonomy:
// quota exhaustion gets its own actionable status, everything else is a
// generic write failure.
func storageError(err error) error {
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		return appErrors.Wrap(err, appErrors.ErrStorageFull.Code, appErrors.ErrStorageFull.Status, appErrors.ErrStorageFull.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrStorageWrite.Code, appErrors.ErrStorageWrite.Status, appErrors.ErrStorageWrite.Message)
}
