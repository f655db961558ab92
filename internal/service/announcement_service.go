package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
)

type announcementStore interface {
	Load() []models.Announcement
	Published() []models.Announcement
	Create(input models.Announcement) (models.Announcement, error)
	Update(id string, patch models.AnnouncementPatch) (*models.Announcement, error)
	Delete(id string) (bool, error)
}

// AnnouncementService binds the story HTTP surface to the announcement
// store.
type AnnouncementService struct {
	store     announcementStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(store announcementStore, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{store: store, validator: validate, logger: logger}
}

// List returns every story, newest first, for the admin panel.
func (s *AnnouncementService) List() []models.Announcement {
	return s.store.Load()
}

// ListPublished returns only published stories for the public site.
func (s *AnnouncementService) ListPublished() []models.Announcement {
	return s.store.Published()
}

// Create validates and prepends a new story.
func (s *AnnouncementService) Create(req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	created, err := s.store.Create(req.Model())
	if err != nil {
		return nil, storageError(err)
	}
	return &created, nil
}

// Update applies a typed patch to an existing story.
func (s *AnnouncementService) Update(id string, patch models.AnnouncementPatch) (*models.Announcement, error) {
	updated, err := s.store.Update(id, patch)
	if err != nil {
		return nil, storageError(err)
	}
	if updated == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return updated, nil
}

// Delete removes a story by id.
func (s *AnnouncementService) Delete(id string) error {
	found, err := s.store.Delete(id)
	if err != nil {
		return storageError(err)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return nil
}
