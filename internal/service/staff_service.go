package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/store"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
)

type staffStore interface {
	Principal() *models.Principal
	SavePrincipal(principal *models.Principal) error
	Teachers() []models.Teacher
	AddTeacher(input models.Teacher) (models.Teacher, error)
	UpdateTeacher(id string, patch models.TeacherPatch) (*models.Teacher, error)
	DeleteTeacher(id string) (bool, error)
}

// StaffService binds the staff HTTP surface to the staff store.
type StaffService struct {
	store     staffStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(store staffStore, validate *validator.Validate, logger *zap.Logger) *StaffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{store: store, validator: validate, logger: logger}
}

// PublicStaff returns the principal and the published roster in grade
// order for the public site.
func (s *StaffService) PublicStaff() dto.PublicStaff {
	teachers := store.SortTeachersByGrade(s.store.Teachers())
	published := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.IsPublished {
			published = append(published, t)
		}
	}
	return dto.PublicStaff{Principal: s.store.Principal(), Teachers: published}
}

// Principal returns the singleton record for the admin panel.
func (s *StaffService) Principal() (*models.Principal, error) {
	principal := s.store.Principal()
	if principal == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "principal not set")
	}
	return principal, nil
}

// SavePrincipal validates and replaces the singleton record.
func (s *StaffService) SavePrincipal(req dto.SavePrincipalRequest) (*models.Principal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid principal payload")
	}
	principal := req.Model()
	if existing := s.store.Principal(); existing != nil {
		principal.ID = existing.ID
	}
	if err := s.store.SavePrincipal(&principal); err != nil {
		return nil, storageError(err)
	}
	return &principal, nil
}

// Teachers returns the full roster in grade order for the admin panel.
func (s *StaffService) Teachers() []models.Teacher {
	return store.SortTeachersByGrade(s.store.Teachers())
}

// AddTeacher validates and appends a roster entry.
func (s *StaffService) AddTeacher(req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	added, err := s.store.AddTeacher(req.Model())
	if err != nil {
		return nil, storageError(err)
	}
	return &added, nil
}

// UpdateTeacher applies a typed patch to a roster entry.
func (s *StaffService) UpdateTeacher(id string, patch models.TeacherPatch) (*models.Teacher, error) {
	updated, err := s.store.UpdateTeacher(id, patch)
	if err != nil {
		return nil, storageError(err)
	}
	if updated == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return updated, nil
}

// DeleteTeacher removes a roster entry by id.
func (s *StaffService) DeleteTeacher(id string) error {
	found, err := s.store.DeleteTeacher(id)
	if err != nil {
		return storageError(err)
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return nil
}
