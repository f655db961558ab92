package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
	"github.com/noah-isme/sd-cms-api/pkg/kvstore"
)

type eventStoreMock struct {
	events      []models.Event
	createErr   error
	updateResp  *models.Event
	updateErr   error
	deleteFound bool
	deleteErr   error
	reorderErr  error
	toggleResp  *models.Event
	toggleErr   error

	lastReorder []models.Event
}

func (m *eventStoreMock) Load() []models.Event         { return m.events }
func (m *eventStoreMock) LoadFeatured() []models.Event { return m.events }

func (m *eventStoreMock) Create(input models.Event) (models.Event, error) {
	if m.createErr != nil {
		return models.Event{}, m.createErr
	}
	input.ID = "new-id"
	return input, nil
}

func (m *eventStoreMock) Update(id string, patch models.EventPatch) (*models.Event, error) {
	return m.updateResp, m.updateErr
}

func (m *eventStoreMock) Delete(id string) (bool, error) {
	return m.deleteFound, m.deleteErr
}

func (m *eventStoreMock) Reorder(ordered []models.Event) error {
	m.lastReorder = ordered
	return m.reorderErr
}

func (m *eventStoreMock) ToggleFeatured(id string) (*models.Event, error) {
	return m.toggleResp, m.toggleErr
}

func (m *eventStoreMock) TogglePublished(id string) (*models.Event, error) {
	return m.toggleResp, m.toggleErr
}

func TestEventServiceCreate(t *testing.T) {
	svc := NewEventService(&eventStoreMock{}, nil, nil)

	created, err := svc.Create(dto.CreateEventRequest{Title: "Science Fair", EventDate: "2026-09-15"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, "Science Fair", created.Title)
}

func TestEventServiceCreateRejectsMissingTitle(t *testing.T) {
	svc := NewEventService(&eventStoreMock{}, nil, nil)

	_, err := svc.Create(dto.CreateEventRequest{EventDate: "2026-09-15"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateRejectsBadDate(t *testing.T) {
	svc := NewEventService(&eventStoreMock{}, nil, nil)

	_, err := svc.Create(dto.CreateEventRequest{Title: "Science Fair", EventDate: "15/09/2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateQuotaMapsToStorageFull(t *testing.T) {
	svc := NewEventService(&eventStoreMock{createErr: kvstore.ErrQuotaExceeded}, nil, nil)

	_, err := svc.Create(dto.CreateEventRequest{Title: "Science Fair"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrStorageFull.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrStorageFull.Status, appErr.Status)
}

func TestEventServiceCreateGenericWriteFailure(t *testing.T) {
	svc := NewEventService(&eventStoreMock{createErr: errors.New("disk detached")}, nil, nil)

	_, err := svc.Create(dto.CreateEventRequest{Title: "Science Fair"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStorageWrite.Code, appErrors.FromError(err).Code)
}

func TestEventServiceUpdateMissing(t *testing.T) {
	svc := NewEventService(&eventStoreMock{updateResp: nil}, nil, nil)

	_, err := svc.Update("ghost", models.EventPatch{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDeleteMissing(t *testing.T) {
	svc := NewEventService(&eventStoreMock{deleteFound: false}, nil, nil)

	err := svc.Delete("ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDelete(t *testing.T) {
	svc := NewEventService(&eventStoreMock{deleteFound: true}, nil, nil)

	require.NoError(t, svc.Delete("ev-1"))
}

func TestEventServiceReorder(t *testing.T) {
	store := &eventStoreMock{events: []models.Event{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Reorder(dto.ReorderEventsRequest{IDs: []string{"c", "a", "b"}})
	require.NoError(t, err)
	require.Len(t, store.lastReorder, 3)
	assert.Equal(t, "c", store.lastReorder[0].ID)
	assert.Equal(t, "a", store.lastReorder[1].ID)
	assert.Equal(t, "b", store.lastReorder[2].ID)
}

func TestEventServiceReorderRejectsPartialList(t *testing.T) {
	store := &eventStoreMock{events: []models.Event{{ID: "a"}, {ID: "b"}}}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Reorder(dto.ReorderEventsRequest{IDs: []string{"a"}})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, store.lastReorder)
}

func TestEventServiceReorderRejectsUnknownID(t *testing.T) {
	store := &eventStoreMock{events: []models.Event{{ID: "a"}, {ID: "b"}}}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Reorder(dto.ReorderEventsRequest{IDs: []string{"a", "ghost"}})
	require.Error(t, err)
	assert.Nil(t, store.lastReorder)
}

func TestEventServiceReorderRejectsDuplicateID(t *testing.T) {
	store := &eventStoreMock{events: []models.Event{{ID: "a"}, {ID: "b"}}}
	svc := NewEventService(store, nil, nil)

	_, err := svc.Reorder(dto.ReorderEventsRequest{IDs: []string{"a", "a"}})
	require.Error(t, err)
	assert.Nil(t, store.lastReorder)
}

func TestEventServiceReorderRejectsEmptyList(t *testing.T) {
	svc := NewEventService(&eventStoreMock{}, nil, nil)

	_, err := svc.Reorder(dto.ReorderEventsRequest{IDs: nil})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceToggleFeaturedMissing(t *testing.T) {
	svc := NewEventService(&eventStoreMock{toggleResp: nil}, nil, nil)

	_, err := svc.ToggleFeatured("ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
