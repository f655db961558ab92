package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
	"github.com/noah-isme/sd-cms-api/pkg/response"
)

type eventService interface {
	List() []models.Event
	ListFeatured() []models.Event
	Create(req dto.CreateEventRequest) (*models.Event, error)
	Update(id string, patch models.EventPatch) (*models.Event, error)
	Delete(id string) error
	Reorder(req dto.ReorderEventsRequest) ([]models.Event, error)
	ToggleFeatured(id string) (*models.Event, error)
	TogglePublished(id string) (*models.Event, error)
}

// EventHandler exposes featured-event endpoints for the public site and
// the admin panel.
type EventHandler struct {
	service eventService
}

// NewEventHandler builds a new handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// ListFeatured godoc
// @Summary List featured events for the public carousel
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events/featured [get]
func (h *EventHandler) ListFeatured(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListFeatured(), nil)
}

// List godoc
// @Summary List all events
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/events [get]
func (h *EventHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(), nil)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /admin/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	created, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Patch an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body models.EventPatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /admin/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event patch"))
		return
	}
	updated, err := h.service.Update(c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reorder godoc
// @Summary Reorder the event collection
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.ReorderEventsRequest true "Every event id in new order"
// @Success 200 {object} response.Envelope
// @Router /admin/events/reorder [put]
func (h *EventHandler) Reorder(c *gin.Context) {
	var req dto.ReorderEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	events, err := h.service.Reorder(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// ToggleFeatured godoc
// @Summary Toggle an event's featured flag
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /admin/events/{id}/feature [post]
func (h *EventHandler) ToggleFeatured(c *gin.Context) {
	event, err := h.service.ToggleFeatured(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// TogglePublished godoc
// @Summary Toggle an event's published flag
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /admin/events/{id}/publish [post]
func (h *EventHandler) TogglePublished(c *gin.Context) {
	event, err := h.service.TogglePublished(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}
