package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
	"github.com/noah-isme/sd-cms-api/pkg/response"
)

type announcementService interface {
	List() []models.Announcement
	ListPublished() []models.Announcement
	Create(req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Update(id string, patch models.AnnouncementPatch) (*models.Announcement, error)
	Delete(id string) error
}

// AnnouncementHandler exposes story endpoints for the public site and the
// admin panel.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// ListPublished godoc
// @Summary List published announcements
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) ListPublished(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListPublished(), nil)
}

// List godoc
// @Summary List all announcements
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(), nil)
}

// Create godoc
// @Summary Create an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
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
// @Summary Patch an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param payload body models.AnnouncementPatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /admin/announcements/{id} [patch]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var patch models.AnnouncementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement patch"))
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
// @Summary Delete an announcement
// @Tags Announcements
// @Param id path string true "Announcement ID"
// @Success 204
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
