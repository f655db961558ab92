package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sd-cms-api/internal/dto"
	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
	"github.com/noah-isme/sd-cms-api/pkg/response"
)

type staffService interface {
	PublicStaff() dto.PublicStaff
	Principal() (*models.Principal, error)
	SavePrincipal(req dto.SavePrincipalRequest) (*models.Principal, error)
	Teachers() []models.Teacher
	AddTeacher(req dto.CreateTeacherRequest) (*models.Teacher, error)
	UpdateTeacher(id string, patch models.TeacherPatch) (*models.Teacher, error)
	DeleteTeacher(id string) error
}

// StaffHandler exposes principal and teacher endpoints.
type StaffHandler struct {
	service staffService
}

// NewStaffHandler builds a new handler.
func NewStaffHandler(service staffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// PublicStaff godoc
// @Summary Principal and published teachers for the public site
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /staff [get]
func (h *StaffHandler) PublicStaff(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.PublicStaff(), nil)
}

// Principal godoc
// @Summary Get the principal record
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/staff/principal [get]
func (h *StaffHandler) Principal(c *gin.Context) {
	principal, err := h.service.Principal()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, principal, nil)
}

// SavePrincipal godoc
// @Summary Replace the principal record
// @Tags Staff
// @Accept json
// @Produce json
// @Param payload body dto.SavePrincipalRequest true "Principal payload"
// @Success 200 {object} response.Envelope
// @Router /admin/staff/principal [put]
func (h *StaffHandler) SavePrincipal(c *gin.Context) {
	var req dto.SavePrincipalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid principal payload"))
		return
	}
	principal, err := h.service.SavePrincipal(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, principal, nil)
}

// Teachers godoc
// @Summary List the full teacher roster
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/staff/teachers [get]
func (h *StaffHandler) Teachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Teachers(), nil)
}

// AddTeacher godoc
// @Summary Add a teacher
// @Tags Staff
// @Accept json
// @Produce json
// @Param payload body dto.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /admin/staff/teachers [post]
func (h *StaffHandler) AddTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}
	added, err := h.service.AddTeacher(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, added)
}

// UpdateTeacher godoc
// @Summary Patch a teacher
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body models.TeacherPatch true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /admin/staff/teachers/{id} [patch]
func (h *StaffHandler) UpdateTeacher(c *gin.Context) {
	var patch models.TeacherPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher patch"))
		return
	}
	updated, err := h.service.UpdateTeacher(c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// DeleteTeacher godoc
// @Summary Remove a teacher
// @Tags Staff
// @Param id path string true "Teacher ID"
// @Success 204
// @Router /admin/staff/teachers/{id} [delete]
func (h *StaffHandler) DeleteTeacher(c *gin.Context) {
	if err := h.service.DeleteTeacher(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
