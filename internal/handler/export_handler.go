package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sd-cms-api/pkg/response"
)

type exportService interface {
	TeachersCSV() ([]byte, error)
	TeachersPDF() ([]byte, error)
	EventsCSV() ([]byte, error)
	EventsPDF() ([]byte, error)
}

// ExportHandler serves roster and event downloads for the admin panel.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Teachers godoc
// @Summary Download the teacher roster
// @Tags Exports
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /admin/export/teachers [get]
func (h *ExportHandler) Teachers(c *gin.Context) {
	h.render(c, "teachers", h.service.TeachersCSV, h.service.TeachersPDF)
}

// Events godoc
// @Summary Download the event calendar
// @Tags Exports
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /admin/export/events [get]
func (h *ExportHandler) Events(c *gin.Context) {
	h.render(c, "events", h.service.EventsCSV, h.service.EventsPDF)
}

func (h *ExportHandler) render(c *gin.Context, name string, csv, pdf func() ([]byte, error)) {
	switch c.DefaultQuery("format", "csv") {
	case "pdf":
		data, err := pdf()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		data, err := csv()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}
