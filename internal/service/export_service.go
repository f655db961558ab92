package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/sd-cms-api/internal/store"
	"github.com/noah-isme/sd-cms-api/pkg/export"
)

// ExportService renders the teacher roster and the event calendar as CSV
// or PDF downloads for the admin panel.
type ExportService struct {
	events eventStore
	staff  staffStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	school string
	logger *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(events eventStore, staff staffStore, school string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		events: events,
		staff:  staff,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		school: school,
		logger: logger,
	}
}

// TeachersCSV renders the grade-sorted roster as CSV.
func (s *ExportService) TeachersCSV() ([]byte, error) {
	return s.csv.Render(s.teacherDataset())
}

// TeachersPDF renders the grade-sorted roster as PDF.
func (s *ExportService) TeachersPDF() ([]byte, error) {
	return s.pdf.Render(s.teacherDataset(), fmt.Sprintf("%s Staff Roster", s.school))
}

// EventsCSV renders the full event collection as CSV.
func (s *ExportService) EventsCSV() ([]byte, error) {
	return s.csv.Render(s.eventDataset())
}

// EventsPDF renders the full event collection as PDF.
func (s *ExportService) EventsPDF() ([]byte, error) {
	return s.pdf.Render(s.eventDataset(), fmt.Sprintf("%s Events", s.school))
}

func (s *ExportService) teacherDataset() export.Dataset {
	headers := []string{"Name", "Grade", "Subject", "Published"}
	teachers := store.SortTeachersByGrade(s.staff.Teachers())
	rows := make([]map[string]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, map[string]string{
			"Name":      t.Name,
			"Grade":     t.GradeLevel,
			"Subject":   t.Subject,
			"Published": fmt.Sprintf("%t", t.IsPublished),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func (s *ExportService) eventDataset() export.Dataset {
	headers := []string{"Title", "Category", "Date", "Time", "Location", "Featured", "Published"}
	events := s.events.Load()
	rows := make([]map[string]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, map[string]string{
			"Title":     e.Title,
			"Category":  e.Category,
			"Date":      e.EventDate,
			"Time":      e.EventTime,
			"Location":  e.Location,
			"Featured":  fmt.Sprintf("%t", e.Featured),
			"Published": fmt.Sprintf("%t", e.Published),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
