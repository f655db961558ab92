// Package dto defines the HTTP request payloads accepted by the admin API.
package dto

import "github.com/noah-isme/sd-cms-api/internal/models"

// CreateEventRequest carries a new featured event. Identity, timestamps
// and order are store-assigned.
type CreateEventRequest struct {
	Title         string `json:"title" validate:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	EventDate     string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	EventTime     string `json:"eventTime"`
	Location      string `json:"location"`
	FeaturedImage string `json:"featuredImage"`
	Featured      bool   `json:"featured"`
	Published     bool   `json:"published"`
}

// Model converts the request into an event ready for the store.
func (r CreateEventRequest) Model() models.Event {
	return models.Event{
		Title:         r.Title,
		Category:      r.Category,
		Description:   r.Description,
		EventDate:     r.EventDate,
		EventTime:     r.EventTime,
		Location:      r.Location,
		FeaturedImage: r.FeaturedImage,
		Featured:      r.Featured,
		Published:     r.Published,
	}
}

// ReorderEventsRequest lists every event id in its new position.
type ReorderEventsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// CreateAnnouncementRequest carries a new story.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	Source      string `json:"source"`
	Author      string `json:"author"`
	IsPublished bool   `json:"is_published"`
	PublishedAt string `json:"published_at" validate:"omitempty,datetime=2006-01-02"`
	OrderIndex  int    `json:"order_index"`
}

// Model converts the request into an announcement ready for the store.
func (r CreateAnnouncementRequest) Model() models.Announcement {
	return models.Announcement{
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		ImageURL:    r.ImageURL,
		Source:      r.Source,
		Author:      r.Author,
		IsPublished: r.IsPublished,
		PublishedAt: r.PublishedAt,
		OrderIndex:  r.OrderIndex,
	}
}

// CreateTeacherRequest carries a new roster entry.
type CreateTeacherRequest struct {
	Name         string `json:"name" validate:"required"`
	GradeLevel   string `json:"grade_level"`
	Subject      string `json:"subject"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	IsPublished  bool   `json:"is_published"`
}

// Model converts the request into a teacher ready for the store.
func (r CreateTeacherRequest) Model() models.Teacher {
	return models.Teacher{
		Name:         r.Name,
		GradeLevel:   r.GradeLevel,
		Subject:      r.Subject,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
		IsPublished:  r.IsPublished,
	}
}

// SavePrincipalRequest replaces the singleton principal record.
type SavePrincipalRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// Model converts the request into a principal record.
func (r SavePrincipalRequest) Model() models.Principal {
	return models.Principal{
		Name:         r.Name,
		Title:        r.Title,
		Bio:          r.Bio,
		ProfileImage: r.ProfileImage,
	}
}

// PublicStaff is the combined staff payload for the public site.
type PublicStaff struct {
	Principal *models.Principal `json:"principal,omitempty"`
	Teachers  []models.Teacher  `json:"teachers"`
}
