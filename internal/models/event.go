package models

import "time"

// Event categories shown as badges on the public carousel.
const (
	CategoryAcademic = "Academic"
	CategorySports   = "Sports"
	CategoryArts     = "Arts"
	CategoryHoliday  = "Holiday"
	CategoryGeneral  = "General"
)

// Event is a featured-event entry. Field names keep the persisted
// camelCase wire shape. Order is a pointer because legacy entries may
// lack one; those sort after every ordered entry.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category,omitempty"`
	Description   string    `json:"description,omitempty"`
	EventDate     string    `json:"eventDate,omitempty"`
	EventTime     string    `json:"eventTime,omitempty"`
	Location      string    `json:"location,omitempty"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	Order         *int      `json:"order,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Visible reports whether the event appears on the public carousel.
func (e Event) Visible() bool {
	return e.Featured && e.Published
}

// EventPatch enumerates updatable event fields.
type EventPatch struct {
	Title         *string `json:"title,omitempty"`
	Category      *string `json:"category,omitempty"`
	Description   *string `json:"description,omitempty"`
	EventDate     *string `json:"eventDate,omitempty"`
	EventTime     *string `json:"eventTime,omitempty"`
	Location      *string `json:"location,omitempty"`
	FeaturedImage *string `json:"featuredImage,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
	Published     *bool   `json:"published,omitempty"`
	Order         *int    `json:"order,omitempty"`
}

// Apply merges the patch into the event.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.EventTime != nil {
		e.EventTime = *p.EventTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.FeaturedImage != nil {
		e.FeaturedImage = *p.FeaturedImage
	}
	if p.Featured != nil {
		e.Featured = *p.Featured
	}
	if p.Published != nil {
		e.Published = *p.Published
	}
	if p.Order != nil {
		order := *p.Order
		e.Order = &order
	}
}
