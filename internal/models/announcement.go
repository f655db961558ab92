package models

import "time"

// Announcement is a school story shown in the public announcement section.
// Content is sanitised HTML produced by the admin editor. Field names keep
// the persisted snake_case wire shape.
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Source      string    `json:"source,omitempty"`
	Author      string    `json:"author,omitempty"`
	IsPublished bool      `json:"is_published"`
	PublishedAt string    `json:"published_at,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AnnouncementPatch enumerates updatable announcement fields.
type AnnouncementPatch struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Content     *string `json:"content,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Source      *string `json:"source,omitempty"`
	Author      *string `json:"author,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
}

// Apply merges the patch into the announcement.
func (p AnnouncementPatch) Apply(a *Announcement) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Slug != nil {
		a.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Source != nil {
		a.Source = *p.Source
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.IsPublished != nil {
		a.IsPublished = *p.IsPublished
	}
	if p.PublishedAt != nil {
		a.PublishedAt = *p.PublishedAt
	}
}
