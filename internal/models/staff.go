package models

import "time"

// Grade level labels recognised by the staff roster sort. Anything else
// sorts after the known grades.
const (
	GradeKindergarten = "Kindergarten"
	Grade1            = "Grade 1"
	Grade2            = "Grade 2"
	Grade3            = "Grade 3"
	Grade4            = "Grade 4"
	Grade5            = "Grade 5"
	Grade6            = "Grade 6"
)

// GradeLevels lists the seven fixed labels in roster order.
var GradeLevels = []string{
	GradeKindergarten,
	Grade1,
	Grade2,
	Grade3,
	Grade4,
	Grade5,
	Grade6,
}

// Principal is the singleton head-of-school record. It can be replaced but
// never deleted.
type Principal struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Title        string `json:"title,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Teacher is a staff roster entry. Field names keep the persisted
// snake_case wire shape.
type Teacher struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	GradeLevel   string    `json:"grade_level,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeacherPatch enumerates updatable teacher fields.
type TeacherPatch struct {
	Name         *string `json:"name,omitempty"`
	GradeLevel   *string `json:"grade_level,omitempty"`
	Subject      *string `json:"subject,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsPublished  *bool   `json:"is_published,omitempty"`
}

// Apply merges the patch into the teacher.
func (p TeacherPatch) Apply(t *Teacher) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.GradeLevel != nil {
		t.GradeLevel = *p.GradeLevel
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.ProfileImage != nil {
		t.ProfileImage = *p.ProfileImage
	}
	if p.IsPublished != nil {
		t.IsPublished = *p.IsPublished
	}
}
