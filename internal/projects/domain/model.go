package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a project id does not resolve to a row.
var ErrNotFound = errors.New("project not found")

// ProjectTypes is the fixed set of categories offered on the booking form
// and the admin upload form.
var ProjectTypes = []string{
	"Custom Furniture",
	"Kitchen Cabinetry",
	"Wood Restoration",
	"Built-in Storage",
	"Other",
}

// ValidProjectType reports whether t is one of the offered categories.
func ValidProjectType(t string) bool {
	for _, pt := range ProjectTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Project is a portfolio entry. ImageURL points at the object store and is
// filled in before the row is inserted.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ProjectType string    `json:"project_type"`
	Materials   string    `json:"materials,omitempty"`
	ClientStory string    `json:"client_story,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProject carries the fields for an admin-created project. The id is
// generated client-side so the image key and the row can share it.
type NewProject struct {
	ID          uuid.UUID
	Title       string
	Description string
	ImageURL    string
	ProjectType string
	Materials   string
	ClientStory string
}
