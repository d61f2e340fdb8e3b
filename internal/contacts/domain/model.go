package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("contact submission not found")
	ErrInvalidStatus = errors.New("invalid contact status")
)

// Status tracks how far the owner has taken a contact inquiry.
type Status string

const (
	StatusNew       Status = "new"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
	StatusArchived  Status = "archived"
)

// Statuses lists the allowed values in display order.
var Statuses = []Status{StatusNew, StatusRead, StatusResponded, StatusArchived}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResponded, StatusArchived:
		return true
	}
	return false
}

// ContactSubmission is a row created by the public contact form. Rows are
// never deleted in-flow; archival is a status.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactSubmission carries the visitor-entered fields. Status and
// timestamps are assigned on insert.
type NewContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
