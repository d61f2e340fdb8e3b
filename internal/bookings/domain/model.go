package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("booking submission not found")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Status tracks a booking request through the owner's workflow. Any status
// may follow any other; there is no state-machine guard.
type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists the allowed values in display order.
var Statuses = []Status{StatusPending, StatusContacted, StatusScheduled, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BudgetRanges is the fixed set of bucketed budget choices on the booking
// form. Budgets are stored as the selected string, not as numbers.
var BudgetRanges = []string{
	"Under $1,000",
	"$1,000 - $5,000",
	"$5,000 - $10,000",
	"$10,000+",
}

// ValidBudget reports whether b is one of the offered ranges.
func ValidBudget(b string) bool {
	for _, r := range BudgetRanges {
		if r == b {
			return true
		}
	}
	return false
}

// BookingSubmission is a row created by the public booking form.
type BookingSubmission struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	ProjectType   string     `json:"project_type"`
	PreferredDate time.Time  `json:"preferred_date"`
	Budget        string     `json:"budget"`
	Message       string     `json:"message"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// NewBookingSubmission carries the visitor-entered fields. Status and
// timestamps are assigned on insert.
type NewBookingSubmission struct {
	Name          string
	Email         string
	Phone         string
	ProjectType   string
	PreferredDate time.Time
	Budget        string
	Message       string
}
