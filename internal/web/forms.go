package web

import (
	"regexp"
	"strings"
	"time"

	bookingdomain "github.com/classikwoods/site-backend/internal/bookings/domain"
	projectdomain "github.com/classikwoods/site-backend/internal/projects/domain"
)

const dateLayout = "2006-01-02"

// emailRe matches the basic local@domain shape the forms require.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// bookingForm holds the posted booking fields so a failed submission can
// re-render with the entered values preserved.
type bookingForm struct {
	Name          string
	Email         string
	Phone         string
	ProjectType   string
	PreferredDate string
	Budget        string
	Message       string
}

// Validate checks every field before any store call and returns field-scoped
// error text. The parsed date is only meaningful when errs is empty.
func (f *bookingForm) Validate(now time.Time) (time.Time, map[string]string) {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(f.Email) {
		errs["email"] = "Invalid email address"
	}
	if !projectdomain.ValidProjectType(f.ProjectType) {
		errs["project_type"] = "Project type is required"
	}
	if !bookingdomain.ValidBudget(f.Budget) {
		errs["budget"] = "Budget range is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Project details are required"
	}

	var date time.Time
	if f.PreferredDate == "" {
		errs["preferred_date"] = "Start date is required"
	} else {
		var err error
		date, err = time.Parse(dateLayout, f.PreferredDate)
		if err != nil {
			errs["preferred_date"] = "Enter a valid date"
		} else if date.Before(now.UTC().Truncate(24 * time.Hour)) {
			errs["preferred_date"] = "Start date cannot be in the past"
		}
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}
	return date, nil
}

// bookingStatusNotice maps a persisted booking status to the transient
// notification text shown after an admin update.
func bookingStatusNotice(s bookingdomain.Status) string {
	switch s {
	case bookingdomain.StatusContacted:
		return "Booking marked as contacted."
	case bookingdomain.StatusScheduled:
		return "Booking scheduled."
	case bookingdomain.StatusCompleted:
		return "Booking completed."
	case bookingdomain.StatusCancelled:
		return "Booking cancelled."
	default:
		return "Booking status updated."
	}
}
