// Package web serves the server-rendered public site and admin portal. It
// reuses the same stores as the JSON API; rows fetched here are transient
// per-request copies, never a source of truth.
package web

import (
	"time"

	"github.com/classikwoods/site-backend/internal/auth"
	bookingshttp "github.com/classikwoods/site-backend/internal/bookings/http"
	contactshttp "github.com/classikwoods/site-backend/internal/contacts/http"
	"github.com/classikwoods/site-backend/internal/projects"
	"github.com/classikwoods/site-backend/internal/uploads"
)

// Handler bundles the dependencies for the page handlers.
type Handler struct {
	projects   projects.Store
	contacts   contactshttp.Store
	bookings   bookingshttp.Store
	uploader   uploads.Uploader
	sessions   auth.Sessions
	sessionTTL time.Duration
	secure     bool
}

type Deps struct {
	Projects   projects.Store
	Contacts   contactshttp.Store
	Bookings   bookingshttp.Store
	Uploader   uploads.Uploader
	Sessions   auth.Sessions
	SessionTTL time.Duration
	Secure     bool
}

func New(d Deps) *Handler {
	return &Handler{
		projects:   d.Projects,
		contacts:   d.Contacts,
		bookings:   d.Bookings,
		uploader:   d.Uploader,
		sessions:   d.Sessions,
		sessionTTL: d.SessionTTL,
		secure:     d.Secure,
	}
}
