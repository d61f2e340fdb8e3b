package http

import (
	"time"

	"github.com/classikwoods/site-backend/internal/auth"
)

// Handler bundles the dependencies for session HTTP endpoints.
type Handler struct {
	sessions   auth.Sessions
	sessionTTL time.Duration
	secure     bool
}

func New(sessions auth.Sessions, sessionTTL time.Duration, secure bool) *Handler {
	return &Handler{sessions: sessions, sessionTTL: sessionTTL, secure: secure}
}
