package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classikwoods/site-backend/internal/auth"
	bookingdomain "github.com/classikwoods/site-backend/internal/bookings/domain"
	contactdomain "github.com/classikwoods/site-backend/internal/contacts/domain"
	projectdomain "github.com/classikwoods/site-backend/internal/projects/domain"
)

type fakeProjects struct {
	items   []projectdomain.Project
	listErr error
}

func (f *fakeProjects) List(_ context.Context) ([]projectdomain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeProjects) Get(_ context.Context, id uuid.UUID) (*projectdomain.Project, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, projectdomain.ErrNotFound
}

func (f *fakeProjects) Create(_ context.Context, np projectdomain.NewProject) (*projectdomain.Project, error) {
	p := projectdomain.Project{ID: np.ID, Title: np.Title, ProjectType: np.ProjectType, ImageURL: np.ImageURL}
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakeProjects) ToggleFeatured(_ context.Context, id uuid.UUID) (*projectdomain.Project, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Featured = !f.items[i].Featured
			return &f.items[i], nil
		}
	}
	return nil, projectdomain.ErrNotFound
}

func (f *fakeProjects) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

type fakeContacts struct {
	items []contactdomain.ContactSubmission
}

func (f *fakeContacts) Create(_ context.Context, nc contactdomain.NewContactSubmission) (*contactdomain.ContactSubmission, error) {
	sub := contactdomain.ContactSubmission{ID: uuid.New(), Name: nc.Name, Status: contactdomain.StatusNew}
	f.items = append(f.items, sub)
	return &sub, nil
}

func (f *fakeContacts) List(_ context.Context) ([]contactdomain.ContactSubmission, error) {
	return f.items, nil
}

func (f *fakeContacts) UpdateStatus(_ context.Context, id uuid.UUID, status contactdomain.Status) (*contactdomain.ContactSubmission, error) {
	return &contactdomain.ContactSubmission{ID: id, Status: status}, nil
}

type fakeBookings struct {
	items     []bookingdomain.BookingSubmission
	created   []bookingdomain.NewBookingSubmission
	createErr error
	updateErr error
}

func (f *fakeBookings) Create(_ context.Context, nb bookingdomain.NewBookingSubmission) (*bookingdomain.BookingSubmission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, nb)
	return &bookingdomain.BookingSubmission{ID: uuid.New(), Status: bookingdomain.StatusPending}, nil
}

func (f *fakeBookings) List(_ context.Context) ([]bookingdomain.BookingSubmission, error) {
	return f.items, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id uuid.UUID, status bookingdomain.Status) (*bookingdomain.BookingSubmission, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return &f.items[i], nil
		}
	}
	return &bookingdomain.BookingSubmission{ID: id, Status: status}, nil
}

type fakeSessions struct {
	valid map[string]string
}

func (f *fakeSessions) Create(_ context.Context, idToken string, _ time.Duration) (string, error) {
	if idToken == "" {
		return "", auth.ErrNoSession
	}
	return "cookie-for-" + idToken, nil
}

func (f *fakeSessions) Verify(_ context.Context, cookie string) (string, error) {
	if uid, ok := f.valid[cookie]; ok {
		return uid, nil
	}
	return "", auth.ErrNoSession
}

type fixture struct {
	router   *gin.Engine
	projects *fakeProjects
	bookings *fakeBookings
	sessions *fakeSessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		projects: &fakeProjects{},
		bookings: &fakeBookings{},
		sessions: &fakeSessions{valid: map[string]string{"good": "uid-1"}},
	}

	h := New(Deps{
		Projects:   f.projects,
		Contacts:   &fakeContacts{},
		Bookings:   f.bookings,
		Sessions:   f.sessions,
		SessionTTL: time.Hour,
	})

	f.router = gin.New()
	h.Register(f.router, auth.NewGuard(f.sessions))
	return f
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *fixture) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestHomePage(t *testing.T) {
	t.Run("newest project becomes the hero", func(t *testing.T) {
		f := newFixture(t)
		f.projects.items = []projectdomain.Project{
			{ID: uuid.New(), Title: "Walnut desk", ImageURL: "https://img/1.jpg"},
			{ID: uuid.New(), Title: "Oak shelf", ImageURL: "https://img/2.jpg"},
		}

		rr := f.get("/")
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Walnut desk")
		assert.Contains(t, body, "Oak shelf")
	})

	t.Run("store failure renders the empty state, not an error", func(t *testing.T) {
		f := newFixture(t)
		f.projects.listErr = assert.AnError

		rr := f.get("/")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "No projects yet")
	})
}

func TestProjectDetailPage(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.projects.items = []projectdomain.Project{{
		ID: id, Title: "Cherry credenza", ProjectType: "Custom Furniture",
	}}

	t.Run("known project renders with a booking link", func(t *testing.T) {
		rr := f.get("/projects/" + id.String())
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cherry credenza")
		assert.Contains(t, rr.Body.String(), "/about?project_type=Custom+Furniture#booking")
	})

	t.Run("unknown project renders not found", func(t *testing.T) {
		rr := f.get("/projects/" + uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed id renders not found", func(t *testing.T) {
		rr := f.get("/projects/sideboard")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLegacyFormRoutes(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/contact", "/booking"} {
		rr := f.get(path)
		assert.Equal(t, http.StatusMovedPermanently, rr.Code, path)
		assert.Equal(t, "/about", rr.Header().Get("Location"), path)
	}
}

func TestAboutPage(t *testing.T) {
	t.Run("project_type query preselects the category", func(t *testing.T) {
		f := newFixture(t)
		rr := f.get("/about?project_type=" + url.QueryEscape("Wood Restoration"))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `value="Wood Restoration" selected`)
	})
}

func TestSubmitBooking(t *testing.T) {
	valid := func() url.Values {
		return url.Values{
			"name":           {"Riley Chen"},
			"email":          {"riley@example.com"},
			"project_type":   {"Custom Furniture"},
			"preferred_date": {time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")},
			"budget":         {"$1,000 - $5,000"},
			"message":        {"Bookshelf for a home office."},
		}
	}

	t.Run("valid submission stores the request and clears the form", func(t *testing.T) {
		f := newFixture(t)
		rr := f.postForm("/about", valid())

		require.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, f.bookings.created, 1)
		assert.Contains(t, rr.Body.String(), "submitted successfully")
		assert.NotContains(t, rr.Body.String(), "Riley Chen")
	})

	t.Run("validation failure preserves entered values", func(t *testing.T) {
		f := newFixture(t)
		values := valid()
		values.Set("email", "not-an-email")
		rr := f.postForm("/about", values)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, f.bookings.created)
		assert.Contains(t, rr.Body.String(), "Riley Chen")
		assert.Contains(t, rr.Body.String(), "Invalid email address")
	})

	t.Run("store failure shows a retry banner with values preserved", func(t *testing.T) {
		f := newFixture(t)
		f.bookings.createErr = assert.AnError
		rr := f.postForm("/about", valid())

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "error submitting your request")
		assert.Contains(t, rr.Body.String(), "Riley Chen")
	})
}

func TestLoginFlow(t *testing.T) {
	t.Run("successful sign-in sets the cookie and follows the return target", func(t *testing.T) {
		f := newFixture(t)
		rr := f.postForm("/login", url.Values{
			"id_token":    {"tok"},
			"redirect_to": {"/admin/upload"},
		})

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin/upload", rr.Header().Get("Location"))

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == auth.CookieName && c.Value != "" {
				found = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found, "session cookie should be set")
	})

	t.Run("off-site return targets collapse to the dashboard", func(t *testing.T) {
		f := newFixture(t)
		for _, target := range []string{"https://evil.example", "//evil.example", ""} {
			rr := f.postForm("/login", url.Values{
				"id_token":    {"tok"},
				"redirect_to": {target},
			})
			assert.Equal(t, "/admin", rr.Header().Get("Location"), target)
		}
	})

	t.Run("failed sign-in re-renders the login page", func(t *testing.T) {
		f := newFixture(t)
		rr := f.postForm("/login", url.Values{"id_token": {""}})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Sign-in failed")
	})
}

func TestAdminBookingStatusUpdateFailure(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.bookings.items = []bookingdomain.BookingSubmission{{
		ID:            id,
		Name:          "Riley Chen",
		Email:         "riley@example.com",
		ProjectType:   "Custom Furniture",
		Budget:        "$1,000 - $5,000",
		Status:        bookingdomain.StatusPending,
		PreferredDate: time.Now().UTC().AddDate(0, 1, 0),
	}}
	f.bookings.updateErr = assert.AnError

	req := httptest.NewRequest(http.MethodPost, "/admin/bookings/"+id.String()+"/status",
		strings.NewReader(url.Values{"status": {"scheduled"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"})
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	location := rr.Header().Get("Location")
	assert.Contains(t, location, "error=")

	// following the redirect re-renders from the store's last known-good
	// value, not from the rejected transition
	req = httptest.NewRequest(http.MethodGet, location, nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"})
	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `value="pending" selected`)
	assert.NotContains(t, rr.Body.String(), `value="scheduled" selected`)
}

func TestAdminGuard(t *testing.T) {
	f := newFixture(t)

	t.Run("anonymous request is sent to login", func(t *testing.T) {
		rr := f.get("/admin")
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login?redirectTo=%2Fadmin", rr.Header().Get("Location"))
	})

	t.Run("session holder reaches the dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"})
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Admin Portal")
	})

	t.Run("signed-in visitor on login bounces to admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"})
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/admin", rr.Header().Get("Location"))
	})
}
