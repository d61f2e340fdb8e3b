package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/classikwoods/site-backend/internal/auth"
	bookingdomain "github.com/classikwoods/site-backend/internal/bookings/domain"
	projectdomain "github.com/classikwoods/site-backend/internal/projects/domain"
)

type homeData struct {
	Featured *projectdomain.Project
	Rest     []projectdomain.Project
}

// home renders the newest project as the hero block and the remainder as a
// grid. A fetch failure renders as zero projects, not as a page error.
func (h *Handler) home(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("home project fetch failed")
		items = nil
	}

	data := homeData{}
	if len(items) > 0 {
		data.Featured = &items[0]
		data.Rest = items[1:]
	}
	c.HTML(http.StatusOK, "home.tmpl", data)
}

type detailData struct {
	Project *projectdomain.Project
	BookURL string
}

// projectDetail renders the per-id page. Unknown or malformed ids get the
// not-found state rather than an error page.
func (h *Handler) projectDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", nil)
		return
	}

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.tmpl", nil)
		return
	}

	c.HTML(http.StatusOK, "project_detail.tmpl", detailData{
		Project: p,
		BookURL: "/about?project_type=" + url.QueryEscape(p.ProjectType) + "#booking",
	})
}

type aboutData struct {
	ProjectTypes []string
	BudgetRanges []string
	MinDate      string
	Form         bookingForm
	Errors       map[string]string
	Success      bool
	Banner       string
}

// about renders the bio page with the integrated booking form. A
// project_type query parameter pre-selects the form's category.
func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", aboutData{
		ProjectTypes: projectdomain.ProjectTypes,
		BudgetRanges: bookingdomain.BudgetRanges,
		MinDate:      time.Now().UTC().Format(dateLayout),
		Form:         bookingForm{ProjectType: c.Query("project_type")},
	})
}

// submitBooking handles the booking form post. Validation failures re-render
// with entered values preserved; a store failure shows a retry-eligible
// banner; success clears the form.
func (h *Handler) submitBooking(c *gin.Context) {
	form := bookingForm{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		ProjectType:   c.PostForm("project_type"),
		PreferredDate: c.PostForm("preferred_date"),
		Budget:        c.PostForm("budget"),
		Message:       c.PostForm("message"),
	}

	data := aboutData{
		ProjectTypes: projectdomain.ProjectTypes,
		BudgetRanges: bookingdomain.BudgetRanges,
		MinDate:      time.Now().UTC().Format(dateLayout),
		Form:         form,
	}

	date, errs := form.Validate(time.Now())
	if errs != nil {
		data.Errors = errs
		c.HTML(http.StatusBadRequest, "about.tmpl", data)
		return
	}

	_, err := h.bookings.Create(c.Request.Context(), bookingdomain.NewBookingSubmission{
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		ProjectType:   form.ProjectType,
		PreferredDate: date,
		Budget:        form.Budget,
		Message:       form.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("booking form insert failed")
		data.Banner = "There was an error submitting your request. Please try again."
		c.HTML(http.StatusInternalServerError, "about.tmpl", data)
		return
	}

	data.Form = bookingForm{}
	data.Success = true
	c.HTML(http.StatusOK, "about.tmpl", data)
}

// contactRedirect and bookingRedirect keep the old entry points working;
// both forms now live on the about page.
func (h *Handler) contactRedirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/about")
}

func (h *Handler) bookingRedirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/about")
}

type loginData struct {
	RedirectTo string
	Error      string
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", loginData{RedirectTo: c.Query("redirectTo")})
}

// submitLogin exchanges the hosted provider's ID token for a session cookie
// and returns the admin to where they were headed.
func (h *Handler) submitLogin(c *gin.Context) {
	idToken := c.PostForm("id_token")
	redirectTo := c.PostForm("redirect_to")
	// only same-site return targets
	if !strings.HasPrefix(redirectTo, "/") || strings.HasPrefix(redirectTo, "//") {
		redirectTo = "/admin"
	}

	cookie, err := h.sessions.Create(c.Request.Context(), idToken, h.sessionTTL)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", loginData{
			RedirectTo: redirectTo,
			Error:      "Sign-in failed. Please try again.",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, cookie, int(h.sessionTTL.Seconds()), "/", "", h.secure, true)
	c.Redirect(http.StatusSeeOther, redirectTo)
}

func (h *Handler) submitLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secure, true)
	c.Redirect(http.StatusSeeOther, "/")
}
