package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookingdomain "github.com/classikwoods/site-backend/internal/bookings/domain"
	contactdomain "github.com/classikwoods/site-backend/internal/contacts/domain"
	projectdomain "github.com/classikwoods/site-backend/internal/projects/domain"
	"github.com/classikwoods/site-backend/internal/uploads"
)

type adminData struct {
	Tab             string
	Projects        []projectdomain.Project
	Contacts        []contactdomain.ContactSubmission
	Bookings        []bookingdomain.BookingSubmission
	NewContacts     int
	PendingBookings int
	ContactStatuses []contactdomain.Status
	BookingStatuses []bookingdomain.Status
	Notice          string
	Error           string
}

// dashboard refreshes all three collections on every load; local mutations
// round-trip through a redirect back here, so the page always re-renders
// from the store's last known-good state.
func (h *Handler) dashboard(c *gin.Context) {
	tab := c.Query("tab")
	switch tab {
	case "contacts", "bookings":
	default:
		tab = "projects"
	}

	data := adminData{
		Tab:             tab,
		ContactStatuses: contactdomain.Statuses,
		BookingStatuses: bookingdomain.Statuses,
		Notice:          c.Query("notice"),
		Error:           c.Query("error"),
	}

	ctx := c.Request.Context()
	var err error

	if data.Projects, err = h.projects.List(ctx); err != nil {
		log.Error().Err(err).Msg("admin project fetch failed")
		data.Error = "Some data failed to load. Refresh to retry."
	}
	if data.Contacts, err = h.contacts.List(ctx); err != nil {
		log.Error().Err(err).Msg("admin contact fetch failed")
		data.Error = "Some data failed to load. Refresh to retry."
	}
	if data.Bookings, err = h.bookings.List(ctx); err != nil {
		log.Error().Err(err).Msg("admin booking fetch failed")
		data.Error = "Some data failed to load. Refresh to retry."
	}

	for _, ct := range data.Contacts {
		if ct.Status == contactdomain.StatusNew {
			data.NewContacts++
		}
	}
	for _, b := range data.Bookings {
		if b.Status == bookingdomain.StatusPending {
			data.PendingBookings++
		}
	}

	c.HTML(http.StatusOK, "admin.tmpl", data)
}

func adminRedirect(c *gin.Context, tab, notice, errMsg string) {
	q := url.Values{}
	q.Set("tab", tab)
	if notice != "" {
		q.Set("notice", notice)
	}
	if errMsg != "" {
		q.Set("error", errMsg)
	}
	c.Redirect(http.StatusSeeOther, "/admin?"+q.Encode())
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		adminRedirect(c, "projects", "", "Project not found.")
		return
	}

	p, err := h.projects.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("featured toggle failed")
		adminRedirect(c, "projects", "", "Could not update the project.")
		return
	}

	notice := "Project removed from featured."
	if p.Featured {
		notice = "Project marked as featured."
	}
	adminRedirect(c, "projects", notice, "")
}

// deleteProject runs after the confirm step in the page; the template's
// submit handler asks for confirmation before this post is issued.
func (h *Handler) deleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		adminRedirect(c, "projects", "", "Project not found.")
		return
	}

	ok, err := h.projects.Delete(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("project delete failed")
		adminRedirect(c, "projects", "", "Could not delete the project.")
		return
	}
	if !ok {
		adminRedirect(c, "projects", "", "Project not found.")
		return
	}

	adminRedirect(c, "projects", "Project deleted.", "")
}

func (h *Handler) updateContactStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		adminRedirect(c, "contacts", "", "Contact submission not found.")
		return
	}

	status := contactdomain.Status(c.PostForm("status"))
	if !status.Valid() {
		adminRedirect(c, "contacts", "", "Invalid status.")
		return
	}

	if _, err := h.contacts.UpdateStatus(c.Request.Context(), id, status); err != nil {
		log.Error().Err(err).Msg("contact status update failed")
		adminRedirect(c, "contacts", "", "Could not update the status.")
		return
	}

	adminRedirect(c, "contacts", "Contact marked as "+string(status)+".", "")
}

func (h *Handler) updateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		adminRedirect(c, "bookings", "", "Booking submission not found.")
		return
	}

	status := bookingdomain.Status(c.PostForm("status"))
	if !status.Valid() {
		adminRedirect(c, "bookings", "", "Invalid status.")
		return
	}

	b, err := h.bookings.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		log.Error().Err(err).Msg("booking status update failed")
		adminRedirect(c, "bookings", "", "Could not update the status.")
		return
	}

	adminRedirect(c, "bookings", bookingStatusNotice(b.Status), "")
}

type uploadData struct {
	ProjectTypes []string
	Values       map[string]string
	Errors       map[string]string
	Notice       string
	Error        string
}

func (h *Handler) uploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_upload.tmpl", uploadData{
		ProjectTypes: projectdomain.ProjectTypes,
		Values:       map[string]string{},
	})
}

// createProject mirrors the API create: validate, upload the image first,
// then insert the row. An upload failure leaves no project behind.
func (h *Handler) createProject(c *gin.Context) {
	values := map[string]string{
		"title":        strings.TrimSpace(c.PostForm("title")),
		"description":  strings.TrimSpace(c.PostForm("description")),
		"project_type": strings.TrimSpace(c.PostForm("project_type")),
		"materials":    strings.TrimSpace(c.PostForm("materials")),
		"client_story": strings.TrimSpace(c.PostForm("client_story")),
	}

	data := uploadData{
		ProjectTypes: projectdomain.ProjectTypes,
		Values:       values,
	}

	errs := make(map[string]string)
	if values["title"] == "" {
		errs["title"] = "Title is required"
	}
	if values["description"] == "" {
		errs["description"] = "Description is required"
	}
	if !projectdomain.ValidProjectType(values["project_type"]) {
		errs["project_type"] = "Select a project type"
	}

	file, err := c.FormFile("image")
	if err != nil {
		errs["image"] = "Please select an image"
	} else if file.Size > uploads.MaxImageSize {
		errs["image"] = "Image size must be less than 5MB"
	} else if !uploads.ValidImageType(file.Header.Get("Content-Type")) {
		errs["image"] = "Please select an image file"
	}

	if len(errs) > 0 {
		data.Errors = errs
		c.HTML(http.StatusBadRequest, "admin_upload.tmpl", data)
		return
	}

	src, err := file.Open()
	if err != nil {
		data.Errors = map[string]string{"image": "Could not read the image file"}
		c.HTML(http.StatusBadRequest, "admin_upload.tmpl", data)
		return
	}
	defer src.Close()

	imageURL, err := h.uploader.Upload(c.Request.Context(),
		uploads.NewImageFilename(file.Filename), file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		log.Error().Err(err).Msg("project image upload failed")
		data.Error = "Failed to upload image. Please try again."
		c.HTML(http.StatusBadGateway, "admin_upload.tmpl", data)
		return
	}

	if _, err := h.projects.Create(c.Request.Context(), projectdomain.NewProject{
		ID:          uuid.New(),
		Title:       values["title"],
		Description: values["description"],
		ImageURL:    imageURL,
		ProjectType: values["project_type"],
		Materials:   values["materials"],
		ClientStory: values["client_story"],
	}); err != nil {
		// The uploaded image is now unreferenced; it is not cleaned up.
		log.Error().Err(err).Str("image_url", imageURL).Msg("project insert failed after upload")
		data.Error = "Failed to create the project. Please try again."
		c.HTML(http.StatusInternalServerError, "admin_upload.tmpl", data)
		return
	}

	adminRedirect(c, "projects", "Project uploaded successfully.", "")
}
