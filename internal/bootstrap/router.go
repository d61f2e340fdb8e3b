package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/classikwoods/site-backend/internal/api/http"
	"github.com/classikwoods/site-backend/internal/api/http/middleware"
	"github.com/classikwoods/site-backend/internal/auth"
	authhttp "github.com/classikwoods/site-backend/internal/auth/http"
	bookingshttp "github.com/classikwoods/site-backend/internal/bookings/http"
	bookingsrepo "github.com/classikwoods/site-backend/internal/bookings/repository"
	contactshttp "github.com/classikwoods/site-backend/internal/contacts/http"
	contactsrepo "github.com/classikwoods/site-backend/internal/contacts/repository"
	"github.com/classikwoods/site-backend/internal/projects"
	projectshttp "github.com/classikwoods/site-backend/internal/projects/http"
	projectsrepo "github.com/classikwoods/site-backend/internal/projects/repository"
	"github.com/classikwoods/site-backend/internal/uploads"
	"github.com/classikwoods/site-backend/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Environment string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	CacheTTL    time.Duration
	Uploader    uploads.Uploader
	Sessions    auth.Sessions

	SessionTTL time.Duration

	// Form submissions allowed per client IP per minute.
	FormRatePerMinute int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	var projectStore projects.Store = projectsrepo.NewRepo(dep.DB)
	if dep.Redis != nil {
		projectStore = projects.NewCached(projectStore, dep.Redis, dep.CacheTTL)
	}
	contactRepo := contactsrepo.NewRepo(dep.DB)
	bookingRepo := bookingsrepo.NewRepo(dep.DB)

	secure := dep.Environment == "production"

	projectHandler := projectshttp.New(projectStore, dep.Uploader)
	contactHandler := contactshttp.New(contactRepo)
	bookingHandler := bookingshttp.New(bookingRepo)
	authHandler := authhttp.New(dep.Sessions, dep.SessionTTL, secure)

	if dep.FormRatePerMinute == 0 {
		dep.FormRatePerMinute = 5
	}

	api := r.Group("/api/v1")

	projectHandler.RegisterPublic(api.Group("/projects"))

	forms := api.Group("", middleware.FormRateLimit(dep.FormRatePerMinute))
	contactHandler.RegisterPublic(forms.Group("/contacts"))
	bookingHandler.RegisterPublic(forms.Group("/bookings"))

	authHandler.Register(api.Group("/auth"))

	admin := api.Group("/admin", auth.RequireSession(dep.Sessions))
	projectHandler.RegisterAdmin(admin.Group("/projects"))
	contactHandler.RegisterAdmin(admin.Group("/contacts"))
	bookingHandler.RegisterAdmin(admin.Group("/bookings"))

	pages := web.New(web.Deps{
		Projects:   projectStore,
		Contacts:   contactRepo,
		Bookings:   bookingRepo,
		Uploader:   dep.Uploader,
		Sessions:   dep.Sessions,
		SessionTTL: dep.SessionTTL,
		Secure:     secure,
	})
	pages.Register(r, auth.NewGuard(dep.Sessions))

	return r
}
