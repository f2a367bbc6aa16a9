package server

import (
	"fmt"

	"github.com/bradycon/gatherpoint/config"
	"github.com/bradycon/gatherpoint/internal/handlers"
	"github.com/bradycon/gatherpoint/internal/metric"
	"github.com/bradycon/gatherpoint/internal/middleware"
	"github.com/bradycon/gatherpoint/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), metric.Middleware())

	setupRoutes(r, db, adminChecker(cfg))

	return r.Run(":" + cfg.Port)
}

func adminChecker(cfg *config.Config) middleware.CredentialChecker {
	if cfg.AdminPasswordHash != "" {
		return middleware.BcryptChecker(cfg.AdminUser, cfg.AdminPasswordHash)
	}
	if cfg.AdminPassword != "" {
		return middleware.PlainChecker(cfg.AdminUser, cfg.AdminPassword)
	}
	// No credentials configured: the admin area stays closed.
	return func(string, string) bool { return false }
}

func setupRoutes(r *gin.Engine, db *gorm.DB, check middleware.CredentialChecker) {
	eventRepo := repository.NewEventRepo(db)
	attendeeRepo := repository.NewAttendeeRepo(db)
	accommodationRepo := repository.NewAccommodationRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	eventHandler := handlers.NewEventHandler(eventRepo)
	attendeeHandler := handlers.NewAttendeeHandler(attendeeRepo)
	accommodationHandler := handlers.NewAccommodationHandler(accommodationRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)
	statsHandler := handlers.NewStatsHandler(statsRepo)
	publicHandler := handlers.NewPublicHandler(eventRepo, accommodationRepo, attendeeRepo, attendanceRepo)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/healthz", healthHandler.Check)
	r.GET("/metrics", metric.Handler())

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminGate(check))
	{
		admin.GET("/events", eventHandler.List)
		admin.POST("/events", eventHandler.Create)
		admin.PUT("/events", eventHandler.Update)
		admin.DELETE("/events", eventHandler.Delete)

		admin.GET("/attendees", attendeeHandler.List)
		admin.POST("/attendees", attendeeHandler.Create)
		admin.PUT("/attendees", attendeeHandler.Update)
		admin.DELETE("/attendees", attendeeHandler.Delete)

		admin.GET("/accommodations", accommodationHandler.List)
		admin.POST("/accommodations", accommodationHandler.Create)
		admin.PUT("/accommodations", accommodationHandler.Update)
		admin.DELETE("/accommodations", accommodationHandler.Delete)

		admin.GET("/event-attendance", attendanceHandler.List)
		admin.POST("/event-attendance", attendanceHandler.Create)
		admin.PUT("/event-attendance", attendanceHandler.Update)
		admin.DELETE("/event-attendance", attendanceHandler.Delete)

		admin.GET("/stats", statsHandler.Get)
	}

	public := r.Group("/api/public")
	{
		public.GET("/events", publicHandler.ListEvents)
		public.GET("/events/upcoming", publicHandler.UpcomingEvents)
		public.GET("/events/:id", publicHandler.GetEvent)
		public.GET("/events/:id/attendees", publicHandler.EventAttendees)

		public.GET("/accommodations", publicHandler.ListAccommodations)
		public.GET("/accommodations/:id", publicHandler.GetAccommodation)
		public.GET("/accommodations/:id/attendees", publicHandler.AccommodationAttendees)

		public.GET("/attendees/names", publicHandler.AttendeeNames)
		public.GET("/attendees/search", publicHandler.SearchAttendees)

		// Self-RSVP shares the admin create's validation rules.
		public.POST("/event-attendance", attendanceHandler.Create)
		public.POST("/register", publicHandler.Register)
	}
}
