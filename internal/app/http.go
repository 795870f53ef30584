package app

import (
	"context"
	"net/http"

	authhandler "github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/auth/handler"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/backend"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/config"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/gate"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/identity"
	portalhandler "github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/portal/handler"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	client := backend.New(cfg.BackendBaseURL)
	store := session.NewRedisStore(infra.Redis.Client, cfg.SessionTTL)
	sessions := session.NewManager(store, client)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := authhandler.NewHandler(sessions, cookieOpts, cfg.SessionTTL)
	portalHandler := portalhandler.NewHandler(client, sessions, cookieOpts)

	requireStudent := gate.RequireRoles(sessions, identity.RoleStudent)
	requireEmployer := gate.RequireRoles(sessions, identity.RoleEmployer)
	requireAdmin := gate.RequireRoles(sessions, identity.RoleAdmin)
	requireUser := gate.RequireRoles(sessions,
		identity.RoleStudent, identity.RoleEmployer, identity.RoleAdmin)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	// ----------------------------
	// Public pages
	// ----------------------------

	router.Static("/assets", "./web/assets")

	router.GET("/", func(c *gin.Context) {
		c.File("./web/index.html")
	})
	router.GET("/login", func(c *gin.Context) {
		c.File("./web/login.html")
	})
	router.GET("/register", func(c *gin.Context) {
		c.File("./web/register.html")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Role-gated pages
	// ----------------------------

	studentPages := router.Group("/student", requireStudent)
	studentPages.GET("", func(c *gin.Context) {
		c.File("./web/student/dashboard.html")
	})
	studentPages.GET("/profile", func(c *gin.Context) {
		c.File("./web/student/profile.html")
	})
	studentPages.GET("/jobs", func(c *gin.Context) {
		c.File("./web/student/jobs.html")
	})
	studentPages.GET("/jobs/:id", func(c *gin.Context) {
		c.File("./web/student/job.html")
	})

	employerPages := router.Group("/employer", requireEmployer)
	employerPages.GET("", func(c *gin.Context) {
		c.File("./web/employer/dashboard.html")
	})
	employerPages.GET("/new-job", func(c *gin.Context) {
		c.File("./web/employer/new-job.html")
	})

	adminPages := router.Group("/admin", requireAdmin)
	adminPages.GET("", func(c *gin.Context) {
		c.File("./web/admin/dashboard.html")
	})

	// ----------------------------
	// JSON API
	// ----------------------------

	api := router.Group("/api")

	authHandler.RegisterRoutes(api, requireUser)

	student := api.Group("", requireStudent)
	student.GET("/jobs", portalHandler.ListJobs)
	student.GET("/jobs/:id", portalHandler.GetJob)
	student.POST("/applications", portalHandler.Apply)
	student.GET("/applications/student", portalHandler.StudentApplications)

	// Employer listings live under /employer/jobs rather than the
	// backend's /jobs/employer: the GET tree already has /jobs/:id and
	// the router cannot hold a static sibling of that wildcard.
	employer := api.Group("", requireEmployer)
	employer.GET("/employer/jobs", portalHandler.EmployerJobs)
	employer.POST("/jobs", portalHandler.CreateJob)
	employer.PUT("/jobs/:id", portalHandler.UpdateJob)
	employer.DELETE("/jobs/:id", portalHandler.DeleteJob)
	employer.GET("/applications/job/:jobId", portalHandler.JobApplications)
	employer.PATCH("/applications/:id", portalHandler.UpdateApplicationStatus)

	admin := api.Group("", requireAdmin)
	admin.GET("/users/stats", portalHandler.Stats)
	admin.GET("/users", portalHandler.ListUsers)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.Redis.Close()
	}, nil
}
