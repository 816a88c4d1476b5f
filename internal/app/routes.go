package app

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wilardzysenpai/portfolio-core/internal/middleware"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/admin"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/auth"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/content"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/message"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/settings"
	"github.com/wilardzysenpai/portfolio-core/internal/modules/user"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/mail"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

var processStart = time.Now()

func (a *App) registerRoutes() {
	r := a.router

	gate := middleware.NewGate(a.codec, a.ck, a.logger, loginPath, dashboardPath)
	protect := gate.Protect()

	r.NoMethod(response.MethodNotAllowed)
	// Unknown /admin pages stay behind the gate: a browser without a session
	// gets the login redirect, not a bare JSON 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/admin/") {
			protect(c)
			if c.IsAborted() {
				return
			}
		}
		response.NotFound(c, "")
	})

	r.GET("/", a.siteInfo)
	r.GET("/healthz", a.health)

	// Services.
	authSvc := auth.NewService(a.db, a.codec, a.logger)
	userSvc := user.NewService(a.db)
	settingsSvc := settings.NewService(a.db)
	messageSvc := message.NewService(a.db)
	mailer := mail.New(a.cfg.Mail)

	// Handlers.
	authH := auth.NewHandler(authSvc, a.ck, a.logger)
	userH := user.NewHandler(userSvc, a.logger)
	settingsH := settings.NewHandler(settingsSvc, a.logger)
	messageH := message.NewHandler(messageSvc, settingsSvc, mailer, a.logger)
	contentH := content.NewHandler()
	adminH := admin.NewHandler()

	var limit gin.HandlerFunc
	if a.rdb != nil {
		limit = middleware.RateLimit(a.rdb.Raw())
	}

	// Public API. Rate limited when Redis is available.
	api := r.Group("/api")
	public := api.Group("")
	if limit != nil {
		public.Use(limit)
	}
	authH.RegisterRoutes(public)
	contentH.RegisterRoutes(public)
	settingsH.RegisterPublicRoutes(public)
	messageH.RegisterPublicRoutes(public)

	// Admin pages. The gate redirects browsers instead of returning JSON.
	adminPages := r.Group("/admin")
	adminPages.Use(protect)
	adminH.RegisterRoutes(adminPages)

	// Admin API. The gate runs before the limiter so authenticated requests
	// never burn the public per-IP budget.
	adminAPI := api.Group("/admin")
	adminAPI.Use(protect)
	if limit != nil {
		adminAPI.Use(limit)
	}
	userH.RegisterRoutes(adminAPI)
	settingsH.RegisterAdminRoutes(adminAPI)
	messageH.RegisterAdminRoutes(adminAPI)
}

func (a *App) siteInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"name":   "portfolio-core",
		"author": "WilardzySenpai",
		"uptime": time.Since(processStart).Truncate(time.Second).String(),
	})
}

func (a *App) health(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if sqlDB, err := a.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "down"
	} else {
		status["database"] = "up"
	}

	if a.rdb != nil {
		if err := a.rdb.Ping(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	response.OK(c, status)
}
