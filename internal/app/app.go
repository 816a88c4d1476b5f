package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wilardzysenpai/portfolio-core/internal/config"
	"github.com/wilardzysenpai/portfolio-core/internal/database"
	"github.com/wilardzysenpai/portfolio-core/internal/middleware"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/cookies"
	pkgredis "github.com/wilardzysenpai/portfolio-core/internal/pkg/redis"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/token"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rdb    *pkgredis.Client
	codec  *token.Codec
	ck     *cookies.Manager
	logger *zap.Logger
}

// New initializes the application: config, DB, optional Redis, routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	var rdb *pkgredis.Client
	if cfg.RedisURL != "" {
		rdb, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	} else {
		logger.Warn("redis url not configured, public rate limiting disabled")
	}

	codec, err := token.NewCodec(cfg.JWTSecret, token.DefaultTTL)
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}
	ck := cookies.NewManager(!cfg.IsDev(), codec.TTL())

	app := &App{
		cfg:    cfg,
		router: newRouter(cfg, logger),
		db:     db,
		rdb:    rdb,
		codec:  codec,
		ck:     ck,
		logger: logger,
	}
	app.registerRoutes()

	return app, nil
}

// newRouter builds the gin engine with the shared middleware stack. 405
// handling must be enabled before routes are registered.
func newRouter(cfg *config.AppConfig, logger *zap.Logger) *gin.Engine {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))
	return router
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		c.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, origin)
		}
	} else {
		c.AllowOriginFunc = func(origin string) bool { return true }
	}
	return c
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
