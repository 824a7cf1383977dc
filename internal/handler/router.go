package handler

import (
	"net/http"
	"time"

	"canvas-server/internal/config"
	"canvas-server/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

// NewRouter assembles the gin engine: middleware, API routes, health,
// metrics and, last, the client bundle catch-all.
func NewRouter(cfg *config.Config, advisorHandler *AdvisorHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true

	// --- Middleware ---
	// Order matters: request ID and access log first, then recovery.
	router.Use(middleware.GinZapLogger(logger.Named("http")))
	router.Use(gin.Recovery())

	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	router.Use(cors.New(newCORSConfig(cfg)))

	// --- Metrics ---
	// Middleware only wraps routes registered after it, so this goes before any route.
	if cfg.MetricsEnabled {
		p := ginprometheus.NewPrometheus("gin")
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			if route := c.FullPath(); route != "" {
				return route
			}
			return "unmatched"
		}
		p.Use(router)
	}

	// --- Health ---
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// --- API routes ---
	advisorHandler.RegisterRoutes(router)

	// --- Client bundle catch-all ---
	RegisterStaticRoutes(router, cfg.DistDir, logger.Named("static"))

	return router
}

func newCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	if cfg.AllowsAnyOrigin() {
		// Echo the caller's origin instead of "*" so credentialed requests work.
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = cfg.GetAllowedOrigins()
	}
	// Preflight answers are cached by the browser for MaxAge.
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}
