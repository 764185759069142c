package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Config configures NewRouter.
type Config struct {
	// AllowOrigins lists the origins allowed by CORS. Empty allows none
	// beyond same-origin requests.
	AllowOrigins []string

	Logger *slog.Logger
}

// NewRouter registers the API routes:
//
//	GET  /api/v1/health    - Health check
//	POST /api/v1/metadata  - Tags of an uploaded file as JSON
//	POST /api/v1/cover     - Embedded picture of an uploaded file
func NewRouter(h *Handler, cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger))

	if len(cfg.AllowOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = cfg.AllowOrigins
		config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		config.ExposeHeaders = []string{"X-Picture-Type", "Content-Length"}
		router.Use(cors.New(config))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/metadata", h.Metadata)
		api.POST("/cover", h.Cover)
	}

	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
