package roomWeb

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
	"github.com/zabeloliver/room-monitor/roomApp/roomSession"
)

// NewRouter exposes the three app destinations over HTTP. Every request to
// home or details mounts its own screen, bound to the request's lifetime.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))

	r.GET("/login", h.GetLogin)
	r.POST("/login", h.PostLogin)

	authed := r.Group("/")
	authed.Use(h.RequireSession)
	{
		authed.POST("/logout", h.PostLogout)
		authed.GET("/home", h.GetHome)
		authed.GET("/details", h.GetMissingDetails)
		authed.GET("/details/:roomId", h.GetDetails)
	}
	return r
}

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Handler holds what the web front-end needs. The directory is the single
// process-wide API client.
type Handler struct {
	directory roomScreens.Directory
	gate      *roomSession.Gate
	tokens    *roomSession.Tokens
	images    *roomScreens.ImageCatalogue
	logger    *zap.SugaredLogger
}

func NewHandler(directory roomScreens.Directory, gate *roomSession.Gate, tokens *roomSession.Tokens, images *roomScreens.ImageCatalogue, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if images == nil {
		images = roomScreens.DefaultImages()
	}
	return &Handler{
		directory: directory,
		gate:      gate,
		tokens:    tokens,
		images:    images,
		logger:    logger,
	}
}
