package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"marketgate/internal/version"
)

type Handler struct {
	tracer     trace.Tracer
	mcpHandler http.Handler
}

func New(tracer trace.Tracer, mcpHandler http.Handler) *Handler {
	return &Handler{
		tracer:     tracer,
		mcpHandler: mcpHandler,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	if h.mcpHandler != nil {
		wrapped := gin.WrapH(h.mcpHandler)
		r.GET("/mcp", wrapped)
		r.POST("/mcp", wrapped)
		r.DELETE("/mcp", wrapped)
	}
}

// Health reports liveness. Unauthenticated so load balancers can probe it.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"app":     version.AppName,
		"version": version.Version,
	})
}
