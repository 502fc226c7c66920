package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
)

// Handler wires the HTTP transport to the FAQ chat service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Chat answers one prompt against the FAQ catalog.
//
// The prompt check is deliberately a truthiness test: a missing field, a
// non-string value (bind failure), and an empty string all produce the same
// literal 400 body, while a whitespace-only prompt passes through and falls
// back gracefully inside the matcher.
func (h *Handler) Chat(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", err.Error(), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most frequently asked prompts.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", err.Error(), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
