package handler

import (
	"net/http"

	"campusbuild/internal/ai"
	"campusbuild/internal/metrics"
	"campusbuild/internal/ratelimit"
	"campusbuild/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	Assistant *ai.Assistant
	Limiter   *ratelimit.Limiter
}

type GenerateIdeaRequest struct {
	Topic string `json:"topic"`
}

// GenerateIdea is the prose idea flow. Failures degrade to a fallback string
// with a 200 so the storefront widget can always render something.
func (h *AIHandler) GenerateIdea(c *gin.Context) {
	var req GenerateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Limiter.Allow(c.Request.Context(), c.ClientIP()) {
		metrics.IdeasGenerated.WithLabelValues("text", "rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please slow down"})
		return
	}

	text, err := h.Assistant.GenerateIdeaText(c.Request.Context(), req.Topic)
	if err != nil {
		logger.Log.Warn("idea generation failed", zap.Error(err))
		metrics.IdeasGenerated.WithLabelValues("text", "fallback").Inc()
		c.JSON(http.StatusOK, gin.H{"idea": ai.FallbackFor(err), "fallback": true})
		return
	}

	metrics.IdeasGenerated.WithLabelValues("text", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"idea": text, "fallback": false})
}

// GenerateIdeaStructured is the guided flow returning a {title, description}
// pair for the custom order form to prefill.
func (h *AIHandler) GenerateIdeaStructured(c *gin.Context) {
	var req GenerateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Limiter.Allow(c.Request.Context(), c.ClientIP()) {
		metrics.IdeasGenerated.WithLabelValues("structured", "rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please slow down"})
		return
	}

	idea, err := h.Assistant.GenerateIdeaStructured(c.Request.Context(), req.Topic)
	if err != nil {
		logger.Log.Warn("structured idea generation failed", zap.Error(err))
		metrics.IdeasGenerated.WithLabelValues("structured", "fallback").Inc()
		c.JSON(http.StatusOK, gin.H{"idea": gin.H{"title": "", "description": ai.FallbackFor(err)}, "fallback": true})
		return
	}

	metrics.IdeasGenerated.WithLabelValues("structured", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"idea": idea, "fallback": false})
}
