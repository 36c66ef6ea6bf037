package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/auth"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/service"
)

// GenerateHandler handles generation endpoints
type GenerateHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(services *service.Services, log zerolog.Logger) *GenerateHandler {
	return &GenerateHandler{
		services: services,
		log:      log.With().Str("handler", "generate").Logger(),
	}
}

// CreateGeneration handles POST /api/generate. The job is only recorded
// here; the background processor does the actual work, so the response
// returns as soon as the row exists.
func (h *GenerateHandler) CreateGeneration(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	gen, err := h.services.Generation.CreateGeneration(c.Request.Context(), &req, claims.UserID())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create generation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start generation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"generationId": gen.ID,
		"message":      "Blog generation started. This may take 3-6 minutes.",
	})
}

// GetStatus handles GET /api/generate/status?id=
func (h *GenerateHandler) GetStatus(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Generation ID required"})
		return
	}

	gen, err := h.services.Generation.GetGeneration(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("generation_id", id).Msg("Failed to get generation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get generation"})
		return
	}
	if gen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Generation not found"})
		return
	}

	c.JSON(http.StatusOK, gen)
}
