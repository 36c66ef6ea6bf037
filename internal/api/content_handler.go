package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/auth"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/service"
)

// ContentHandler handles blog, theme and legacy post reads
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// GetBlog handles GET /api/blogs/:id. Lookup is by id first, then by slug
// so rendered pages can use either.
func (h *ContentHandler) GetBlog(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	blog, err := h.services.Content.GetBlog(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("blog_id", id).Msg("Failed to get blog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get blog"})
		return
	}
	if blog == nil {
		blog, err = h.services.Content.GetBlogBySlug(ctx, id)
		if err != nil {
			h.log.Error().Err(err).Str("slug", id).Msg("Failed to get blog by slug")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get blog"})
			return
		}
	}
	if blog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// ListBlogs handles GET /api/blogs with an optional status filter
func (h *ContentHandler) ListBlogs(c *gin.Context) {
	status := models.BlogStatus(c.Query("status"))
	if status != "" && status != models.BlogStatusGenerating &&
		status != models.BlogStatusDraft && status != models.BlogStatusPublished {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	blogs, err := h.services.Content.ListBlogs(c.Request.Context(), status)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list blogs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blogs"})
		return
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}

	c.JSON(http.StatusOK, blogs)
}

// ListPosts handles GET /api/posts
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.services.Content.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/posts/:slug
func (h *ContentHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.services.Content.GetPost(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreateTheme handles POST /api/themes
func (h *ContentHandler) CreateTheme(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var theme models.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	theme.CreatedBy = claims.UserID()

	if err := h.services.Content.CreateTheme(c.Request.Context(), &theme); err != nil {
		h.log.Error().Err(err).Msg("Failed to create theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create theme"})
		return
	}

	c.JSON(http.StatusOK, theme)
}

// ListThemes handles GET /api/themes
func (h *ContentHandler) ListThemes(c *gin.Context) {
	themes, err := h.services.Content.ListThemes(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list themes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list themes"})
		return
	}
	if themes == nil {
		themes = []*models.Theme{}
	}

	c.JSON(http.StatusOK, themes)
}

// SeedPosts handles POST /api/seed
func (h *ContentHandler) SeedPosts(c *gin.Context) {
	inserted, err := h.services.Content.SeedPosts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to seed posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed posts"})
		return
	}

	message := "Database seeded with finance posts"
	if inserted == 0 {
		message = "Posts already seeded"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
