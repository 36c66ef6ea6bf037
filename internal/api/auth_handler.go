package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/auth"
)

// AuthHandler handles the credential callback endpoints
type AuthHandler struct {
	auth *auth.Service
	log  zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth: authService,
		log:  log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login. On success a session cookie is set
// and the token is also returned for non-browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.auth.Validate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("Credential validation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate credentials"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(auth.CookieName, token, int(h.auth.TokenTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
