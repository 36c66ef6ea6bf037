package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
)

// CookieName is the session cookie set on successful login
const CookieName = "session"

const issuer = "blogsmith"

// Claims are the session token claims
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *Claims) UserID() string {
	return c.Subject
}

// Service validates credentials and issues session tokens
type Service struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	log      zerolog.Logger
}

// NewService creates an auth service backed by the user repository
func NewService(users repository.UserRepository, secret string, tokenTTL time.Duration, log zerolog.Logger) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		log:      log.With().Str("component", "auth").Logger(),
	}
}

// Validate checks an email/password pair against the stored hash. Both an
// unknown email and a wrong password return (nil, nil) so callers cannot
// tell the two apart.
func (s *Service) Validate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return user, nil
}

// IssueToken creates a signed session token for the user
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies a session token and returns its claims
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// TokenTTL returns the configured session lifetime
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SeedAdmin creates the configured admin account when no users exist yet.
// With no admin credentials configured it does nothing.
func (s *Service) SeedAdmin(ctx context.Context, email, password, name, role string) error {
	if email == "" || password == "" {
		return nil
	}
	if !models.ValidRoles[role] {
		return fmt.Errorf("invalid seed role %q", role)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("Seeded admin user")
	return nil
}
