package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/auth"
	"github.com/meagherphilip/blogsmith/internal/mocks"
	"github.com/meagherphilip/blogsmith/internal/models"
)

func setupAuthService(t *testing.T) (*auth.Service, *mocks.MockUserRepository) {
	t.Helper()
	users := mocks.NewMockUserRepository()
	service := auth.NewService(users, "test-secret", time.Hour, zerolog.Nop())

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	users.Create(context.Background(), &models.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         "admin",
	})

	return service, users
}

func TestValidate(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()

	user, err := service.Validate(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if user == nil {
		t.Fatal("Expected user for correct password")
	}
	if user.ID != "user-1" {
		t.Errorf("Unexpected user: %s", user.ID)
	}
}

func TestValidateWrongPassword(t *testing.T) {
	service, _ := setupAuthService(t)

	user, err := service.Validate(context.Background(), "admin@example.com", "wrong")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if user != nil {
		t.Error("Expected nil user for wrong password")
	}
}

func TestValidateUnknownEmail(t *testing.T) {
	service, _ := setupAuthService(t)

	user, err := service.Validate(context.Background(), "nobody@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if user != nil {
		t.Error("Expected nil user for unknown email")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	service, _ := setupAuthService(t)

	token, err := service.IssueToken(&models.User{
		ID:    "user-1",
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  "admin",
	})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := service.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID() != "user-1" {
		t.Errorf("Expected subject user-1, got %s", claims.UserID())
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Unexpected email: %s", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Unexpected role: %s", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	service, _ := setupAuthService(t)
	other := auth.NewService(mocks.NewMockUserRepository(), "different-secret", time.Hour, zerolog.Nop())

	token, err := other.IssueToken(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := service.ParseToken(token); err == nil {
		t.Error("Expected error for token signed with another secret")
	}
}

func TestSeedAdmin(t *testing.T) {
	users := mocks.NewMockUserRepository()
	service := auth.NewService(users, "test-secret", time.Hour, zerolog.Nop())
	ctx := context.Background()

	if err := service.SeedAdmin(ctx, "admin@example.com", "s3cret", "Admin", "admin"); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users.Users))
	}

	// seeding again is a no-op once a user exists
	if err := service.SeedAdmin(ctx, "other@example.com", "s3cret", "Other", "admin"); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}
	if len(users.Users) != 1 {
		t.Errorf("Expected seeding to be skipped, got %d users", len(users.Users))
	}

	// login works with the seeded credentials
	user, err := service.Validate(ctx, "admin@example.com", "s3cret")
	if err != nil || user == nil {
		t.Fatalf("Expected seeded admin to validate, got user=%v err=%v", user, err)
	}
}

func TestSeedAdminWithoutCredentials(t *testing.T) {
	users := mocks.NewMockUserRepository()
	service := auth.NewService(users, "test-secret", time.Hour, zerolog.Nop())

	if err := service.SeedAdmin(context.Background(), "", "", "", "admin"); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}
	if len(users.Users) != 0 {
		t.Error("Expected no users without configured credentials")
	}
}

func TestSeedAdminInvalidRole(t *testing.T) {
	users := mocks.NewMockUserRepository()
	service := auth.NewService(users, "test-secret", time.Hour, zerolog.Nop())

	err := service.SeedAdmin(context.Background(), "admin@example.com", "s3cret", "Admin", "superuser")
	if err == nil {
		t.Fatal("Expected error for unknown role")
	}
	if len(users.Users) != 0 {
		t.Error("Expected no users seeded with an unknown role")
	}

	if err := service.SeedAdmin(context.Background(), "admin@example.com", "s3cret", "Admin", "editor"); err != nil {
		t.Fatalf("SeedAdmin failed for valid role: %v", err)
	}
	if users.EmailToUser["admin@example.com"].Role != "editor" {
		t.Error("Expected configured role on the seeded user")
	}
}
