package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("Unexpected default model: %s", cfg.AI.Model)
	}
	if cfg.Generation.PollInterval != 2*time.Second {
		t.Errorf("Unexpected default poll interval: %s", cfg.Generation.PollInterval)
	}
	if cfg.Auth.AdminRole != "admin" {
		t.Errorf("Unexpected default admin role: %s", cfg.Auth.AdminRole)
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error without SESSION_SECRET")
	}
}

func TestLoadRejectsDefaultSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", DefaultSessionSecret)

	if _, err := Load(); err == nil {
		t.Error("Expected error for the documented placeholder secret")
	}
}

func TestResearchEnabled(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")
	t.Setenv("BRAVE_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ResearchEnabled() {
		t.Error("Expected research disabled without an API key")
	}

	t.Setenv("BRAVE_API_KEY", "some-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.ResearchEnabled() {
		t.Error("Expected research enabled with an API key")
	}
}
