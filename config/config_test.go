package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CINEBOOK_API_URL", "")
	t.Setenv("CINEBOOK_TIMEOUT_SECONDS", "")
	t.Setenv("CINEBOOK_DEBUG", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:3000/api" {
		t.Fatalf("unexpected default base url %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.Timeout)
	}
	if cfg.Debug {
		t.Fatal("debug should default to off")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CINEBOOK_API_URL", "https://api.cinebook.example/api")
	t.Setenv("CINEBOOK_TIMEOUT_SECONDS", "5")
	t.Setenv("CINEBOOK_DEBUG", "1")

	cfg := Load()
	if cfg.APIBaseURL != "https://api.cinebook.example/api" {
		t.Fatalf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Fatal("expected debug on")
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("CINEBOOK_TIMEOUT_SECONDS", "banana")
	if cfg := Load(); cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	t.Setenv("CINEBOOK_TIMEOUT_SECONDS", "-3")
	if cfg := Load(); cfg.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
}
