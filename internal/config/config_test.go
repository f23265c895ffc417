package config

import (
	"os"
	"testing"
)

func TestLoad_WithRequiredVars(t *testing.T) {
	// Set required env vars
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	defer func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("AUTH_TOKEN_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("expected MongoURI to be set, got %s", cfg.MongoURI)
	}

	if cfg.TokenSecret != "0123456789abcdef0123456789abcdef" {
		t.Error("expected TokenSecret to be set")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	// Ensure required vars are unset
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("AUTH_TOKEN_SECRET")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required vars, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")
	defer func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("AUTH_TOKEN_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 3000 {
		t.Errorf("expected default AppPort 3000, got %d", cfg.AppPort)
	}

	if cfg.MongoDB != "bookshelf" {
		t.Errorf("expected default MongoDB 'bookshelf', got %s", cfg.MongoDB)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}

	cfg.AppEnv = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction to return false")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://a.example.com, https://b.example.com"}
	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(origins))
	}
	if origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
		t.Errorf("unexpected origins: %v", origins)
	}

	cfg.CORSAllowedOrigins = ""
	if got := cfg.GetCORSAllowedOrigins(); got != nil {
		t.Errorf("expected nil for empty origins, got %v", got)
	}
}
