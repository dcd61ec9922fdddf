package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr :8080, got %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "inkstream.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.SMTPPort != "587" {
		t.Fatalf("expected default smtp port 587, got %s", cfg.SMTPPort)
	}
	if cfg.AdminEmail != "" {
		t.Fatalf("expected empty admin email by default, got %s", cfg.AdminEmail)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/blog.db")
	t.Setenv("ADMIN_EMAIL", "admin@example.com ")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")

	cfg := Load()

	if cfg.ListenAddr != "127.0.0.1:9090" {
		t.Fatalf("expected explicit listen addr, got %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/blog.db" {
		t.Fatalf("expected database path override, got %s", cfg.DatabasePath)
	}
	if cfg.AdminEmail != "admin@example.com" {
		t.Fatalf("expected trimmed admin email, got %q", cfg.AdminEmail)
	}
}
