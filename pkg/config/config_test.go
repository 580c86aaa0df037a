package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want dev", cfg.AppEnv)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.CatalogBackend != "memory" {
		t.Errorf("CatalogBackend = %q, want memory", cfg.CatalogBackend)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_BACKEND", "postgres")
	t.Setenv("POSTGRES_PORT", "15432")

	cfg := Load()

	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.CatalogBackend != "postgres" {
		t.Errorf("CatalogBackend = %q, want postgres", cfg.CatalogBackend)
	}
	if cfg.Postgres.Port != 15432 {
		t.Errorf("Postgres.Port = %d, want 15432", cfg.Postgres.Port)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg := Load()
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want default 8080", cfg.HTTPPort)
	}
}
