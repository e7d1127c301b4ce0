package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "CORS_ALLOW_ORIGINS", "POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8000 {
		t.Fatalf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseURL != "portfolio.db" {
		t.Fatalf("expected portfolio.db, got %q", cfg.DatabaseURL)
	}
	if cfg.LogLevel != "INFO" {
		t.Fatalf("expected INFO, got %q", cfg.LogLevel)
	}
	if cfg.PostgresMaxOpenConns != 10 || cfg.PostgresMaxIdleConns != 5 {
		t.Fatalf("expected postgres pool 10/5, got %d/%d", cfg.PostgresMaxOpenConns, cfg.PostgresMaxIdleConns)
	}
	if cfg.CORSAllowOrigins != nil {
		t.Fatalf("expected no explicit origins, got %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SQLITE_FOREIGN_KEYS", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Fatalf("expected postgres, got %q", cfg.DatabaseDriver)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Fatalf("expected DEBUG, got %q", cfg.LogLevel)
	}
	if cfg.SQLiteForeignKeys {
		t.Fatalf("expected foreign keys disabled")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_INT", "not-a-number")
	if got := getEnvInt("PORTFOLIO_TEST_INT", 42); got != 42 {
		t.Fatalf("expected fallback 42, got %d", got)
	}
}
