package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restoration of the original value
	os.Unsetenv(key)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	unsetEnv(t, "JWT_SECRET")
	unsetEnv(t, "SERVER_PORT")
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
jwt:
  secret: "file-secret"
  access_token_expiration: "30m"
logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("Server.Mode = %q, want production", cfg.Server.Mode)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("JWT.Secret = %q, want file-secret", cfg.JWT.Secret)
	}
	if cfg.JWT.AccessTokenExpiration != "30m" {
		t.Errorf("JWT.AccessTokenExpiration = %q, want 30m", cfg.JWT.AccessTokenExpiration)
	}
	// Defaults fill in what the file omits
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want the localhost default", cfg.Database.Host)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "file-secret"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want the 7070 env override", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want the env override", cfg.JWT.Secret)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	unsetEnv(t, "JWT_SECRET")
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error when JWT secret is missing")
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	unsetEnv(t, "JWT_ACCESS_TOKEN_EXPIRATION")
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  access_token_expiration: "not-a-duration"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed token expiration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "bis"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "bisdb"

	want := "postgres://bis:pw@db.internal:5433/bisdb?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
