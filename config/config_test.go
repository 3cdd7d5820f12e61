package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 3333},
		Auth:   AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: 24 * time.Hour},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"EmptySecret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"ShortSecret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"ZeroTTL", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
		{"BadPort", func(c *Config) { c.Server.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCHOLAR_AUTH_JWT_SECRET", "env-secret-at-least-16")
	t.Setenv("SCHOLAR_DB_HOST", "pg.internal")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 3333 {
		t.Errorf("expected default port 3333, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Database.Host != "pg.internal" {
		t.Errorf("expected env override for db.host, got %q", cfg.Database.Host)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "scholar.yaml")
	yaml := "server:\n  port: 8080\nauth:\n  jwt_secret: file-secret-at-least-16\n  token_ttl: 2h\nrate_limit:\n  login_limit: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Auth.TokenTTL != 2*time.Hour || cfg.RateLimit.LoginLimit != 3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCHOLAR_AUTH_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Error("expected an error without a jwt secret")
	}
}
