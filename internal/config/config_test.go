package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 2333 {
		t.Fatalf("port = %d, want 2333", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatal("default env should be development")
	}
	if !strings.Contains(cfg.DSN, "/eduforge?") {
		t.Fatalf("dsn = %q, want default database name", cfg.DSN)
	}
	if !strings.Contains(cfg.DSN, "parseTime=True") {
		t.Fatalf("dsn = %q, want parseTime enabled", cfg.DSN)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := `
port: 9000
env: production
database:
  host: db.internal
  name: eduforge_prod
ai:
  tutor_model: gpt-4o-mini
  providers:
    - id: main
      type: OpenAI
      api_key: sk-test
      enabled: true
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.IsDev() {
		t.Fatal("env production should not be dev")
	}
	if !strings.Contains(cfg.DSN, "@tcp(db.internal:3306)/eduforge_prod?") {
		t.Fatalf("dsn = %q", cfg.DSN)
	}
	if len(cfg.AI.Providers) != 1 || cfg.AI.Providers[0].APIKey != "sk-test" {
		t.Fatalf("providers = %+v", cfg.AI.Providers)
	}
	if cfg.AI.TutorModel != "gpt-4o-mini" {
		t.Fatalf("tutor model = %q", cfg.AI.TutorModel)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "8080")
	t.Setenv("DSN", "user:pass@tcp(10.0.0.1:3306)/other")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("AI_API_KEY", "sk-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port = %d, want env override 8080", cfg.Port)
	}
	if cfg.DSN != "user:pass@tcp(10.0.0.1:3306)/other" {
		t.Fatalf("dsn = %q, want env override untouched", cfg.DSN)
	}
	if cfg.JWTSecret != "override-secret" {
		t.Fatalf("jwt secret = %q", cfg.JWTSecret)
	}
	if len(cfg.AI.Providers) != 1 || cfg.AI.Providers[0].APIKey != "sk-env" {
		t.Fatalf("providers = %+v, want synthesized default provider", cfg.AI.Providers)
	}
}
