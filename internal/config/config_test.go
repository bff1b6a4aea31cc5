package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, `server: {}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.Retention.TTL != 0 {
		t.Errorf("retention.ttl: got %v, want 0", cfg.Server.Retention.TTL)
	}
	if cfg.Server.Stream.Interval != DefaultStreamInterval {
		t.Errorf("stream.interval: got %v, want %v", cfg.Server.Stream.Interval, DefaultStreamInterval)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9091
  auth:
    mode: apikey
    key_env: MY_KEY
    header: x-fit-key
  retention:
    ttl: 24h
  stream:
    interval: 2s
  alerts:
    rules:
      - name: weak-cohort
        condition: "global_points < 1.5"
        severity: warning
        cooldown: 30m
    webhooks:
      - type: slack
        url_env: SLACK_URL
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9091 {
		t.Errorf("http_port: got %d, want 9091", cfg.Server.HTTPPort)
	}
	if cfg.Server.Auth.Mode != "apikey" {
		t.Errorf("auth.mode: got %q, want apikey", cfg.Server.Auth.Mode)
	}
	if cfg.Server.Auth.EffectiveHeader() != "x-fit-key" {
		t.Errorf("header: got %q, want x-fit-key", cfg.Server.Auth.EffectiveHeader())
	}
	if cfg.Server.Retention.TTL != 24*time.Hour {
		t.Errorf("retention.ttl: got %v, want 24h", cfg.Server.Retention.TTL)
	}
	if cfg.Server.Stream.Interval != 2*time.Second {
		t.Errorf("stream.interval: got %v, want 2s", cfg.Server.Stream.Interval)
	}
	if len(cfg.Server.Alerts.Rules) != 1 {
		t.Fatalf("alerts.rules: got %d, want 1", len(cfg.Server.Alerts.Rules))
	}
	r := cfg.Server.Alerts.Rules[0]
	if r.Name != "weak-cohort" || r.Cooldown != 30*time.Minute {
		t.Errorf("rule: got %+v", r)
	}
	if len(cfg.Server.Alerts.Webhooks) != 1 || cfg.Server.Alerts.Webhooks[0].Type != "slack" {
		t.Errorf("webhooks: got %+v", cfg.Server.Alerts.Webhooks)
	}
}

func TestLoad_DefaultHeader(t *testing.T) {
	p := writeConfig(t, `server:
  auth:
    mode: apikey
    key_env: K
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h := cfg.Server.Auth.EffectiveHeader(); h != "x-api-key" {
		t.Errorf("EffectiveHeader: got %q, want x-api-key", h)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 99999
`)
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for out-of-range port")
	}
}

func TestLoad_UnknownAuthMode(t *testing.T) {
	p := writeConfig(t, `server:
  auth:
    mode: oauth
`)
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for unknown auth mode")
	}
}

func TestLoad_NegativeTTL(t *testing.T) {
	p := writeConfig(t, `server:
  retention:
    ttl: -5m
`)
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for negative ttl")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "server: [not: a: map\n")
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for invalid yaml")
	}
}

func TestAuthConfig_KeyFromEnv(t *testing.T) {
	t.Setenv("FITLEVEL_TEST_KEY", "s3cret")
	a := AuthConfig{Mode: "apikey", KeyEnv: "FITLEVEL_TEST_KEY"}
	if got := a.Key(); got != "s3cret" {
		t.Errorf("Key: got %q, want s3cret", got)
	}
	if got := (AuthConfig{}).Key(); got != "" {
		t.Errorf("Key with empty KeyEnv: got %q, want empty", got)
	}
}
