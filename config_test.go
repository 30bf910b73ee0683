package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing-config.yaml"))
	t.Setenv("WORKER_URL", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("EXTERNAL_HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()

	if cfg.LLMProvider != "worker" {
		t.Fatalf("provider default = %q, want worker", cfg.LLMProvider)
	}
	if cfg.WorkerURL != defaultWorkerURL {
		t.Fatalf("worker url default = %q", cfg.WorkerURL)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("listen addr default = %q", cfg.ListenAddr)
	}
	if cfg.ExternalHTTPTimeoutSeconds != int(defaultExternalHTTPTimeout/time.Second) {
		t.Fatalf("timeout default = %d", cfg.ExternalHTTPTimeoutSeconds)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := "worker_url: https://from-yaml.example\nlisten_addr: \":9999\"\n"
	if err := os.WriteFile(configPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("WORKER_URL", "https://from-env.example")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("EXTERNAL_HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()

	if cfg.WorkerURL != "https://from-env.example" {
		t.Fatalf("worker url = %q, env must win over yaml", cfg.WorkerURL)
	}
	if cfg.ListenAddr != ":9999" {
		t.Fatalf("listen addr = %q, want yaml value", cfg.ListenAddr)
	}
}

func TestLoadConfigAnthropicProvider(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing-config.yaml"))
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("WORKER_URL", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("EXTERNAL_HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()
	if cfg.LLMProvider != "anthropic" || cfg.AnthropicAPIKey != "sk-ant-test" {
		t.Fatalf("anthropic config = %+v", cfg)
	}
}
