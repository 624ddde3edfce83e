package config

import (
	"os"
	"testing"
)

// unsetEnv borra la variable durante el test y la restaura al terminar.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"OPENAI_KEY_FILE", "OPENAI_CHAT_URL", "OPENAI_MAX_RESPONSE_BYTES", "LOG_LEVEL"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyFile != "api_key.txt" {
		t.Fatalf("unexpected key file: %q", cfg.KeyFile)
	}
	if cfg.ChatURL != "https://api.openai.com/v1/chat/completions" {
		t.Fatalf("unexpected chat url: %q", cfg.ChatURL)
	}
	if cfg.MaxResponseBytes != 0 {
		t.Fatalf("expected unlimited response, got %d", cfg.MaxResponseBytes)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OPENAI_KEY_FILE", "/tmp/key")
	t.Setenv("OPENAI_CHAT_URL", "http://127.0.0.1:9999/v1/chat/completions")
	t.Setenv("OPENAI_MAX_RESPONSE_BYTES", "4096")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyFile != "/tmp/key" || cfg.MaxResponseBytes != 4096 || cfg.LogLevel != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ChatURL != "http://127.0.0.1:9999/v1/chat/completions" {
		t.Fatalf("unexpected chat url: %q", cfg.ChatURL)
	}
}

func TestLoadConfigInvalidNumber(t *testing.T) {
	t.Setenv("OPENAI_MAX_RESPONSE_BYTES", "mucho")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
