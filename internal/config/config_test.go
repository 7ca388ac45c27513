package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 3001 {
		t.Errorf("default port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Telegram.Token != "" {
		t.Error("token should be empty by default")
	}
	if cfg.Telegram.WebhookURL != "" {
		t.Error("webhook URL should be empty by default")
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Addr(); got != ":3001" {
		t.Errorf("Addr() = %q, want %q", got, ":3001")
	}

	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8080")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail without a token")
	}

	cfg.Telegram.Token = "123:abc"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg.Server.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with a negative port")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Telegram.Token = "123:abc"
	cfg.Telegram.WebhookURL = "https://hotel.example.com/webhook"
	cfg.Server.Port = 4000

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() = %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}

	if loaded.Telegram.Token != "123:abc" {
		t.Errorf("loaded token = %q, want %q", loaded.Telegram.Token, "123:abc")
	}
	if loaded.Telegram.WebhookURL != cfg.Telegram.WebhookURL {
		t.Errorf("loaded webhook URL = %q, want %q", loaded.Telegram.WebhookURL, cfg.Telegram.WebhookURL)
	}
	if loaded.Server.Port != 4000 {
		t.Errorf("loaded port = %d, want 4000", loaded.Server.Port)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Errorf("port = %d, want default 3001", cfg.Server.Port)
	}
}

func TestTokenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Telegram.Token = "from-file"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() = %v", err)
	}

	t.Setenv(TokenEnvVar, "from-env")

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if loaded.Telegram.Token != "from-env" {
		t.Errorf("token = %q, want environment override", loaded.Telegram.Token)
	}
}
