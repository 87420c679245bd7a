package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()
	todoDir := filepath.Join(homeDir, GlobalConfigDir)
	if err := os.MkdirAll(todoDir, 0755); err != nil {
		t.Fatalf("failed to create %s directory: %v", GlobalConfigDir, err)
	}
	configPath := filepath.Join(todoDir, GlobalConfigFileName)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create global config: %v", err)
	}
}

func TestGlobal_FileExists(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, `
[server]
base_url = "http://global.example.com:9999"
timeout = "5s"
`)

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://global.example.com:9999" {
		t.Errorf("expected base URL 'http://global.example.com:9999', got '%s'", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Timeout)
	}
}

func TestGlobal_FileNotExists(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("expected no error when config doesn't exist, got: %v", err)
	}

	if cfg.BaseURL != "" {
		t.Errorf("expected empty base URL, got '%s'", cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected zero timeout, got %v", cfg.Timeout)
	}
}

func TestGlobal_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid TOML",
			content: "[server\nbase_url = ",
			wantErr: "failed to parse global config TOML",
		},
		{
			name:    "relative base URL",
			content: "[server]\nbase_url = \"todos\"\n",
			wantErr: "must be an absolute http or https URL",
		},
		{
			name:    "bad timeout",
			content: "[server]\ntimeout = \"soon\"\n",
			wantErr: "invalid timeout",
		},
		{
			name:    "negative timeout",
			content: "[server]\ntimeout = \"-1s\"\n",
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeGlobalConfig(t, tmpDir, tt.content)

			_, err := LoadGlobalConfigFromDir(tmpDir)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
