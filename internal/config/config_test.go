package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/lookfor/internal/logger"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != logger.DefaultLevel {
		t.Errorf("LogLevel = %q, want logger.DefaultLevel %q", cfg.LogLevel, logger.DefaultLevel)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lookfor.yaml")

	configContent := `log_level: debug
color: never
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (default)", cfg.LogLevel, "warn")
	}
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lookfor.yaml")

	invalidYAML := `
log_level: [this is not valid
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("LoadConfig() expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lookfor.yaml")

	if err := os.WriteFile(configPath, []byte("color: always\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (default)", cfg.LogLevel, "warn")
	}
}

// TestMergeWithFlags verifies CLI flags take precedence over file values
func TestMergeWithFlags(t *testing.T) {
	cfg := &Config{LogLevel: "error", Color: ColorNever}

	cfg.MergeWithFlags(nil, nil)
	if cfg.LogLevel != "error" || cfg.Color != ColorNever {
		t.Errorf("nil flags must not change config, got %+v", cfg)
	}

	level := "trace"
	colorMode := ColorAlways
	cfg.MergeWithFlags(&level, &colorMode)
	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "trace")
	}
	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
}

// TestValidate covers accepted and rejected values
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{LogLevel: "info", Color: ColorAuto}},
		{name: "bad level", cfg: Config{LogLevel: "loud", Color: ColorAuto}, wantErr: "invalid log_level"},
		{name: "bad color", cfg: Config{LogLevel: "info", Color: "rainbow"}, wantErr: "invalid color"},
		{name: "empty level", cfg: Config{Color: ColorAuto}, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
