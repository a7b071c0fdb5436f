// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/config"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
}

// isolatedLoader returns a loader that never reads the real home or cwd.
func isolatedLoader(t *testing.T) (*config.Loader, string, string) {
	t.Helper()
	home := t.TempDir()
	project := t.TempDir()
	return config.NewLoader().WithHomeDir(home).WithProjectRoot(project), home, project
}

// loadFile loads defaults overlaid with a single explicit config file.
func loadFile(t *testing.T, path string) (*config.Config, error) {
	t.Helper()
	loader, _, _ := isolatedLoader(t)
	return loader.WithPath(path).Load()
}

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.StaleThreshold() != 30 {
		t.Errorf("Expected default stale threshold 30, got %d", cfg.StaleThreshold())
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default format 'text', got '%s'", cfg.Output.Format)
	}
	if cfg.ShowStaleIssues() {
		t.Error("Expected show_stale to default to false")
	}
	if cfg.Global.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.Global.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

// TestLoadExplicitPath tests loading config from a file.
func TestLoadExplicitPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, `
analysis:
  stale_days: 14
output:
  format: json
  show_stale: true
global:
  log_level: debug
`)

	cfg, err := loadFile(t, configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StaleThreshold() != 14 {
		t.Errorf("Expected stale_days 14, got %d", cfg.StaleThreshold())
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected format 'json', got '%s'", cfg.Output.Format)
	}
	if !cfg.ShowStaleIssues() {
		t.Error("Expected show_stale true")
	}
	if cfg.Global.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Global.LogLevel)
	}
	// Untouched keys keep their defaults
	if cfg.Global.LogFormat != "text" {
		t.Errorf("Expected log format 'text', got '%s'", cfg.Global.LogFormat)
	}
}

// TestLoadExplicitPathZeroStaleDays checks an explicit zero is not replaced by the default.
func TestLoadExplicitPathZeroStaleDays(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, "analysis:\n  stale_days: 0\n")

	cfg, err := loadFile(t, configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StaleThreshold() != 0 {
		t.Errorf("Expected stale_days 0, got %d", cfg.StaleThreshold())
	}
}

// TestLoadExplicitPathInvalid tests loading invalid config files.
func TestLoadExplicitPathInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"bad yaml", "analysis: [unclosed"},
		{"wrong type", "analysis:\n  stale_days: soon\n"},
		{"unknown key", "analysis:\n  stale_dayz: 3\n"},
		{"negative threshold", "analysis:\n  stale_days: -1\n"},
		{"bad format", "output:\n  format: xml\n"},
		{"bad log level", "global:\n  log_level: loud\n"},
		{"bad log format", "global:\n  log_format: logfmt\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			writeFile(t, configPath, tc.content)

			_, err := loadFile(t, configPath)
			if err == nil {
				t.Fatal("Expected error for invalid config, got nil")
			}
			if !errors.IsType(err, errors.ErrConfig) {
				t.Errorf("Expected config error, got %v", err)
			}
		})
	}
}

// TestValidationErrorField checks the failing field is reported.
func TestValidationErrorField(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	var verr *config.ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Field != "output.format" {
		t.Errorf("Expected field 'output.format', got '%s'", verr.Field)
	}
}

// TestLoadMissingExplicitPath tests that --config must exist.
func TestLoadMissingExplicitPath(t *testing.T) {
	loader, _, _ := isolatedLoader(t)
	_, err := loader.WithPath(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	if err == nil {
		t.Fatal("Expected error for missing explicit config")
	}
}

// TestLoadWithoutFiles tests that missing global and project files are skipped.
func TestLoadWithoutFiles(t *testing.T) {
	loader, _, _ := isolatedLoader(t)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StaleThreshold() != config.DefaultStaleDays {
		t.Errorf("Expected default stale threshold, got %d", cfg.StaleThreshold())
	}
}

// TestLoadPrecedence tests defaults < global < project < explicit < env.
func TestLoadPrecedence(t *testing.T) {
	loader, home, project := isolatedLoader(t)

	writeFile(t, filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), `
analysis:
  stale_days: 10
output:
  format: yaml
global:
  log_level: warn
  log_format: json
`)
	writeFile(t, filepath.Join(project, config.ProjectConfigFile), `
analysis:
  stale_days: 20
output:
  format: json
`)
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicit, "analysis:\n  stale_days: 40\n")

	t.Setenv("ISSUE_INSIGHTS_GLOBAL__LOG_LEVEL", "debug")

	cfg, err := loader.WithPath(explicit).Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StaleThreshold() != 40 {
		t.Errorf("Expected stale_days 40 from explicit file, got %d", cfg.StaleThreshold())
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected format 'json' from project file, got '%s'", cfg.Output.Format)
	}
	if cfg.Global.LogFormat != "json" {
		t.Errorf("Expected log format 'json' from global file, got '%s'", cfg.Global.LogFormat)
	}
	if cfg.Global.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug' from env, got '%s'", cfg.Global.LogLevel)
	}
}

// TestLoadWithEnvOverrides tests environment variable overrides.
func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("ISSUE_INSIGHTS_ANALYSIS__STALE_DAYS", "7")
	t.Setenv("ISSUE_INSIGHTS_OUTPUT__FORMAT", "yaml")
	t.Setenv("ISSUE_INSIGHTS_OUTPUT__SHOW_STALE", "true")
	t.Setenv("ISSUE_INSIGHTS_GLOBAL__LOG_FORMAT", "json")

	loader, _, _ := isolatedLoader(t)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StaleThreshold() != 7 {
		t.Errorf("Expected stale_days 7 from env, got %d", cfg.StaleThreshold())
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected format 'yaml' from env, got '%s'", cfg.Output.Format)
	}
	if !cfg.ShowStaleIssues() {
		t.Error("Expected show_stale true from env")
	}
	if cfg.Global.LogFormat != "json" {
		t.Errorf("Expected log format 'json' from env, got '%s'", cfg.Global.LogFormat)
	}

}

// TestEnvOverrides tests that only recognized, non-empty variables are listed.
func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvStaleDays, "7")
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvShowStale, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv("ISSUE_INSIGHTS_UNKNOWN__KEY", "x")

	got := config.EnvOverrides()
	want := []config.EnvOverride{
		{Name: "ISSUE_INSIGHTS_ANALYSIS__STALE_DAYS", Value: "7"},
		{Name: "ISSUE_INSIGHTS_GLOBAL__LOG_LEVEL", Value: "debug"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d overrides, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("override %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestLoadWithEnvInvalid tests invalid env values.
func TestLoadWithEnvInvalid(t *testing.T) {
	testCases := map[string]string{
		"ISSUE_INSIGHTS_ANALYSIS__STALE_DAYS": "a month",
		"ISSUE_INSIGHTS_OUTPUT__SHOW_STALE":   "sometimes",
		"ISSUE_INSIGHTS_OUTPUT__FORMAT":       "csv",
	}

	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			loader, _, _ := isolatedLoader(t)
			if _, err := loader.Load(); err == nil {
				t.Errorf("Expected error for %s=%s", key, value)
			}
		})
	}
}

// TestLoadBrokenProjectConfig tests that an unreadable project file is reported.
func TestLoadBrokenProjectConfig(t *testing.T) {
	loader, _, project := isolatedLoader(t)
	writeFile(t, filepath.Join(project, config.ProjectConfigFile), "output: [")

	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for broken project config")
	}
}

// TestValidFormats tests the exported format list is a copy.
func TestValidFormats(t *testing.T) {
	formats := config.ValidFormats()
	if len(formats) != 4 {
		t.Fatalf("Expected 4 formats, got %v", formats)
	}
	formats[0] = "changed"
	if config.ValidFormats()[0] != "json" {
		t.Error("ValidFormats should return a copy")
	}
}
