// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for issue-insights.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.issue-insights/config.yaml
// 3. Project Config: ./.issue-insights.yaml
// 4. Explicit file passed with --config
// 5. Environment Variables: ISSUE_INSIGHTS_*
package config

// Config represents the complete application configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Global   GlobalConfig   `yaml:"global"`
}

// AnalysisConfig contains issue analysis settings.
type AnalysisConfig struct {
	// StaleDays is a pointer so that an explicit 0 in a file survives merging.
	StaleDays *int `yaml:"stale_days,omitempty"`
}

// OutputConfig contains report output settings.
type OutputConfig struct {
	Format    string `yaml:"format"`     // json, yaml, text, markdown
	ShowStale *bool  `yaml:"show_stale"` // include stale issues in reports
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json
}

// StaleThreshold returns the configured stale threshold in days.
func (c *Config) StaleThreshold() int {
	if c.Analysis.StaleDays == nil {
		return DefaultStaleDays
	}
	return *c.Analysis.StaleDays
}

// ShowStaleIssues reports whether reports should list stale issues.
func (c *Config) ShowStaleIssues() bool {
	return c.Output.ShowStale != nil && *c.Output.ShowStale
}
