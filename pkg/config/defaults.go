// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import "github.com/cicd-ai-toolkit/issue-insights/pkg/issues"

// DefaultStaleDays is the stale threshold used when none is configured.
const DefaultStaleDays = issues.DefaultStaleThresholdDays

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Analysis: DefaultAnalysisConfig(),
		Output:   DefaultOutputConfig(),
		Global:   DefaultGlobalConfig(),
	}
}

// DefaultAnalysisConfig returns default analysis configuration.
func DefaultAnalysisConfig() AnalysisConfig {
	days := DefaultStaleDays
	return AnalysisConfig{
		StaleDays: &days,
	}
}

// DefaultOutputConfig returns default output configuration.
func DefaultOutputConfig() OutputConfig {
	showStale := false
	return OutputConfig{
		Format:    "text",
		ShowStale: &showStale,
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel:  "info",
		LogFormat: "text",
	}
}
