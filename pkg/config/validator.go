// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/output"
)

var (
	validFormats    = output.Formats
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// ValidFormats returns the supported report formats.
func ValidFormats() []string {
	return append([]string(nil), validFormats...)
}

// Validate checks the configuration and returns the first problem found
// as a config error.
func (c *Config) Validate() error {
	if err := NewValidator().Validate(c); err != nil {
		return errors.ConfigError("config validation failed", err)
	}
	return nil
}

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "is nil"}
	}
	if err := v.ValidateAnalysis(&cfg.Analysis); err != nil {
		return err
	}
	if err := v.ValidateOutput(&cfg.Output); err != nil {
		return err
	}
	if err := v.ValidateGlobal(&cfg.Global); err != nil {
		return err
	}
	return nil
}

// ValidateAnalysis validates analysis configuration.
func (v *Validator) ValidateAnalysis(cfg *AnalysisConfig) error {
	if cfg.StaleDays != nil && *cfg.StaleDays < 0 {
		return &ValidationError{
			Field:   "analysis.stale_days",
			Value:   *cfg.StaleDays,
			Message: "must be non-negative",
		}
	}
	return nil
}

// ValidateOutput validates output configuration.
func (v *Validator) ValidateOutput(cfg *OutputConfig) error {
	if cfg.Format != "" && !oneOf(cfg.Format, validFormats) {
		return &ValidationError{
			Field:   "output.format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validFormats, ", ")),
		}
	}
	return nil
}

// ValidateGlobal validates global configuration.
func (v *Validator) ValidateGlobal(cfg *GlobalConfig) error {
	if cfg.LogLevel != "" && !oneOf(cfg.LogLevel, validLogLevels) {
		return &ValidationError{
			Field:   "global.log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		}
	}

	if cfg.LogFormat != "" && !oneOf(cfg.LogFormat, validLogFormats) {
		return &ValidationError{
			Field:   "global.log_format",
			Value:   cfg.LogFormat,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
		}
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error for %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
