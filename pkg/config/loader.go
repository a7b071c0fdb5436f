// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "ISSUE_INSIGHTS"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".issue-insights.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".issue-insights"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	homeDir     string
	path        string
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithHomeDir overrides the directory searched for the global config.
func (l *Loader) WithHomeDir(dir string) *Loader {
	l.homeDir = dir
	return l
}

// WithPath adds an explicit config file that overrides global and project
// config. Unlike those, it must exist.
func (l *Loader) WithPath(path string) *Loader {
	l.path = path
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.issue-insights/config.yaml)
// 3. Project Config (./.issue-insights.yaml)
// 4. Explicit path (WithPath)
// 5. Environment Variables (ISSUE_INSIGHTS_*)
//
// Missing global and project files are skipped; files that exist but do
// not parse are errors.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if globalPath, ok := l.globalConfigPath(); ok {
		if err := mergeOptional(cfg, globalPath); err != nil {
			return nil, err
		}
	}

	root := l.projectRoot
	if root == "" {
		root = "."
	}
	if err := mergeOptional(cfg, filepath.Join(root, ProjectConfigFile)); err != nil {
		return nil, err
	}

	if l.path != "" {
		fileCfg, err := readFile(l.path)
		if err != nil {
			return nil, err
		}
		mergeConfig(cfg, fileCfg)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) globalConfigPath() (string, bool) {
	home := l.homeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", false
		}
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), true
}

func mergeOptional(dst *Config, path string) error {
	src, err := readFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	mergeConfig(dst, src)
	return nil
}

// readFile parses a yaml config file. Unknown keys are rejected.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}
	return &cfg, nil
}

// Environment variables read by applyEnvOverrides.
const (
	EnvStaleDays = EnvPrefix + "_ANALYSIS__STALE_DAYS"
	EnvFormat    = EnvPrefix + "_OUTPUT__FORMAT"
	EnvShowStale = EnvPrefix + "_OUTPUT__SHOW_STALE"
	EnvLogLevel  = EnvPrefix + "_GLOBAL__LOG_LEVEL"
	EnvLogFormat = EnvPrefix + "_GLOBAL__LOG_FORMAT"
)

var envKeys = []string{EnvStaleDays, EnvFormat, EnvShowStale, EnvLogLevel, EnvLogFormat}

// EnvOverride is a recognized environment variable that is set.
type EnvOverride struct {
	Name  string
	Value string
}

// EnvOverrides lists the recognized ISSUE_INSIGHTS_* variables that are
// currently set to a non-empty value. Unrecognized names are not reported.
func EnvOverrides() []EnvOverride {
	var set []EnvOverride
	for _, name := range envKeys {
		if v := os.Getenv(name); v != "" {
			set = append(set, EnvOverride{Name: name, Value: v})
		}
	}
	return set
}

// applyEnvOverrides applies environment variable overrides.
// Format: ISSUE_INSIGHTS_SECTION__KEY=value
func applyEnvOverrides(cfg *Config) error {
	for _, env := range EnvOverrides() {
		switch env.Name {
		case EnvStaleDays:
			days, err := strconv.Atoi(env.Value)
			if err != nil {
				return errors.ConfigError("invalid "+env.Name, err)
			}
			cfg.Analysis.StaleDays = &days
		case EnvFormat:
			cfg.Output.Format = env.Value
		case EnvShowStale:
			show, err := strconv.ParseBool(env.Value)
			if err != nil {
				return errors.ConfigError("invalid "+env.Name, err)
			}
			cfg.Output.ShowStale = &show
		case EnvLogLevel:
			cfg.Global.LogLevel = env.Value
		case EnvLogFormat:
			cfg.Global.LogFormat = env.Value
		}
	}
	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	if src.Analysis.StaleDays != nil {
		days := *src.Analysis.StaleDays
		dst.Analysis.StaleDays = &days
	}

	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.ShowStale != nil {
		show := *src.Output.ShowStale
		dst.Output.ShowStale = &show
	}

	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
	if src.Global.LogFormat != "" {
		dst.Global.LogFormat = src.Global.LogFormat
	}
}
