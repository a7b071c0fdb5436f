// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the issue-insights CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/config"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/observability"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/version"
)

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "issue-insights/skip-config"

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger observability.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "issue-insights",
		Short: "Summarize exported issue lists",
		Long: `issue-insights summarizes a JSON export of tracked issues.

It counts issues per label, flags issues that have not been updated for
longer than a threshold, and reports the average number of comments.`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] != "" {
				return nil
			}
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(newSummaryCmd(a))
	rootCmd.AddCommand(newStaleCmd(a))
	rootCmd.AddCommand(newLabelsCmd(a))
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load loads configuration and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().WithPath(a.configPath).Load()
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Global.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Global.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.New(observability.Options{
		Level:  cfg.Global.LogLevel,
		Format: cfg.Global.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return errors.ConfigError("invalid log settings", err)
	}
	observability.SetDefault(logger)

	for _, env := range config.EnvOverrides() {
		logger.Debug("config overridden by environment",
			observability.String("var", env.Name), observability.String("value", env.Value))
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}
