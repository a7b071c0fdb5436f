// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/issues"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/observability"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/output"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/watch"
)

// summaryFlags holds the flags for the summary command
type summaryFlags struct {
	format    string
	staleDays int
	label     string
	showStale bool
	watch     bool
}

func newSummaryCmd(a *app) *cobra.Command {
	var opts summaryFlags

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Summarize an issue export",
		Long: `Summarize a JSON array of issues read from a file, or from stdin when
no file (or "-") is given.

Input that is not valid JSON is reported as a warning and summarized as an
empty list. Issues with a missing or malformed updatedAt fail the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = opts.format
			}
			threshold, err := a.staleThreshold(cmd, opts.staleDays)
			if err != nil {
				return err
			}
			showStale := a.cfg.ShowStaleIssues() || opts.showStale

			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			reporter := output.NewReporter(cmd.OutOrStdout(), formatter)

			produce := func() error {
				in, err := readInput(cmd, args)
				if err != nil {
					return err
				}

				collection := issues.ParseIssueJSONWithLogger(in.data, a.logger)
				if opts.label != "" {
					collection = issues.FilterByLabel(collection, opts.label)
				}

				analyzer := issues.NewAnalyzer(collection,
					issues.WithStaleThreshold(threshold),
					issues.WithLogger(a.logger.With(observability.String("source", in.source))))

				summary, err := analyzer.Summary()
				if err != nil {
					return err
				}

				report := output.NewReport(in.source, threshold, summary)
				report.Label = opts.label
				if showStale {
					stale, err := analyzer.StaleIssues(threshold)
					if err != nil {
						return err
					}
					if err := report.AddStaleIssues(stale, issues.Staleness{}); err != nil {
						return err
					}
				}

				return reporter.Report(report)
			}

			if !opts.watch {
				return produce()
			}
			if isStdin(args) {
				return errors.ValidationError("--watch needs a file argument", nil)
			}
			return watch.File(cmd.Context(), args[0], a.logger, produce)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", joinFormats()))
	cmd.Flags().IntVarP(&opts.staleDays, "stale-days", "d", issues.DefaultStaleThresholdDays, "Days without update after which an issue is stale")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Only summarize issues carrying this label")
	cmd.Flags().BoolVar(&opts.showStale, "show-stale", false, "List stale issues in the report")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-run whenever the input file changes")

	return cmd
}
