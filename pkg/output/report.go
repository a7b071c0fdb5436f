// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/issues"
)

// Report wraps a summary with metadata about the run that produced it.
type Report struct {
	ID                 string         `json:"id" yaml:"id"`
	GeneratedAt        time.Time      `json:"generated_at" yaml:"generated_at"`
	Source             string         `json:"source" yaml:"source"`
	StaleThresholdDays int            `json:"stale_threshold_days" yaml:"stale_threshold_days"`
	Label              string         `json:"label,omitempty" yaml:"label,omitempty"`
	Summary            issues.Summary `json:"summary" yaml:"summary"`
	StaleIssues        []StaleIssue   `json:"stale_issues,omitempty" yaml:"stale_issues,omitempty"`
}

// StaleIssue is the display form of an issue past the stale threshold.
type StaleIssue struct {
	Number      int      `json:"number,omitempty" yaml:"number,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	LastUpdated string   `json:"last_updated" yaml:"last_updated"`
	DaysSince   int      `json:"days_since_update" yaml:"days_since_update"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// NewReport creates a report with a fresh ID and generation time.
func NewReport(source string, thresholdDays int, summary issues.Summary) *Report {
	return &Report{
		ID:                 uuid.NewString(),
		GeneratedAt:        time.Now().UTC(),
		Source:             source,
		StaleThresholdDays: thresholdDays,
		Summary:            summary,
	}
}

// AddStaleIssues attaches display entries for stale issues. It fails with
// a parse error if an issue's timestamp cannot be read.
func (r *Report) AddStaleIssues(stale []issues.Issue, staleness issues.Staleness) error {
	for _, issue := range stale {
		updated, err := issue.UpdatedTime()
		if err != nil {
			return err
		}
		date, err := issues.FormatTimestamp(issue.UpdatedAt)
		if err != nil {
			return err
		}
		r.StaleIssues = append(r.StaleIssues, StaleIssue{
			Number:      issue.Number,
			Title:       issue.Title,
			URL:         issue.URL,
			LastUpdated: date,
			DaysSince:   staleness.DaysSince(updated),
			Labels:      issue.LabelNames(),
		})
	}
	return nil
}
