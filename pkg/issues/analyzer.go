// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package issues

import (
	"fmt"
	"time"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/observability"
)

// Summary holds aggregate statistics for an issue collection.
type Summary struct {
	TotalIssues       int            `json:"total_issues" yaml:"total_issues"`
	StaleCount        int            `json:"stale_count" yaml:"stale_count"`
	LabelDistribution map[string]int `json:"label_distribution" yaml:"label_distribution"`
	AverageComments   float64        `json:"average_comments" yaml:"average_comments"`
}

// Analyzer derives statistics from a fixed issue collection. It never
// modifies the collection and hands out copies only.
type Analyzer struct {
	issues    []Issue
	threshold int
	staleness Staleness
	logger    observability.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock sets the source of the current time used for staleness.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.staleness.Now = now
	}
}

// WithStaleThreshold sets the threshold Summary uses for its stale count.
func WithStaleThreshold(days int) Option {
	return func(a *Analyzer) {
		a.threshold = days
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger observability.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer over issues.
func NewAnalyzer(issues []Issue, opts ...Option) *Analyzer {
	a := &Analyzer{
		issues:    issues,
		threshold: DefaultStaleThresholdDays,
		logger:    observability.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Issues returns a copy of the collection.
func (a *Analyzer) Issues() []Issue {
	return cloneAll(a.issues)
}

// StaleThreshold returns the threshold used by Summary.
func (a *Analyzer) StaleThreshold() int {
	return a.threshold
}

// CountByLabel maps each label name to the number of issues carrying it.
// An issue contributes once per label it lists.
func (a *Analyzer) CountByLabel() map[string]int {
	counts := make(map[string]int)
	for _, issue := range a.issues {
		for _, label := range issue.Labels {
			counts[label.Name]++
		}
	}
	return counts
}

// StaleIssues returns the issues not updated for more than thresholdDays
// days, in collection order. The first missing or malformed updatedAt
// aborts the scan with a parse error.
func (a *Analyzer) StaleIssues(thresholdDays int) ([]Issue, error) {
	stale := make([]Issue, 0)
	for idx, issue := range a.issues {
		isStale, err := a.staleness.IsStale(issue.UpdatedAt, thresholdDays)
		if err != nil {
			return nil, fmt.Errorf("issue at index %d: %w", idx, err)
		}
		if isStale {
			stale = append(stale, issue.Clone())
		}
	}
	return stale, nil
}

// Summary computes total, stale count, label distribution, and the mean
// comment count. The mean is 0 for an empty collection.
func (a *Analyzer) Summary() (Summary, error) {
	stale, err := a.StaleIssues(a.threshold)
	if err != nil {
		return Summary{}, err
	}

	var average float64
	if len(a.issues) > 0 {
		total := 0
		for _, issue := range a.issues {
			total += issue.Comments
		}
		average = float64(total) / float64(len(a.issues))
	}

	summary := Summary{
		TotalIssues:       len(a.issues),
		StaleCount:        len(stale),
		LabelDistribution: a.CountByLabel(),
		AverageComments:   average,
	}

	a.logger.Debug("summary computed",
		observability.Int("total_issues", summary.TotalIssues),
		observability.Int("stale_count", summary.StaleCount),
		observability.Int("threshold_days", a.threshold))

	return summary, nil
}
