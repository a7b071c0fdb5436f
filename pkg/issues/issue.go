// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package issues summarizes collections of tracked issues: label filtering,
// staleness detection, and aggregate statistics.
//
// Two error policies coexist here on purpose. ParseIssueJSON logs decode
// failures and returns an empty collection, so an empty result can mean
// either "no issues" or "unreadable input". Timestamp handling (FormatTimestamp,
// CalculateStaleness, Analyzer.StaleIssues, Analyzer.Summary) returns parse
// errors to the caller instead.
package issues

import (
	"encoding/json"
	"time"
)

// Issue is a single tracked work item as exported by the issue tracker.
type Issue struct {
	Number    int     `json:"number,omitempty" yaml:"number,omitempty"`
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
	State     string  `json:"state,omitempty" yaml:"state,omitempty"`
	URL       string  `json:"url,omitempty" yaml:"url,omitempty"`
	UpdatedAt string  `json:"updatedAt" yaml:"updated_at"` // ISO-8601, parsed on use
	Labels    []Label `json:"labels,omitempty" yaml:"labels,omitempty"`
	Comments  int     `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// UnmarshalJSON accepts any JSON number for comments; fractional counts
// are truncated toward zero.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type plain Issue
	aux := struct {
		*plain
		Comments float64 `json:"comments"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Comments = int(aux.Comments)
	return nil
}

// Label is a tag attached to an issue.
type Label struct {
	Name string `json:"name" yaml:"name"`
}

// HasLabel reports whether the issue carries a label with exactly this name.
func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// LabelNames returns the label names in declaration order.
func (i Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}

// UpdatedTime parses UpdatedAt.
func (i Issue) UpdatedTime() (time.Time, error) {
	return ParseTimestamp(i.UpdatedAt)
}

// Clone returns a deep copy of the issue.
func (i Issue) Clone() Issue {
	if i.Labels != nil {
		labels := make([]Label, len(i.Labels))
		copy(labels, i.Labels)
		i.Labels = labels
	}
	return i
}

func cloneAll(issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	for idx, issue := range issues {
		out[idx] = issue.Clone()
	}
	return out
}
