// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output provides report formatting and writing.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

// Supported formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formats lists the supported format names.
var Formats = []string{FormatJSON, FormatYAML, FormatText, FormatMarkdown}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Width(18)
	staleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Formatter renders reports in one format.
type Formatter struct {
	format string
}

// NewFormatter creates a formatter. Unknown formats are validation errors.
func NewFormatter(format string) (*Formatter, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	for _, known := range Formats {
		if f == known {
			return &Formatter{format: f}, nil
		}
	}
	return nil, errors.ValidationError(
		fmt.Sprintf("unknown output format %q (want one of: %s)", format, strings.Join(Formats, ", ")), nil)
}

// Name returns the format name.
func (f *Formatter) Name() string {
	return f.format
}

// Format renders a report.
func (f *Formatter) Format(report *Report) (string, error) {
	switch f.format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	case FormatMarkdown:
		return NewCommentGenerator().Generate(report), nil
	default:
		return formatText(report), nil
	}
}

func formatText(report *Report) string {
	var b strings.Builder
	s := report.Summary

	b.WriteString(titleStyle.Render("Issue Summary"))
	if report.Source != "" {
		b.WriteString(" " + dimStyle.Render("("+report.Source+")"))
	}
	b.WriteString("\n")

	row := func(key, value string) {
		b.WriteString(keyStyle.Render(key) + value + "\n")
	}
	if report.Label != "" {
		row("Label filter:", report.Label)
	}
	row("Total issues:", fmt.Sprintf("%d", s.TotalIssues))
	row("Stale issues:", staleStyle.Render(fmt.Sprintf("%d", s.StaleCount))+
		dimStyle.Render(fmt.Sprintf(" (> %d days)", report.StaleThresholdDays)))
	row("Avg comments:", fmt.Sprintf("%.2f", s.AverageComments))

	b.WriteString("\n" + titleStyle.Render("Labels") + "\n")
	counts := SortedLabelCounts(s.LabelDistribution)
	if len(counts) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, lc := range counts {
		b.WriteString("  " + keyStyle.Render(lc.Name) + fmt.Sprintf("%d", lc.Count) + "\n")
	}

	if len(report.StaleIssues) > 0 {
		b.WriteString("\n" + titleStyle.Render("Stale") + "\n")
		for _, si := range report.StaleIssues {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				issueRef(si), si.LastUpdated, dimStyle.Render(fmt.Sprintf("%dd", si.DaysSince))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func issueRef(si StaleIssue) string {
	ref := "-"
	if si.Number > 0 {
		ref = fmt.Sprintf("#%d", si.Number)
	}
	if si.Title != "" {
		ref += " " + si.Title
	}
	return ref
}

// LabelCount is one entry of a label distribution.
type LabelCount struct {
	Name  string
	Count int
}

// SortedLabelCounts orders a distribution by count descending, then name.
func SortedLabelCounts(distribution map[string]int) []LabelCount {
	counts := make([]LabelCount, 0, len(distribution))
	for name, count := range distribution {
		counts = append(counts, LabelCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}
