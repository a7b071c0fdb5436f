// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"fmt"
	"strings"
)

// CommentGenerator renders reports as Markdown suitable for an issue or
// pull request comment.
type CommentGenerator struct {
	maxStale int
}

// NewCommentGenerator creates a new comment generator.
func NewCommentGenerator() *CommentGenerator {
	return &CommentGenerator{maxStale: 50}
}

// Generate renders a report as a Markdown comment.
func (g *CommentGenerator) Generate(report *Report) string {
	var b strings.Builder
	s := report.Summary

	b.WriteString("## Issue Summary\n\n")
	if report.Source != "" {
		fmt.Fprintf(&b, "_Source: `%s`_\n\n", report.Source)
	}

	b.WriteString("| Metric | Value |\n|---|---|\n")
	if report.Label != "" {
		fmt.Fprintf(&b, "| Label filter | `%s` |\n", report.Label)
	}
	fmt.Fprintf(&b, "| Total issues | %d |\n", s.TotalIssues)
	fmt.Fprintf(&b, "| Stale issues (> %d days) | %d |\n", report.StaleThresholdDays, s.StaleCount)
	fmt.Fprintf(&b, "| Average comments | %.2f |\n", s.AverageComments)

	if counts := SortedLabelCounts(s.LabelDistribution); len(counts) > 0 {
		b.WriteString("\n### Labels\n\n| Label | Issues |\n|---|---|\n")
		for _, lc := range counts {
			fmt.Fprintf(&b, "| `%s` | %d |\n", escapeCell(lc.Name), lc.Count)
		}
	}

	if len(report.StaleIssues) > 0 {
		b.WriteString("\n### Stale issues\n\n")
		for i, si := range report.StaleIssues {
			if i == g.maxStale {
				fmt.Fprintf(&b, "- ... and %d more\n", len(report.StaleIssues)-g.maxStale)
				break
			}
			ref := issueRef(si)
			if si.URL != "" {
				ref = fmt.Sprintf("[%s](%s)", ref, si.URL)
			}
			fmt.Fprintf(&b, "- %s (last updated %s, %d days ago)\n", ref, si.LastUpdated, si.DaysSince)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
