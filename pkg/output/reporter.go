// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package output

import (
	"fmt"
	"io"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

// Reporter writes formatted reports to a stream.
type Reporter struct {
	w         io.Writer
	formatter *Formatter
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, formatter *Formatter) *Reporter {
	return &Reporter{w: w, formatter: formatter}
}

// Report formats and writes a single report followed by a newline.
func (r *Reporter) Report(report *Report) error {
	text, err := r.formatter.Format(report)
	if err != nil {
		return errors.ValidationError("failed to format report", err)
	}
	if _, err := fmt.Fprintln(r.w, text); err != nil {
		return errors.IOError("failed to write report", err)
	}
	return nil
}
