// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package issues

import (
	"strings"
	"time"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
)

// DateLayout is the calendar date format produced by FormatTimestamp.
const DateLayout = "2006-01-02"

// ISO-8601 accepts an extended (2024-01-15T10:30:00) and a basic
// (20240115T103000) form. Time may be given to the hour, minute or second;
// fractional seconds are accepted after the seconds field without being
// spelled out.
var (
	offsetLayouts = buildLayouts(true)
	localLayouts  = buildLayouts(false)
)

func buildLayouts(withOffset bool) []string {
	forms := []struct {
		date  string
		times []string
	}{
		{DateLayout, []string{"15:04:05", "15:04", "15"}},
		{"20060102", []string{"150405", "1504", "15"}},
	}

	var layouts []string
	for _, f := range forms {
		for _, clock := range f.times {
			if !withOffset {
				layouts = append(layouts, f.date+"T"+clock)
				continue
			}
			for _, zone := range []string{"Z07:00", "-0700", "-07"} {
				layouts = append(layouts, f.date+"T"+clock+zone)
			}
		}
		if !withOffset {
			layouts = append(layouts, f.date)
		}
	}
	return layouts
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" marks UTC;
// the date and time may be separated by "T" or a single space. The
// returned time keeps the offset written in the input; timestamps without
// one are read as local time. Surrounding whitespace is rejected.
func ParseTimestamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, errors.ParseError("empty timestamp", nil)
	}

	value := ts
	if strings.HasSuffix(value, "Z") || strings.HasSuffix(value, "z") {
		value = value[:len(value)-1] + "+00:00"
	}
	if n := dateLength(value); len(value) > n+1 && value[n] == ' ' {
		value = value[:n] + "T" + value[n+1:]
	}

	var lastErr error
	for _, layout := range offsetLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, errors.ParseError("invalid ISO-8601 timestamp", lastErr).
		WithContext("timestamp", ts)
}

// dateLength is the length of the date part: 10 for extended, 8 for basic.
func dateLength(value string) int {
	if len(value) > 4 && value[4] == '-' {
		return len(DateLayout)
	}
	return 8
}

// FormatTimestamp converts an ISO-8601 timestamp to a YYYY-MM-DD date in
// the timestamp's own offset.
func FormatTimestamp(ts string) (string, error) {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
