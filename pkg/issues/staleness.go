// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package issues

import (
	"time"
)

// DefaultStaleThresholdDays is the age in days after which an issue is stale.
const DefaultStaleThresholdDays = 30

const day = 24 * time.Hour

// Staleness decides whether an update timestamp is older than a threshold.
type Staleness struct {
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// CalculateStaleness reports whether updatedAt lies more than thresholdDays
// whole days in the past, measured against the wall clock.
func CalculateStaleness(updatedAt string, thresholdDays int) (bool, error) {
	return Staleness{}.IsStale(updatedAt, thresholdDays)
}

// IsStale reports whether more than thresholdDays whole days have elapsed
// since updatedAt. An empty or malformed timestamp is a parse error.
func (s Staleness) IsStale(updatedAt string, thresholdDays int) (bool, error) {
	lastUpdate, err := ParseTimestamp(updatedAt)
	if err != nil {
		return false, err
	}
	return s.DaysSince(lastUpdate) > thresholdDays, nil
}

// DaysSince returns the number of whole days from t to now, rounded toward
// negative infinity. Now is taken in t's own location.
func (s Staleness) DaysSince(t time.Time) int {
	now := s.now().In(t.Location())
	elapsed := now.Sub(t)

	days := elapsed / day
	if elapsed < 0 && elapsed%day != 0 {
		days--
	}
	return int(days)
}

func (s Staleness) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
