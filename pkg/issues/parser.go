// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package issues

import (
	"encoding/json"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/observability"
)

// ParseIssueJSON decodes a JSON array of issues.
//
// Decode failures are logged on the default logger and yield an empty,
// non-nil slice; the error is not returned.
func ParseIssueJSON(data string) []Issue {
	return ParseIssueJSONWithLogger(data, observability.Default())
}

// ParseIssueJSONWithLogger is ParseIssueJSON reporting to the given logger.
func ParseIssueJSONWithLogger(data string, logger observability.Logger) []Issue {
	var issues []Issue
	if err := json.Unmarshal([]byte(data), &issues); err != nil {
		if logger != nil {
			logger.Warn("error parsing issue JSON", observability.Err(err),
				observability.Int("bytes", len(data)))
		}
		return []Issue{}
	}
	if issues == nil {
		return []Issue{}
	}
	return issues
}
