package issues

// FilterByLabel returns the issues carrying a label named exactly label,
// in their original order.
func FilterByLabel(issues []Issue, label string) []Issue {
	filtered := make([]Issue, 0)
	for _, issue := range issues {
		if issue.HasLabel(label) {
			filtered = append(filtered, issue.Clone())
		}
	}
	return filtered
}
