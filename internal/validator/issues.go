package validator

// Issue captures one schema violation in a record.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String returns the human-readable message.
func (i Issue) String() string {
	return i.Message
}

// Messages flattens issues into their messages, preserving order.
func Messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Message)
	}
	return out
}

// issueAdder adds a violation to a shared collector.
type issueAdder func(field, message string)

// issueCollector accumulates violations in check order.
type issueCollector struct {
	issues []Issue
}

// add records a new violation.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}
