package model

import "fmt"

// DiagnosticKind classifies a recoverable degradation during generation.
type DiagnosticKind string

const (
	DiagnosticCourseNotFound    DiagnosticKind = "course_not_found"
	DiagnosticSectionNotFound   DiagnosticKind = "section_not_found"
	DiagnosticEmptyWildcardPool DiagnosticKind = "empty_wildcard_pool"
)

// Diagnostic reports a configuration gap the generator recovered from by
// falling back to the most permissive option. Diagnostics are informational:
// they never abort a request.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %v", d.Kind, d.Message)
}
