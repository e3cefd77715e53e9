package board

import "fmt"

// IssueKind classifies a non-fatal problem found while analyzing a trace.
type IssueKind int

const (
	// IssueMalformedNumber marks a path parameter that failed numeric
	// parsing. The affected geometry carries NaN instead of a silent zero.
	IssueMalformedNumber IssueKind = iota

	// IssueUnsupportedCommand marks a recognized curve/arc command whose
	// control points are carried verbatim but excluded from geometry.
	IssueUnsupportedCommand

	// IssueEmptyTrace marks a trace that resolved to zero points.
	IssueEmptyTrace

	// IssueInvalidGeometry marks a trace whose resolved points contain NaN;
	// such traces are excluded from junction bucketing.
	IssueInvalidGeometry
)

func (k IssueKind) String() string {
	switch k {
	case IssueMalformedNumber:
		return "malformed-number"
	case IssueUnsupportedCommand:
		return "unsupported-command"
	case IssueEmptyTrace:
		return "empty-trace"
	case IssueInvalidGeometry:
		return "invalid-geometry"
	default:
		return "unknown"
	}
}

// Issue is one structured diagnostic tied to a trace. The core never logs;
// issues are returned to the caller, which decides how to report them.
type Issue struct {
	TraceID string    `json:"trace_id"`
	Kind    IssueKind `json:"kind"`
	Detail  string    `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %s", i.TraceID, i.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", i.TraceID, i.Kind, i.Detail)
}
