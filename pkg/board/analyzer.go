package board

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/svgpath"
)

// Result is the outcome of one analysis run: the enriched traces, the
// junction set, the nets derived from it, and every non-fatal diagnostic
// collected along the way.
type Result struct {
	Traces    []Trace
	Junctions []Junction
	Nets      []*Net
	Issues    []Issue
}

// Analyzer enriches raw traces with resolved geometry and direction.
type Analyzer struct {
	cfg *Config
}

// NewAnalyzer creates an analyzer with a validated configuration.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

// AnalyzeTrace parses and resolves a trace's path data and derives its
// polyline, endpoints and direction. The raw fields pass through
// unchanged; enrichment is by copy, and per-trace problems come back as
// issues, never as errors.
func (a *Analyzer) AnalyzeTrace(t Trace) (Trace, []Issue) {
	var issues []Issue

	cmds, parseIssues := svgpath.Parse(t.PathData)
	for _, pi := range parseIssues {
		issues = append(issues, Issue{TraceID: t.ID, Kind: IssueMalformedNumber, Detail: pi.Error()})
	}

	t.Commands = svgpath.Resolve(cmds)
	for _, c := range t.Commands {
		if c.Opaque {
			issues = append(issues, Issue{
				TraceID: t.ID,
				Kind:    IssueUnsupportedCommand,
				Detail:  fmt.Sprintf("%s control points excluded from geometry", c.Type),
			})
		}
	}

	t.Points = svgpath.Flatten(t.Commands)
	t.Connected = nil
	t.Direction = DirectionUnknown
	t.Start = nil
	t.End = nil

	if len(t.Points) == 0 {
		issues = append(issues, Issue{TraceID: t.ID, Kind: IssueEmptyTrace})
		return t, issues
	}

	start := t.Points[0]
	end := t.Points[len(t.Points)-1]
	t.Start = &start
	t.End = &end

	if len(t.Points) >= 2 {
		t.Direction = classify(start, end)
	}

	if !t.ValidGeometry() {
		issues = append(issues, Issue{TraceID: t.ID, Kind: IssueInvalidGeometry})
	}

	return t, issues
}

// Analyze runs the full pipeline over a batch of raw traces: per-trace
// enrichment, one junction/connectivity pass, then net derivation. Zero
// input traces is not an error; the result is simply empty.
func Analyze(traces []Trace, cfg *Config) (*Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return a.Run(traces)
}

// Run executes the pipeline with this analyzer's configuration.
func (a *Analyzer) Run(traces []Trace) (*Result, error) {
	res := &Result{}

	for i := range traces {
		if !a.cfg.ShouldAnalyze(&traces[i]) {
			continue
		}
		enriched, issues := a.AnalyzeTrace(traces[i])
		res.Traces = append(res.Traces, enriched)
		res.Issues = append(res.Issues, issues...)
	}

	junctions, err := BuildJunctions(res.Traces, a.cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	res.Junctions = junctions

	nl := NetlistFromJunctions(res.Traces, junctions)
	nl.Finalize()
	res.Nets = nl.Nets

	return res, nil
}

// classify compares |Δx| and |Δy| between the endpoints. A trace counts as
// horizontal or vertical only when one displacement dominates the other by
// more than a factor of two; ties favor diagonal.
func classify(start, end svgpath.Point) Direction {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)

	switch {
	case dx > 2*dy:
		return DirectionHorizontal
	case dy > 2*dx:
		return DirectionVertical
	default:
		return DirectionDiagonal
	}
}
