package board

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/svgpath"
)

// enrich is a test helper running the per-trace analysis over a batch.
func enrich(t *testing.T, traces []Trace) []Trace {
	t.Helper()
	a := mustAnalyzer(t)
	out := make([]Trace, len(traces))
	for i, tr := range traces {
		out[i], _ = a.AnalyzeTrace(tr)
	}
	return out
}

func TestBuildJunctionsToleranceMerge(t *testing.T) {
	// One trace ends at (5.02, 5.0), another starts at (5.0, 5.0): both
	// quantize to the same bucket at the default tolerance
	traces := enrich(t, []Trace{
		{ID: "a", PathData: "M0,0 L5.02,5.0"},
		{ID: "b", PathData: "M5.0,5.0 L10,5"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}

	if len(junctions) != 1 {
		t.Fatalf("expected 1 junction, got %d", len(junctions))
	}
	if diff := cmp.Diff([]string{"a", "b"}, junctions[0].TraceIDs); diff != "" {
		t.Errorf("junction members: %s", diff)
	}

	// Both traces gained mutual connectivity
	if diff := cmp.Diff([]string{"b"}, traces[0].Connected); diff != "" {
		t.Errorf("trace a connectivity: %s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, traces[1].Connected); diff != "" {
		t.Errorf("trace b connectivity: %s", diff)
	}
}

func TestBuildJunctionsConnectivitySymmetric(t *testing.T) {
	traces := enrich(t, []Trace{
		{ID: "a", PathData: "M0,0 L10,0"},
		{ID: "b", PathData: "M10,0 L10,10"},
		{ID: "c", PathData: "M10,0 L20,0"},
	})

	if _, err := BuildJunctions(traces, 0.1); err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}

	byID := make(map[string]*Trace)
	for i := range traces {
		byID[traces[i].ID] = &traces[i]
	}

	for _, tr := range traces {
		for _, other := range tr.Connected {
			found := false
			for _, back := range byID[other].Connected {
				if back == tr.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("connectivity not symmetric: %s lists %s but not vice versa",
					tr.ID, other)
			}
		}
	}
}

func TestBuildJunctionsNoDuplicateEntries(t *testing.T) {
	// Two traces sharing both endpoints meet at two junctions but must
	// appear only once in each other's connectivity set
	traces := enrich(t, []Trace{
		{ID: "a", PathData: "M0,0 L10,0"},
		{ID: "b", PathData: "M0,0 L10,0"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}
	if len(junctions) != 2 {
		t.Fatalf("expected 2 junctions, got %d", len(junctions))
	}

	for _, tr := range traces {
		seen := make(map[string]int)
		for _, id := range tr.Connected {
			seen[id]++
		}
		for id, n := range seen {
			if n > 1 {
				t.Errorf("trace %s lists %s %d times", tr.ID, id, n)
			}
		}
	}
}

func TestBuildJunctionsIdempotent(t *testing.T) {
	traces := enrich(t, []Trace{
		{ID: "a", PathData: "M0,0 L10,0"},
		{ID: "b", PathData: "M10,0 L10,10"},
		{ID: "c", PathData: "M10,0 L20,0"},
	})

	first, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	connectedAfterFirst := make([][]string, len(traces))
	for i := range traces {
		connectedAfterFirst[i] = append([]string(nil), traces[i].Connected...)
	}

	second, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("junction set changed on rerun: %s", diff)
	}
	for i := range traces {
		if diff := cmp.Diff(connectedAfterFirst[i], traces[i].Connected); diff != "" {
			t.Errorf("trace %s connectivity changed on rerun: %s", traces[i].ID, diff)
		}
	}
}

func TestBuildJunctionsSelfLoopIsNotAJunction(t *testing.T) {
	// A closed trace contributes its id once per endpoint to one bucket;
	// after dedup a single id is no junction
	traces := enrich(t, []Trace{
		{ID: "loop", PathData: "M0,0 L10,0 L10,10 L0,10 Z"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}
	if len(junctions) != 0 {
		t.Errorf("expected no junctions, got %v", junctions)
	}
	if len(traces[0].Connected) != 0 {
		t.Errorf("loop should not connect to itself: %v", traces[0].Connected)
	}
}

func TestBuildJunctionsSkipsEmptyAndInvalidTraces(t *testing.T) {
	traces := enrich(t, []Trace{
		{ID: "empty", PathData: ""},
		{ID: "broken", PathData: "M#,# L5,5"},
		{ID: "a", PathData: "M5,5 L10,5"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}

	// "broken" ends at (5,5) like "a" starts, but its NaN geometry keeps
	// it out of bucketing entirely
	if len(junctions) != 0 {
		t.Errorf("expected no junctions, got %v", junctions)
	}
}

func TestBuildJunctionsRepresentativePoint(t *testing.T) {
	traces := enrich(t, []Trace{
		{ID: "a", PathData: "M0,0 L5.02,5.0"},
		{ID: "b", PathData: "M5.0,5.0 L10,5"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}
	if len(junctions) != 1 {
		t.Fatalf("expected 1 junction, got %d", len(junctions))
	}

	// The representative is the bucket index scaled back by the tolerance,
	// within one step of the original endpoints
	p := junctions[0].Point
	if math.Abs(p.X-5.0) > 0.1 || math.Abs(p.Y-5.0) > 0.1 {
		t.Errorf("representative point too far from endpoints: %+v", p)
	}
}

func TestBuildJunctionsNegativeCoordinates(t *testing.T) {
	// The integer bucket key must keep negative coordinates distinct from
	// their positive mirrors
	traces := enrich(t, []Trace{
		{ID: "neg", PathData: "M-5,-5 L-1,-1"},
		{ID: "pos", PathData: "M5,5 L1,1"},
	})

	junctions, err := BuildJunctions(traces, 0.1)
	if err != nil {
		t.Fatalf("BuildJunctions failed: %v", err)
	}
	if len(junctions) != 0 {
		t.Errorf("mirrored coordinates merged into %v", junctions)
	}
}

func TestBuildJunctionsInvalidTolerance(t *testing.T) {
	if _, err := BuildJunctions(nil, 0); err == nil {
		t.Errorf("expected an error for zero tolerance")
	}
	if _, err := BuildJunctions(nil, -0.5); err == nil {
		t.Errorf("expected an error for negative tolerance")
	}
}

func TestQuantizeStability(t *testing.T) {
	// Endpoints well inside the same bucket share a key
	a := quantize(svgpath.Point{X: 5.02, Y: 5.0}, 0.1)
	b := quantize(svgpath.Point{X: 5.0, Y: 5.0}, 0.1)
	if a != b {
		t.Errorf("nearby endpoints split: %+v vs %+v", a, b)
	}

	c := quantize(svgpath.Point{X: 5.3, Y: 5.0}, 0.1)
	if a == c {
		t.Errorf("distant endpoints merged: %+v", c)
	}
}
