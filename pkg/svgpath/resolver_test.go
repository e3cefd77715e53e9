package svgpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// resolvePath is a test helper: parse then resolve, failing on parse issues.
func resolvePath(t *testing.T, d string) []Command {
	t.Helper()
	cmds, issues := Parse(d)
	if len(issues) != 0 {
		t.Fatalf("unexpected parse issues for %q: %v", d, issues)
	}
	return Resolve(cmds)
}

func TestResolveAbsolutePath(t *testing.T) {
	resolved := resolvePath(t, "M0,0 L10,0 L10,10")

	expected := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if diff := cmp.Diff(expected, Flatten(resolved)); diff != "" {
		t.Errorf("incorrect polyline: %s", diff)
	}

	for _, c := range resolved {
		if c.Relative {
			t.Errorf("%s still marked relative after resolution", c.Type)
		}
	}
}

func TestResolveRelativeRoundTrip(t *testing.T) {
	// Resolving relative commands then re-deriving displacement from
	// consecutive absolute points must reproduce the original deltas
	deltas := []Point{{X: 2, Y: 0}, {X: 0, Y: 3}, {X: -1, Y: -1}}

	pts := Flatten(resolvePath(t, "m1,1 l2,0 l0,3 l-1,-1"))
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	if pts[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("start point: got %+v, want (1,1)", pts[0])
	}

	for i, want := range deltas {
		got := Point{X: pts[i+1].X - pts[i].X, Y: pts[i+1].Y - pts[i].Y}
		if got != want {
			t.Errorf("delta %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestResolveHorizontalVertical(t *testing.T) {
	// H carries the cursor's y, V carries the cursor's x
	pts := Flatten(resolvePath(t, "M0,0 H10"))
	expected := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if diff := cmp.Diff(expected, pts); diff != "" {
		t.Errorf("incorrect polyline: %s", diff)
	}

	pts = Flatten(resolvePath(t, "m5,5 h-2 v3"))
	expected = []Point{{X: 5, Y: 5}, {X: 3, Y: 5}, {X: 3, Y: 8}}
	if diff := cmp.Diff(expected, pts); diff != "" {
		t.Errorf("incorrect polyline: %s", diff)
	}
}

func TestResolveClosePathReturnsToSubpathStart(t *testing.T) {
	resolved := resolvePath(t, "M2,3 L10,3 L10,9 Z")

	z := resolved[len(resolved)-1]
	if len(z.Points) != 1 {
		t.Fatalf("ClosePath should emit exactly one point, got %d", len(z.Points))
	}
	if z.Points[0] != (Point{X: 2, Y: 3}) {
		t.Errorf("ClosePath point: got %+v, want the MoveTo origin (2,3)", z.Points[0])
	}
}

func TestResolveClosePathResetsCursor(t *testing.T) {
	// The relative line after Z is anchored at the subpath start
	pts := Flatten(resolvePath(t, "M2,3 L10,3 Z l1,1"))
	last := pts[len(pts)-1]
	if last != (Point{X: 3, Y: 4}) {
		t.Errorf("cursor not reset by ClosePath: got %+v, want (3,4)", last)
	}
}

func TestResolveMultipleSubpaths(t *testing.T) {
	// The second MoveTo starts a new subpath; its Z closes to the second origin
	resolved := resolvePath(t, "M0,0 L1,0 Z M5,5 L6,5 Z")

	z := resolved[len(resolved)-1]
	if z.Points[0] != (Point{X: 5, Y: 5}) {
		t.Errorf("second ClosePath: got %+v, want (5,5)", z.Points[0])
	}
}

func TestResolveMoveToWithExtraPoints(t *testing.T) {
	// Only the first MoveTo point sets the subpath origin; the cursor
	// advances through all of them
	resolved := resolvePath(t, "m1,1 2,2 Z")

	move := resolved[0]
	expected := []Point{{X: 1, Y: 1}, {X: 3, Y: 3}}
	if diff := cmp.Diff(expected, move.Points); diff != "" {
		t.Errorf("incorrect MoveTo points: %s", diff)
	}

	z := resolved[1]
	if z.Points[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("ClosePath: got %+v, want the first MoveTo point (1,1)", z.Points[0])
	}
}

func TestResolveOpaqueCommandAdvancesCursor(t *testing.T) {
	resolved := resolvePath(t, "M0,0 C1,1 2,2 3,3 L4,4")

	pts := Flatten(resolved)
	expected := []Point{{X: 0, Y: 0}, {X: 4, Y: 4}}
	if diff := cmp.Diff(expected, pts); diff != "" {
		t.Errorf("opaque control points leaked into the polyline: %s", diff)
	}

	// The curve's last pair still anchors the cursor for the following L
	curve := resolved[1]
	if !curve.Opaque {
		t.Fatalf("curve lost its opaque flag during resolution")
	}
	if curve.Points[len(curve.Points)-1] != (Point{X: 3, Y: 3}) {
		t.Errorf("curve control points not resolved: %+v", curve.Points)
	}
}

func TestResolveOrderingPreserved(t *testing.T) {
	input, _ := Parse("M0,0 H5 V5 L0,5 Z")
	resolved := Resolve(input)

	if len(resolved) != len(input) {
		t.Fatalf("command count changed: %d -> %d", len(input), len(resolved))
	}
	for i := range input {
		if resolved[i].Type != input[i].Type {
			t.Errorf("command %d: type %s became %s", i, input[i].Type, resolved[i].Type)
		}
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	input, _ := Parse("m1,1 l2,2")
	before := make([]Command, len(input))
	copy(before, input)

	Resolve(input)

	if diff := cmp.Diff(before, input); diff != "" {
		t.Errorf("input mutated by Resolve: %s", diff)
	}
}
