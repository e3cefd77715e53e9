// Package board recovers the electrical topology of a PCB layout from its
// extracted copper traces: per-trace absolute geometry and routing
// direction, junction points where traces meet, and the connectivity
// relation and nets implied by those junctions.
package board

import "github.com/OpenTraceLab/OpenTraceSVG/pkg/svgpath"

// Direction is a coarse whole-trace routing classification derived from
// the displacement between a trace's start and end points.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionHorizontal
	DirectionVertical
	DirectionDiagonal
)

func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// MarshalText renders the direction as its lowercase name in JSON output.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Trace is a single continuous copper conductor, extracted from one SVG
// path element.
//
// The raw fields (ID through Transform) are populated by the extractor and
// pass through analysis unchanged; PathData is the authoritative source of
// geometry. The derived fields are populated by the Analyzer, except
// Connected, which only BuildJunctions writes.
type Trace struct {
	ID        string  `json:"id"`
	PathData  string  `json:"path_data"`
	Width     float64 `json:"width"`
	Stroke    string  `json:"stroke,omitempty"`
	Fill      string  `json:"fill,omitempty"`
	Layer     string  `json:"layer,omitempty"`
	Transform string  `json:"transform,omitempty"`

	// Derived fields
	Commands  []svgpath.Command `json:"-"`
	Points    []svgpath.Point   `json:"points,omitempty"`
	Start     *svgpath.Point    `json:"start,omitempty"`
	End       *svgpath.Point    `json:"end,omitempty"`
	Connected []string          `json:"connected,omitempty"`
	Direction Direction         `json:"direction"`
}

// ValidGeometry reports whether every resolved point is NaN-free.
// Malformed path parameters propagate as NaN; a trace carrying one must
// not contribute endpoints to junction inference.
func (t *Trace) ValidGeometry() bool {
	for _, p := range t.Points {
		if !p.Valid() {
			return false
		}
	}
	return true
}

// Junction is a point where two or more traces are considered electrically
// connected, inferred from proximate endpoints. The point is the quantized
// bucket representative, not an exact original coordinate. Junctions are
// rebuilt in full on every analysis run and never referenced by traces;
// traces hold ids only.
type Junction struct {
	Point    svgpath.Point `json:"point"`
	TraceIDs []string      `json:"trace_ids"`
}
