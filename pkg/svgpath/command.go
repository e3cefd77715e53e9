// Package svgpath interprets the SVG path-data command language: it
// tokenizes a path string into typed commands and resolves relative
// coordinates into absolute ones.
//
// Only the straight-line subset (M, L, H, V, Z) is resolved geometrically.
// The curve family (C, S, Q, T, A) is recognized so the tokenizer stays
// synchronized, but its control points are carried verbatim and flagged
// opaque. That is sufficient for PCB copper traces, which are routed as
// straight segments.
package svgpath

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Valid reports whether both coordinates are real numbers. A malformed
// path parameter propagates as NaN, so invalid points mark geometry that
// must not feed direction or connectivity reasoning.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// CommandType identifies an SVG path command.
type CommandType int

const (
	MoveTo CommandType = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	ClosePath
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
)

var commandNames = map[CommandType]string{
	MoveTo:           "MoveTo",
	LineTo:           "LineTo",
	HorizontalLineTo: "HorizontalLineTo",
	VerticalLineTo:   "VerticalLineTo",
	ClosePath:        "ClosePath",
	CurveTo:          "CurveTo",
	SmoothCurveTo:    "SmoothCurveTo",
	QuadTo:           "QuadTo",
	SmoothQuadTo:     "SmoothQuadTo",
	ArcTo:            "ArcTo",
}

func (t CommandType) String() string {
	if name, ok := commandNames[t]; ok {
		return name
	}
	return "Unknown"
}

// commandTypes maps an upper-cased command letter to its type.
var commandTypes = map[byte]CommandType{
	'M': MoveTo,
	'L': LineTo,
	'H': HorizontalLineTo,
	'V': VerticalLineTo,
	'Z': ClosePath,
	'C': CurveTo,
	'S': SmoothCurveTo,
	'Q': QuadTo,
	'T': SmoothQuadTo,
	'A': ArcTo,
}

// Command is one SVG path command with its coordinate parameters.
//
// Before resolution Points holds raw, possibly relative coordinates; H and
// V commands carry only one meaningful axis (the other is a placeholder
// zero until the resolver supplies the running cursor). After resolution
// every point is absolute and Relative is false.
type Command struct {
	Type     CommandType
	Points   []Point
	Relative bool

	// Opaque marks the curve/arc family: control points are retained
	// verbatim but excluded from trace geometry.
	Opaque bool
}
