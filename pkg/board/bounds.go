package board

import "github.com/OpenTraceLab/OpenTraceSVG/pkg/svgpath"

// BoundingBox is the rectangular extent of a set of trace points.
type BoundingBox struct {
	Min svgpath.Point
	Max svgpath.Point
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: svgpath.Point{X: 1e9, Y: 1e9},
		Max: svgpath.Point{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box contains no points.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the bounding box to include a point. NaN points are ignored.
func (bb *BoundingBox) Expand(p svgpath.Point) {
	if !p.Valid() {
		return
	}
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// Width returns the width of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() svgpath.Point {
	return svgpath.Point{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// BoundingBox calculates the extent of every resolved trace point in the
// result.
func (r *Result) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for i := range r.Traces {
		for _, p := range r.Traces[i].Points {
			bbox.Expand(p)
		}
	}
	return bbox
}
