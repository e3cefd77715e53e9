package svgpath

// Resolve walks a command sequence left to right, carrying the pen cursor
// and the current subpath origin, and returns every command with absolute
// 2D points and Relative cleared.
//
// The cursor starts at (0,0). A MoveTo updates the cursor point by point
// and its first point becomes the subpath origin; ClosePath emits exactly
// one point equal to that origin and resets the cursor there. H and V
// supply one axis from the parameter and take the other from the cursor.
// Opaque commands have their pairs offset against the cursor when relative
// and advance the cursor to their last full pair, keeping subsequent
// commands anchored. The input is not mutated.
func Resolve(cmds []Command) []Command {
	var cursor, subpathStart Point

	out := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		rc := Command{Type: c.Type, Opaque: c.Opaque}

		switch c.Type {
		case MoveTo:
			for i, p := range c.Points {
				if c.Relative {
					p.X += cursor.X
					p.Y += cursor.Y
				}
				cursor = p
				if i == 0 {
					subpathStart = p
				}
				rc.Points = append(rc.Points, p)
			}

		case LineTo:
			for _, p := range c.Points {
				if c.Relative {
					p.X += cursor.X
					p.Y += cursor.Y
				}
				cursor = p
				rc.Points = append(rc.Points, p)
			}

		case HorizontalLineTo:
			for _, p := range c.Points {
				x := p.X
				if c.Relative {
					x += cursor.X
				}
				cursor = Point{X: x, Y: cursor.Y}
				rc.Points = append(rc.Points, cursor)
			}

		case VerticalLineTo:
			for _, p := range c.Points {
				y := p.Y
				if c.Relative {
					y += cursor.Y
				}
				cursor = Point{X: cursor.X, Y: y}
				rc.Points = append(rc.Points, cursor)
			}

		case ClosePath:
			cursor = subpathStart
			rc.Points = []Point{subpathStart}

		default:
			// Curve/arc control points: carried, not interpreted
			for _, p := range c.Points {
				if c.Relative {
					p.X += cursor.X
					p.Y += cursor.Y
				}
				rc.Points = append(rc.Points, p)
			}
			if n := len(rc.Points); n > 0 {
				cursor = rc.Points[n-1]
			}
		}

		out = append(out, rc)
	}

	return out
}

// Flatten collects the resolved points of every non-opaque command, in
// command order, into a single polyline.
func Flatten(cmds []Command) []Point {
	var pts []Point
	for _, c := range cmds {
		if c.Opaque {
			continue
		}
		pts = append(pts, c.Points...)
	}
	return pts
}
