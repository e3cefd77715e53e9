package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseIssue records a parameter token that could not be read as a number.
// The parameter is carried through as NaN so the geometry it touches can be
// flagged downstream, rather than silently treated as zero.
type ParseIssue struct {
	Token  string
	Offset int
}

func (i ParseIssue) Error() string {
	return fmt.Sprintf("malformed numeric token %q at offset %d", i.Token, i.Offset)
}

// Parse tokenizes SVG path data into an ordered sequence of typed commands
// with raw (possibly relative) coordinate parameters.
//
// Parsing is permissive: a malformed parameter yields a ParseIssue plus a
// NaN placeholder and never aborts the walk. M and L consume parameters as
// (x,y) pairs, dropping a trailing unpaired parameter; H and V take one
// parameter per point with the missing axis left at zero until resolution;
// Z consumes nothing. Parse is a pure function of the input string.
func Parse(d string) ([]Command, []ParseIssue) {
	if strings.TrimSpace(d) == "" {
		return nil, nil
	}

	symbols := PathLexer.Symbols()
	symCommand := symbols["Command"]
	symNumber := symbols["Number"]
	symJunk := symbols["Junk"]

	lx, err := PathLexer.LexString("", d)
	if err != nil {
		return nil, []ParseIssue{{Token: d}}
	}

	var (
		cmds   []Command
		issues []ParseIssue
		cur    *pendingCommand
	)

	flush := func() {
		if cur != nil {
			cmds = append(cmds, cur.build())
			cur = nil
		}
	}

	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}

		switch tok.Type {
		case symCommand:
			flush()
			letter := tok.Value[0]
			cur = &pendingCommand{
				typ:      commandTypes[letter&^0x20],
				relative: letter >= 'a',
			}

		case symNumber:
			if cur == nil {
				// Parameters before the first command belong to nothing
				continue
			}
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				issues = append(issues, ParseIssue{Token: tok.Value, Offset: tok.Pos.Offset})
				v = math.NaN()
			}
			cur.params = append(cur.params, v)

		case symJunk:
			issues = append(issues, ParseIssue{Token: tok.Value, Offset: tok.Pos.Offset})
			if cur != nil {
				cur.params = append(cur.params, math.NaN())
			}
		}
	}
	flush()

	return cmds, issues
}

// pendingCommand accumulates parameters until the next command letter.
type pendingCommand struct {
	typ      CommandType
	relative bool
	params   []float64
}

func (p *pendingCommand) build() Command {
	c := Command{Type: p.typ, Relative: p.relative}

	switch p.typ {
	case MoveTo, LineTo:
		c.Points = pairs(p.params)
	case HorizontalLineTo:
		for _, v := range p.params {
			c.Points = append(c.Points, Point{X: v})
		}
	case VerticalLineTo:
		for _, v := range p.params {
			c.Points = append(c.Points, Point{Y: v})
		}
	case ClosePath:
		// Z consumes no parameters
	default:
		c.Points = pairs(p.params)
		c.Opaque = true
	}

	return c
}

// pairs consumes parameters two at a time as (x,y) coordinates.
// A trailing unpaired parameter is dropped.
func pairs(params []float64) []Point {
	if len(params) < 2 {
		return nil
	}
	pts := make([]Point, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		pts = append(pts, Point{X: params[i], Y: params[i+1]})
	}
	return pts
}
