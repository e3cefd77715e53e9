// Package svg extracts raw copper-trace records from SVG markup. It is a
// thin text-extraction layer: path data strings and style attributes come
// out verbatim, all geometric interpretation happens in pkg/svgpath and
// pkg/board.
package svg

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

// DefaultTraceWidth is assumed when a path element carries no usable
// stroke-width.
const DefaultTraceWidth = 0.15

// ExtractFile reads an SVG file and extracts its trace records.
func ExtractFile(filename string) ([]board.Trace, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Extract(file)
}

// Extract reads SVG markup from a reader and extracts its trace records.
func Extract(r io.Reader) ([]board.Trace, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse SVG markup: %w", err)
	}
	return ExtractDocument(doc)
}

// ExtractDocument pulls every path element out of a parsed SVG document.
// Elements with no path data are skipped: a trace is only considered when
// it has geometry to resolve. Elements without an id are assigned a
// synthetic one so every trace has a stable identity.
func ExtractDocument(doc *etree.Document) ([]board.Trace, error) {
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("not an SVG document")
	}

	var traces []board.Trace
	n := 0
	for _, el := range doc.FindElements("//path") {
		d := strings.TrimSpace(el.SelectAttrValue("d", ""))
		if d == "" {
			continue
		}
		n++

		id := el.SelectAttrValue("id", "")
		if id == "" {
			id = fmt.Sprintf("trace%d", n)
		}

		traces = append(traces, board.Trace{
			ID:        id,
			PathData:  d,
			Width:     strokeWidth(el),
			Stroke:    styleValue(el, "stroke"),
			Fill:      styleValue(el, "fill"),
			Layer:     layerOf(el),
			Transform: el.SelectAttrValue("transform", ""),
		})
	}

	return traces, nil
}

// strokeWidth reads the trace width from the stroke-width presentation
// attribute or the style attribute, falling back to DefaultTraceWidth.
func strokeWidth(el *etree.Element) float64 {
	raw := styleValue(el, "stroke-width")
	if raw == "" {
		return DefaultTraceWidth
	}
	// Strip a trailing unit suffix such as "px" or "mm"
	raw = strings.TrimRightFunc(raw, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w <= 0 {
		return DefaultTraceWidth
	}
	return w
}

// styleValue resolves a presentation property: the direct attribute wins,
// then a declaration inside the style attribute.
func styleValue(el *etree.Element, prop string) string {
	if v := el.SelectAttrValue(prop, ""); v != "" {
		return v
	}
	for _, decl := range strings.Split(el.SelectAttrValue("style", ""), ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if strings.TrimSpace(name) == prop {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// layerOf walks up the enclosing groups looking for a layer name: an
// Inkscape layer label if present, otherwise the group id.
func layerOf(el *etree.Element) string {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if p.Tag != "g" {
			continue
		}
		if label := p.SelectAttrValue("inkscape:label", ""); label != "" {
			return label
		}
		if id := p.SelectAttrValue("id", ""); id != "" {
			return id
		}
	}
	return ""
}
