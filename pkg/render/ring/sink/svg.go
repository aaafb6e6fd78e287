package sink

import (
	"bytes"
	"fmt"
	"strings"

	"gatewheel/pkg/render/ring"
)

// SVGOption configures the SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      float64
	height     float64
	background string
	fontFamily string
	stroke     string
	fill       string
}

// WithCanvas sets the viewBox dimensions.
func WithCanvas(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithBackground sets a background fill color. Empty leaves the canvas
// transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithFontFamily sets the font family for text elements.
func WithFontFamily(name string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = name }
}

// WithInk sets the stroke and fill color shared by all primitives.
func WithInk(color string) SVGOption {
	return func(r *svgRenderer) { r.stroke, r.fill = color, color }
}

// RenderSVG assembles a wheel document into a complete SVG. Rings become
// layer groups in document order; every primitive carries data-ring,
// data-gate, and data-field attributes naming its origin.
func RenderSVG(doc *ring.Document, opts ...SVGOption) []byte {
	r := svgRenderer{
		width:      1000,
		height:     1000,
		fontFamily: "Helvetica, Arial, sans-serif",
		stroke:     "#1a1a1a",
		fill:       "#1a1a1a",
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			r.width, r.height, escape(r.background))
	}

	for _, name := range doc.Order {
		fmt.Fprintf(&buf, `  <g id="ring-%s" class="ring">`+"\n", escape(name))
		for _, el := range doc.Rings[name] {
			r.renderElement(&buf, el)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderElement(buf *bytes.Buffer, el ring.Element) {
	transform := fmt.Sprintf("translate(%.2f %.2f) rotate(%.2f)",
		el.At.X, el.At.Y, el.RotationDegrees)
	origin := fmt.Sprintf(`data-ring="%s" data-gate="%d" data-field="%s"`,
		escape(el.Ring), el.Gate, escape(el.Field))

	switch el.Kind {
	case ring.KindPath:
		fmt.Fprintf(buf, `    <path transform="%s" %s d="%s" fill="%s" stroke="none"/>`+"\n",
			transform, origin, escape(el.Path), r.fill)
	case ring.KindText:
		fmt.Fprintf(buf,
			`    <text transform="%s" %s font-family="%s" font-size="%.2f" fill="%s" text-anchor="middle">`+"\n",
			transform, origin, escape(r.fontFamily), el.FontSize, r.fill)
		// Line block centered on the anchor point: first tspan starts
		// half the block height up, each following line one line-height
		// down.
		offset := -el.LineHeight * float64(len(el.Lines)-1) / 2
		for i, line := range el.Lines {
			y := offset + float64(i)*el.LineHeight
			fmt.Fprintf(buf, `      <tspan x="0" y="%.2f">%s</tspan>`+"\n", y, escape(line))
		}
		buf.WriteString("    </text>\n")
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
