package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/goccy/go-graphviz"

	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/payload"
	"gatewheel/pkg/render"
	"gatewheel/pkg/wheel"
)

// Options configures channel-network rendering.
type Options struct {
	// Detailed includes the gate name and quarter in node labels.
	// When false, only the gate number is shown.
	Detailed bool

	// Payload supplies gate names for detailed labels. Nil falls back to
	// the embedded default set.
	Payload *payload.Set
}

// quarterFill maps each quarter to a node fill so the relational view
// keeps the wheel's coarsest grouping visible.
var quarterFill = map[hexagram.Quarter]string{
	hexagram.QuarterInitiation:   "#f4d9a6",
	hexagram.QuarterCivilisation: "#cfe3c2",
	hexagram.QuarterDuality:      "#c9d6ea",
	hexagram.QuarterMutation:     "#e0c9dd",
}

// ToDOT converts the channel table to Graphviz DOT format. Nodes are the
// gates that appear in at least one channel; edges are undirected since a
// channel has no direction. The resulting DOT string can be rendered with
// [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(opts Options) (string, error) {
	set := opts.Payload
	if set == nil {
		set = payload.Default()
	}

	seen := make(map[hexagram.Gate]bool)
	for _, ch := range wheel.Channels() {
		seen[ch.A] = true
		seen[ch.B] = true
	}
	gates := make([]hexagram.Gate, 0, len(seen))
	for g := range seen {
		gates = append(gates, g)
	}
	sort.Slice(gates, func(i, j int) bool { return gates[i] < gates[j] })

	var buf bytes.Buffer
	buf.WriteString("graph channels {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18, margin=\"0.1,0.1\"];\n")
	buf.WriteString("\n")

	for _, g := range gates {
		c, err := wheel.Classify(g)
		if err != nil {
			return "", err
		}
		label := strconv.Itoa(int(g))
		if opts.Detailed {
			info, err := set.Gate(g)
			if err != nil {
				return "", err
			}
			label = fmt.Sprintf("%d\n%s\n%s", g, info.Name, c.Quarter)
		}
		fmt.Fprintf(&buf, "  %d [label=%q, fillcolor=%q];\n", g, label, quarterFill[c.Quarter])
	}

	buf.WriteString("\n")
	for _, ch := range wheel.Channels() {
		fmt.Fprintf(&buf, "  %d -- %d [label=%q, fontsize=12];\n", ch.A, ch.B, ch.Name)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz. The returned bytes
// are ready for display or conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the viewBox starts at
// the origin and width/height match it, which keeps rsvg-convert scaling
// predictable.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
