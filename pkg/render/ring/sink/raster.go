package sink

import (
	"gatewheel/pkg/render"
	"gatewheel/pkg/render/ring"
)

// RenderPNG renders the document to SVG and converts it to PNG at the
// given scale factor.
func RenderPNG(doc *ring.Document, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(RenderSVG(doc, opts...), scale)
}

// RenderPDF renders the document to SVG and converts it to PDF.
func RenderPDF(doc *ring.Document, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(doc, opts...))
}
