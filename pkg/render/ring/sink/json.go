package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gatewheel/pkg/render/ring"
)

// WriteJSON encodes a wheel document as indented JSON and writes it to w.
// Ring order and element order are preserved, so the encoding is stable
// across runs.
func WriteJSON(doc *ring.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a wheel document to a JSON file at path.
func ExportJSON(doc *ring.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
