package extract

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"gatewheel/pkg/errors"
)

// RawElement is one calibration element as found in the reference
// diagram. Attributes are carried verbatim; nothing is parsed or
// reinterpreted at this stage.
type RawElement struct {
	ID    string
	Tag   string
	Attrs map[string]string
}

// Document is a parsed reference diagram: every element that carries an
// id attribute, in document order.
type Document struct {
	Elements []RawElement
}

// Classes of calibration elements, matched by id prefix.
const (
	ClassGate  = "gate"
	ClassPair  = "pair"
	ClassShape = "shape"
)

// Parse reads an SVG document and collects every element with an id
// attribute. Elements without ids are structural and ignored.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	var doc Document
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse reference diagram")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		attrs := make(map[string]string, len(start.Attr))
		id := ""
		for _, a := range start.Attr {
			attrs[a.Name.Local] = a.Value
			if a.Name.Local == "id" {
				id = a.Value
			}
		}
		if id == "" {
			continue
		}
		doc.Elements = append(doc.Elements, RawElement{
			ID:    id,
			Tag:   start.Name.Local,
			Attrs: attrs,
		})
	}
	return &doc, nil
}

// ParseFile parses a reference diagram from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reference diagram %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Locate returns the elements of one calibration class, matched by id
// prefix, in document order and with their attributes untouched.
func Locate(doc *Document, class string) []RawElement {
	prefix := class + "-"
	var out []RawElement
	for _, el := range doc.Elements {
		if strings.HasPrefix(el.ID, prefix) {
			out = append(out, el)
		}
	}
	return out
}
