package ring

import (
	"sync"

	"gatewheel/pkg/errors"
)

// DefaultGenerators returns the standard band set in inside-out order.
func DefaultGenerators() []Generator {
	return []Generator{
		ChannelRing{},
		TrigramRing{},
		NameRing{},
		NumberRing{},
		GlyphRing{},
		LineBand{},
	}
}

// Document is the merged output of one generation run. Order preserves the
// generator order so sinks can layer rings deterministically.
type Document struct {
	Order []string             `json:"order"`
	Rings map[string][]Element `json:"rings"`
}

// Elements flattens the document in ring order. Within a ring, elements
// are already sorted by (gate, sub-index).
func (d *Document) Elements() []Element {
	var out []Element
	for _, name := range d.Order {
		out = append(out, d.Rings[name]...)
	}
	return out
}

// GenerateAll runs every generator against the shared context. Generators
// run concurrently; results and errors are collected by slot index so the
// output and the reported error are independent of scheduling.
func GenerateAll(ctx Context, gens []Generator) (*Document, error) {
	if len(gens) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "no ring generators configured")
	}

	results := make([][]Element, len(gens))
	errs := make([]error, len(gens))

	var wg sync.WaitGroup
	for i, gen := range gens {
		wg.Add(1)
		go func(i int, gen Generator) {
			defer wg.Done()
			results[i], errs[i] = gen.Generate(ctx)
		}(i, gen)
	}
	wg.Wait()

	doc := &Document{Rings: make(map[string][]Element, len(gens))}
	for i, gen := range gens {
		if errs[i] != nil {
			// First failing slot wins regardless of which goroutine
			// finished first.
			return nil, errs[i]
		}
		doc.Order = append(doc.Order, gen.Name())
		doc.Rings[gen.Name()] = results[i]
	}
	return doc, nil
}
