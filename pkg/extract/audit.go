package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gatewheel/pkg/errors"
	"gatewheel/pkg/hexagram"
	"gatewheel/pkg/wheel"
)

// boundaryShapes are the required named shapes, hub outward. Consecutive
// entries up to shape-lines-outer delimit the six bands; rim and frame
// close the decoration.
var boundaryShapes = []string{
	"shape-hub",
	"shape-channel-outer",
	"shape-trigram-outer",
	"shape-name-outer",
	"shape-number-outer",
	"shape-glyph-outer",
	"shape-lines-outer",
	"shape-rim",
	"shape-frame",
}

// Report is the completeness record of one extraction run.
type Report struct {
	RunID         string         `toml:"run_id"`
	Counts        map[string]int `toml:"counts"`
	Discrepancies []string       `toml:"discrepancies,omitempty"`
}

// Complete reports whether the audit found no discrepancies.
func (r *Report) Complete() bool { return len(r.Discrepancies) == 0 }

// Audit checks a parsed diagram against the expected calibration element
// counts: one marker per gate, two markers per channel, and the nine
// named boundary shapes. Every shortfall and every excess is recorded
// individually; generators assume exact counts, so any discrepancy makes
// the extraction fatal.
func Audit(doc *Document) (*Report, error) {
	rep := &Report{
		RunID:  uuid.NewString(),
		Counts: make(map[string]int),
	}

	auditGates(doc, rep)
	auditPairs(doc, rep)
	auditShapes(doc, rep)

	if !rep.Complete() {
		return rep, errors.New(errors.ErrCodeExtractionIncomplete,
			"reference diagram audit found %d discrepancies (run %s)",
			len(rep.Discrepancies), rep.RunID)
	}
	return rep, nil
}

func auditGates(doc *Document, rep *Report) {
	els := Locate(doc, ClassGate)
	rep.Counts[ClassGate] = len(els)

	seen := make(map[string]int)
	for _, el := range els {
		seen[el.ID]++
	}
	for _, g := range hexagram.Gates() {
		id := fmt.Sprintf("gate-%d", g)
		switch n := seen[id]; {
		case n == 0:
			rep.Discrepancies = append(rep.Discrepancies, "missing marker "+id)
		case n > 1:
			rep.Discrepancies = append(rep.Discrepancies,
				fmt.Sprintf("marker %s appears %d times", id, n))
		}
		delete(seen, id)
	}
	for _, id := range sortedKeys(seen) {
		rep.Discrepancies = append(rep.Discrepancies, "unexpected marker "+id)
	}
}

func auditPairs(doc *Document, rep *Report) {
	els := Locate(doc, ClassPair)
	rep.Counts[ClassPair] = len(els)

	seen := make(map[string]int)
	for _, el := range els {
		seen[el.ID]++
	}
	for _, ch := range wheel.Channels() {
		for _, side := range []string{"a", "b"} {
			id := fmt.Sprintf("pair-%d-%d-%s", ch.A, ch.B, side)
			switch n := seen[id]; {
			case n == 0:
				rep.Discrepancies = append(rep.Discrepancies, "missing marker "+id)
			case n > 1:
				rep.Discrepancies = append(rep.Discrepancies,
					fmt.Sprintf("marker %s appears %d times", id, n))
			}
			delete(seen, id)
		}
	}
	for _, id := range sortedKeys(seen) {
		rep.Discrepancies = append(rep.Discrepancies, "unexpected marker "+id)
	}
}

func auditShapes(doc *Document, rep *Report) {
	els := Locate(doc, ClassShape)
	rep.Counts[ClassShape] = len(els)

	seen := make(map[string]int)
	for _, el := range els {
		seen[el.ID]++
	}
	for _, id := range boundaryShapes {
		switch n := seen[id]; {
		case n == 0:
			rep.Discrepancies = append(rep.Discrepancies, "missing shape "+id)
		case n > 1:
			rep.Discrepancies = append(rep.Discrepancies,
				fmt.Sprintf("shape %s appears %d times", id, n))
		}
		delete(seen, id)
	}
	for _, id := range sortedKeys(seen) {
		rep.Discrepancies = append(rep.Discrepancies, "unexpected shape "+id)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary renders a short per-class count summary for logs.
func (r *Report) Summary() string {
	parts := make([]string, 0, len(r.Counts))
	for _, k := range sortedKeys(r.Counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Counts[k]))
	}
	return strings.Join(parts, " ")
}
