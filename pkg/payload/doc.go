// Package payload loads the knowledge content the rings annotate gates
// with: traditional names, keynotes, and optional per-line texts. Payloads
// are plain YAML files keyed by gate number and are read once at run start.
// A default set covering all 64 gates ships embedded; external files can
// override or extend it.
package payload
