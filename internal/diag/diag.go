// Package diag wires the interpreter's internal trace logging. Besides the
// driver (cmd/minilisp), which also assigns the global tracer itself, it is
// the only package that touches the global tracer; the other packages ask
// it for a keyed tracing.Trace and import schuko only for the
// tracing.Trace/TraceLevel types.
//
// None of this reaches the stdout contract the evaluator and driver owe
// the caller (print output, syntax/runtime error lines) — traces are for
// developers running with -trace, written to stderr.
package diag

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Init installs the global syntax tracer and sets its verbosity. Call this
// once, at process startup, before any package calls Tracer.
func Init(level tracing.TraceLevel) {
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(level)
}

// Tracer returns a keyed tracer, e.g. Tracer("minilisp.eval").
func Tracer(key string) tracing.Trace {
	return tracing.Select(key)
}

// LevelFromString parses a CLI-supplied trace level ("Debug"|"Info"|"Error").
func LevelFromString(s string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(s)
}

// Fingerprint returns a short stable hash of v, for use in trace-level
// debug output only (e.g. dumping a frame's bindings without printing
// the whole chain every time). It is never consulted by evaluation.
func Fingerprint(v interface{}) string {
	hash, err := structhash.Hash(v, 1)
	if err != nil {
		return fmt.Sprintf("<unhashable %T>", v)
	}
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return hash
}
