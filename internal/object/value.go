// Package object defines Mini-LISP's runtime value model and lexical
// environments. Values are produced only by evaluation; Environment is
// the frame-chain that backs variable lookup, grounded in
// runtime.Scope/runtime.SymbolTable's scope-tree design (map-backed
// table, parent link, lookup that walks to the root) — carrying Value
// instead of runtime.Tag.
package object

import (
	"fmt"

	"github.com/mlisp/minilisp/internal/ast"
	"github.com/mlisp/minilisp/internal/diag"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilisp.object'.
func tracer() tracing.Trace {
	return diag.Tracer("minilisp.object")
}

// Kind tags the three value variants.
//
//go:generate stringer -type Kind
type Kind int

const (
	IntKind Kind = iota
	BoolKind
	ClosureKind
)

// Value is any Mini-LISP runtime value. Int and Bool are disjoint — no
// value of one is ever implicitly treated as the other.
type Value interface {
	Kind() Kind
	String() string
}

// Int is a 64-bit signed integer value.
type Int int64

func (Int) Kind() Kind        { return IntKind }
func (i Int) String() string  { return fmt.Sprintf("%d", int64(i)) }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Closure is a function value: parameters, a body, and the environment
// active at the closure's definition site — not at its call site. A
// Closure shares ownership of CapturedEnv (a pointer), so the frame may
// outlive the call that produced the closure.
type Closure struct {
	Params      []string
	Body        []ast.Stmt
	CapturedEnv *Environment
}

func (*Closure) Kind() Kind { return ClosureKind }
func (c *Closure) String() string {
	return fmt.Sprintf("#<closure/%d>", len(c.Params))
}

// TypeName returns the type-error vocabulary ("number", "boolean",
// "function") for a value, used by internal/eval to build
// `Type Error: Expect '...' but got '...'.` messages.
func TypeName(v Value) string {
	switch v.Kind() {
	case IntKind:
		return "number"
	case BoolKind:
		return "boolean"
	case ClosureKind:
		return "function"
	}
	return "unknown"
}
