package object

import (
	"fmt"

	"github.com/mlisp/minilisp/internal/diag"
	"github.com/npillmayer/schuko/tracing"
)

// Environment is a single lexical frame: a map-backed variable table plus
// a link to the enclosing frame, forming a tree just as
// runtime.Scope/runtime.SymbolTable do — but Lookup here always walks the
// full parent chain (there is no separate global-vs-local distinction;
// a closure captures whatever frame was current at `fun` evaluation
// time, global or not).
type Environment struct {
	vars   map[string]Value
	Parent *Environment
}

// NewEnvironment creates an empty frame with the given parent (nil for
// the top-level/global frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]Value),
		Parent: parent,
	}
}

func (e *Environment) String() string {
	if e.Parent == nil {
		return "<env (global)>"
	}
	return fmt.Sprintf("<env %d vars, parent=%s>", len(e.vars), e.Parent)
}

// Lookup resolves name by walking from this frame up through its
// ancestors, returning the first binding found. ok is false if name is
// bound nowhere on the chain.
func (e *Environment) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.Parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in this frame only. It reports false without
// changing anything if name is already bound in this frame — shadowing a
// binding from an enclosing frame is fine, redefining one in the same
// frame is a runtime error the caller must report.
func (e *Environment) Define(name string, v Value) bool {
	if _, exists := e.vars[name]; exists {
		return false
	}
	e.vars[name] = v
	return true
}

// Dump traces the frame chain from e up to the global frame, one line per
// frame, at the given trace level. Debug-only tooling: never consulted by
// evaluation, only by -trace=Debug and by tests, grounded in
// terex.Element.Dump. Each frame line carries a short fingerprint of its
// bindings so repeated-call traces can tell two frames apart without
// printing every binding every time; the full binding list is only
// emitted at Debug level.
func (e *Environment) Dump(level tracing.TraceLevel) {
	depth := 0
	for f := e; f != nil; f = f.Parent {
		trace(level)("frame %d: %d binding(s) [%s]", depth, len(f.vars), diag.Fingerprint(f.vars))
		if level == tracing.LevelDebug {
			for name, v := range f.vars {
				trace(level)("  %s = %s [%s]", name, v.String(), TypeName(v))
			}
		}
		depth++
	}
}

func trace(level tracing.TraceLevel) func(string, ...interface{}) {
	t := tracer()
	switch level {
	case tracing.LevelDebug:
		return t.Debugf
	case tracing.LevelInfo:
		return t.Infof
	default:
		return t.Errorf
	}
}
