// Package sexpr implements the S-expression layer that sits between the
// token stream and the typed AST: a recursive atom-or-list tree, grounded
// in terex.Atom/terex.GCons's tagged-cons design but trimmed to the two
// primitive types Mini-LISP needs (no strings, floats, operators, or
// environment atoms) and to plain slices instead of linked cons cells,
// since nothing here needs sharing or destructive list surgery — only
// the AST builder walks this tree, once, before it is discarded.
package sexpr

import (
	"fmt"
	"strings"
)

// Kind tags the payload an SExpr carries.
type Kind int

const (
	AtomInt Kind = iota
	AtomBool
	AtomSym
	List
)

// SExpr is an atom (int, bool, symbol) or a list of S-expressions.
type SExpr struct {
	Kind Kind
	Int  int64
	Bool bool
	Sym  string
	Elems []SExpr // valid when Kind == List

	Line, Column int // source position of the first token of this s-expr
}

// IsAtom reports whether s is an atom (anything but a list).
func (s SExpr) IsAtom() bool {
	return s.Kind != List
}

// IsEmptyList reports whether s is the empty list '()'.
func (s SExpr) IsEmptyList() bool {
	return s.Kind == List && len(s.Elems) == 0
}

func (s SExpr) String() string {
	switch s.Kind {
	case AtomInt:
		return fmt.Sprintf("%d", s.Int)
	case AtomBool:
		if s.Bool {
			return "#t"
		}
		return "#f"
	case AtomSym:
		return s.Sym
	case List:
		parts := make([]string, len(s.Elems))
		for i, e := range s.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "<invalid sexpr>"
}
