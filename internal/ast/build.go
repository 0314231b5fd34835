package ast

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/mlisp/minilisp/internal/diag"
	"github.com/mlisp/minilisp/internal/sexpr"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'minilisp.ast'.
func tracer() tracing.Trace {
	return diag.Tracer("minilisp.ast")
}

// reservedNames is the set of operator spellings that may never be used
// in name position: `(define + 1)` must be rejected. Built on
// emirpasic/gods' hashset rather than a hand-rolled map[string]struct{}.
var reservedNames = func() *hashset.Set {
	s := hashset.New()
	for name := range primOpNames {
		s.Add(name)
	}
	return s
}()

func isReserved(name string) bool {
	return reservedNames.Contains(name)
}

// SyntaxError is an AST-construction failure. Tok carries the offending
// lexeme when the builder can identify one; otherwise it is empty and
// Error() returns the bare "syntax error" form.
type SyntaxError struct {
	Tok string
}

func (e *SyntaxError) Error() string {
	if e.Tok == "" {
		return "syntax error"
	}
	return "syntax error, unexpected '" + e.Tok + "'"
}

func errBare() error          { return &SyntaxError{} }
func errTok(tok string) error { return &SyntaxError{Tok: tok} }

// Build converts a top-level sequence of s-expressions into the typed
// AST, one Stmt per s-expression, in source order.
func Build(forms []sexpr.SExpr) ([]Stmt, error) {
	stmts := make([]Stmt, 0, len(forms))
	for _, f := range forms {
		s, err := parseStmt(f)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// parseStmt recognizes define/print-num/print-bool forms; anything else
// is parsed as an expression. Used both at the top level and for
// `fun` body statements.
func parseStmt(s sexpr.SExpr) (Stmt, error) {
	if s.Kind == sexpr.List && len(s.Elems) > 0 && s.Elems[0].Kind == sexpr.AtomSym {
		switch s.Elems[0].Sym {
		case "define":
			return parseDefine(s)
		case "print-num":
			return parsePrint(s, PrintNum)
		case "print-bool":
			return parsePrint(s, PrintBool)
		}
	}
	return parseExpr(s)
}

func parseDefine(s sexpr.SExpr) (Stmt, error) {
	if len(s.Elems) != 3 {
		tracer().Debugf("define: wrong arity %d", len(s.Elems))
		return nil, errBare()
	}
	nameForm := s.Elems[1]
	if nameForm.Kind != sexpr.AtomSym {
		return nil, errBare()
	}
	if isReserved(nameForm.Sym) {
		return nil, errTok(nameForm.Sym)
	}
	expr, err := parseExpr(s.Elems[2])
	if err != nil {
		return nil, err
	}
	return &Define{Name: nameForm.Sym, Expr: expr}, nil
}

func parsePrint(s sexpr.SExpr, kind PrintKind) (Stmt, error) {
	if len(s.Elems) != 2 {
		return nil, errBare()
	}
	expr, err := parseExpr(s.Elems[1])
	if err != nil {
		return nil, err
	}
	return &Print{Kind: kind, Expr: expr}, nil
}

// parseExpr parses s as an expression.
func parseExpr(s sexpr.SExpr) (Expr, error) {
	switch s.Kind {
	case sexpr.AtomInt:
		return &Literal{IsBool: false, Int: s.Int}, nil
	case sexpr.AtomBool:
		return &Literal{IsBool: true, Bool: s.Bool}, nil
	case sexpr.AtomSym:
		if isReserved(s.Sym) {
			return nil, errTok(s.Sym)
		}
		return &VarRef{Name: s.Sym}, nil
	case sexpr.List:
		return parseListExpr(s)
	}
	return nil, errBare()
}

func parseListExpr(s sexpr.SExpr) (Expr, error) {
	if s.IsEmptyList() {
		return nil, errTok(")")
	}
	head := s.Elems[0]
	if head.Kind == sexpr.AtomSym {
		switch head.Sym {
		case "if":
			return parseIf(s)
		case "fun":
			return parseLambda(s)
		}
		if op, ok := primOpNames[head.Sym]; ok {
			return parsePrimOp(s, op)
		}
	}
	return parseApply(s)
}

func parseIf(s sexpr.SExpr) (Expr, error) {
	if len(s.Elems) != 4 {
		return nil, errTok("if")
	}
	test, err := parseExpr(s.Elems[1])
	if err != nil {
		return nil, err
	}
	then, err := parseExpr(s.Elems[2])
	if err != nil {
		return nil, err
	}
	alt, err := parseExpr(s.Elems[3])
	if err != nil {
		return nil, err
	}
	return &If{Test: test, Then: then, Else: alt}, nil
}

func parseLambda(s sexpr.SExpr) (Expr, error) {
	if len(s.Elems) < 3 {
		return nil, errTok("fun")
	}
	paramsForm := s.Elems[1]
	if paramsForm.Kind != sexpr.List {
		return nil, errTok("fun")
	}
	params := make([]string, 0, len(paramsForm.Elems))
	for _, p := range paramsForm.Elems {
		if p.Kind != sexpr.AtomSym || isReserved(p.Sym) {
			return nil, errTok("fun")
		}
		if slices.Contains(params, p.Sym) {
			return nil, errTok(p.Sym)
		}
		params = append(params, p.Sym)
	}
	body := make([]Stmt, 0, len(s.Elems)-2)
	for _, b := range s.Elems[2:] {
		st, err := parseStmt(b)
		if err != nil {
			return nil, err
		}
		body = append(body, st)
	}
	return &Lambda{Params: params, Body: body}, nil
}

func parsePrimOp(s sexpr.SExpr, op PrimOpKind) (Expr, error) {
	args := make([]Expr, 0, len(s.Elems)-1)
	for _, a := range s.Elems[1:] {
		e, err := parseExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return &PrimOp{Op: op, Args: args}, nil
}

func parseApply(s sexpr.SExpr) (Expr, error) {
	callee, err := parseExpr(s.Elems[0])
	if err != nil {
		return nil, err
	}
	args := make([]Expr, 0, len(s.Elems)-1)
	for _, a := range s.Elems[1:] {
		e, err := parseExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return &Apply{Callee: callee, Args: args}, nil
}
