package sexpr

import (
	"testing"

	"github.com/mlisp/minilisp/internal/lexer"
)

func read(t *testing.T, src string) []SExpr {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	out, err := ReadAll(toks)
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	return out
}

func TestReadAtoms(t *testing.T) {
	out := read(t, "42 #t #f x")
	if len(out) != 4 {
		t.Fatalf("got %d s-exprs, want 4", len(out))
	}
	if out[0].Kind != AtomInt || out[0].Int != 42 {
		t.Errorf("out[0] = %v", out[0])
	}
	if out[1].Kind != AtomBool || !out[1].Bool {
		t.Errorf("out[1] = %v", out[1])
	}
	if out[2].Kind != AtomBool || out[2].Bool {
		t.Errorf("out[2] = %v", out[2])
	}
	if out[3].Kind != AtomSym || out[3].Sym != "x" {
		t.Errorf("out[3] = %v", out[3])
	}
}

func TestReadNestedList(t *testing.T) {
	out := read(t, "(define f (fun (x) (+ x 1)))")
	if len(out) != 1 || out[0].Kind != List {
		t.Fatalf("got %v", out)
	}
	top := out[0].Elems
	if len(top) != 3 || top[0].Sym != "define" || top[1].Sym != "f" {
		t.Fatalf("top = %v", top)
	}
	if top[2].Kind != List || len(top[2].Elems) != 3 || top[2].Elems[0].Sym != "fun" {
		t.Fatalf("fun expr = %v", top[2])
	}
}

func TestReadUnmatchedOpenParen(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("(define x 1"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if _, err := ReadAll(toks); err == nil {
		t.Fatalf("expected syntax error for unmatched '('")
	}
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	toks, err := lexer.Tokenize([]byte(")"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	_, err = ReadAll(toks)
	if err == nil {
		t.Fatalf("expected syntax error for stray ')'")
	}
	serr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if serr.Tok == nil || serr.Tok.Kind != lexer.RParen {
		t.Errorf("expected offending token to be ')', got %v", serr.Tok)
	}
}

func TestReadEmptyList(t *testing.T) {
	out := read(t, "()")
	if len(out) != 1 || out[0].Kind != List || !out[0].IsEmptyList() {
		t.Fatalf("got %v", out)
	}
}
