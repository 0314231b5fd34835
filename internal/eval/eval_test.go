package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mlisp/minilisp/internal/ast"
	"github.com/mlisp/minilisp/internal/lexer"
	"github.com/mlisp/minilisp/internal/sexpr"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	forms, err := sexpr.ReadAll(toks)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	stmts, err := ast.Build(forms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf bytes.Buffer
	it := New(&buf)
	err = it.Run(stmts)
	return buf.String(), err
}

func TestEvalSumVariadic(t *testing.T) {
	out, err := run(t, "(print-num (+ 1 2 3))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6\n" {
		t.Errorf("got %q, want %q", out, "6\n")
	}
}

func TestEvalClosureCapturesDefinitionFrame(t *testing.T) {
	out, err := run(t, "(define x 10) (define f (fun (y) (+ x y))) (define x-unused 0) (print-num (f 5))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Errorf("got %q, want %q", out, "15\n")
	}
}

func TestEvalAndOrChain(t *testing.T) {
	out, err := run(t, "(print-bool (and #t (> 3 2) (= 2 2 2)))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "#t\n" {
		t.Errorf("got %q, want %q", out, "#t\n")
	}
}

func TestEvalModSignOfDividend(t *testing.T) {
	out, err := run(t, "(print-num (mod -7 3))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-1\n" {
		t.Errorf("got %q, want %q", out, "-1\n")
	}
}

func TestEvalRecursiveFactorial(t *testing.T) {
	out, err := run(t, "(define fact (fun (n) (if (< n 2) 1 (* n (fact (- n 1)))))) (print-num (fact 5))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "120\n" {
		t.Errorf("got %q, want %q", out, "120\n")
	}
}

func TestEvalTypeErrorOnCoercion(t *testing.T) {
	out, err := run(t, "(print-num (+ 1 #t))")
	if err == nil {
		t.Fatalf("expected a type error")
	}
	if !strings.Contains(err.Error(), "Type Error: Expect 'number' but got 'boolean'.") {
		t.Errorf("unexpected error message: %v", err)
	}
	if out != "" {
		t.Errorf("no output should be produced before the failing statement, got %q", out)
	}
}

func TestEvalShortCircuitAndSkipsSideEffect(t *testing.T) {
	out, err := run(t, "(and #f (print-bool #t))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("side effect in the unevaluated branch must not appear, got %q", out)
	}
}

func TestEvalShortCircuitOrSkipsSideEffect(t *testing.T) {
	out, err := run(t, "(or #t (print-bool #f))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("side effect in the unevaluated branch must not appear, got %q", out)
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	_, err := run(t, "(print-num x)")
	if err == nil || err.Error() != "Error: Variable x not defined" {
		t.Errorf("got %v", err)
	}
}

func TestEvalRedefinitionSameFrame(t *testing.T) {
	_, err := run(t, "(define x 1) (define x 2)")
	if err == nil || err.Error() != "Error: Redefining x is not allowed." {
		t.Errorf("got %v", err)
	}
}

func TestEvalShadowingInNestedFrameAllowed(t *testing.T) {
	out, err := run(t, "(define x 1) (define f (fun (x) (print-num x))) (f 9)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "9\n" {
		t.Errorf("got %q", out)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := run(t, "(print-num (/ 1 0))")
	if err == nil || err.Error() != "Error: Division by zero" {
		t.Errorf("got %v", err)
	}
}

func TestEvalDivisionTruncatesTowardZero(t *testing.T) {
	out, err := run(t, "(print-num (/ -7 2))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-3\n" {
		t.Errorf("got %q, want %q", out, "-3\n")
	}
}

func TestEvalUserFunctionArityMismatch(t *testing.T) {
	_, err := run(t, "(define f (fun (a b) (+ a b))) (f 1)")
	if err == nil || err.Error() != "Need 2 arguments, but got 1." {
		t.Errorf("got %v", err)
	}
}

func TestEvalPrimOpArityMismatch(t *testing.T) {
	_, err := run(t, "(print-num (not #t #f))")
	if err == nil || err.Error() != "Error: Need 1 argument, but got 2." {
		t.Errorf("got %v", err)
	}
}

func TestEvalApplyOnNonFunction(t *testing.T) {
	_, err := run(t, "(define x 1) (x 2)")
	if err == nil || err.Error() != "Type Error: Expect 'function' but got 'number'." {
		t.Errorf("got %v", err)
	}
}
