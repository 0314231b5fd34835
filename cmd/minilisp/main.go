// Command minilisp runs the Mini-LISP interpreter against a single source
// file. Both success and any reported syntax or runtime error exit 0;
// only the missing-argument usage case exits 1. The flag/logging setup
// mirrors trepl/repl.go's.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mlisp/minilisp/internal/ast"
	"github.com/mlisp/minilisp/internal/diag"
	"github.com/mlisp/minilisp/internal/eval"
	"github.com/mlisp/minilisp/internal/lexer"
	"github.com/mlisp/minilisp/internal/sexpr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	replMode := flag.Bool("repl", false, "Start an interactive read-eval-print loop instead")
	flag.Parse()

	gtrace.SyntaxTracer = gologadapter.New()
	diag.Init(tracing.TraceLevelFromString(*tlevel))

	if *replMode {
		runREPL()
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		os.Exit(1)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(0)
	}

	if err := interpret(src, os.Stdout); err != nil {
		fmt.Fprintln(os.Stdout, err.Error())
	}
	os.Exit(0)
}

// interpret runs the full pipeline — lexer, reader, AST builder,
// evaluator — over src, writing print-num/print-bool output to out. The
// first error from any stage is returned unadorned; main is responsible
// for the trailing newline and the exit-0 convention.
func interpret(src []byte, out io.Writer) error {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	forms, err := sexpr.ReadAll(toks)
	if err != nil {
		return err
	}
	stmts, err := ast.Build(forms)
	if err != nil {
		return err
	}
	return eval.New(out).Run(stmts)
}
