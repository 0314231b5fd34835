package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mlisp/minilisp/internal/ast"
	"github.com/mlisp/minilisp/internal/eval"
	"github.com/mlisp/minilisp/internal/lexer"
	"github.com/mlisp/minilisp/internal/sexpr"
	"github.com/pterm/pterm"
)

// runREPL starts an interactive shell, evaluating each line's top-level
// forms against a persistent environment. print-num/print-bool output goes
// to stdout through the interpreter's own Out; expression values are not
// echoed; errors are reported through pterm.
func runREPL() {
	pterm.Info.Println("Mini-LISP REPL — quit with <ctrl>D")
	rl, err := readline.New("mlisp> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer rl.Close()

	it := eval.New(os.Stdout)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := evalLine(it, line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	fmt.Println("Good bye!")
}

func evalLine(it *eval.Interp, line string) error {
	toks, err := lexer.Tokenize([]byte(line))
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
	return it.Run(stmts)
}
