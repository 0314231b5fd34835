// Package eval is the tree-walking evaluator: it walks internal/ast nodes
// against internal/object environments, producing values and the side
// effect of printed output. Dispatch follows the shape of
// terex.Eval/evalAtom/evalList — a type switch over node kinds rather than
// a generic atom/list walk, since Mini-LISP's AST is already typed.
package eval

import (
	"fmt"
	"io"

	"github.com/mlisp/minilisp/internal/ast"
	"github.com/mlisp/minilisp/internal/diag"
	"github.com/mlisp/minilisp/internal/object"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilisp.eval'.
func tracer() tracing.Trace {
	return diag.Tracer("minilisp.eval")
}

// Interp runs a sequence of top-level statements against one persistent
// global environment, writing print output to Out.
type Interp struct {
	Out    io.Writer
	Global *object.Environment
}

// New creates an interpreter with a fresh global frame.
func New(out io.Writer) *Interp {
	return &Interp{Out: out, Global: object.NewEnvironment(nil)}
}

// Run evaluates stmts in order against the global frame, discarding each
// statement's value, and stops at the first error.
func (it *Interp) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := it.evalStmt(s, it.Global); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) evalStmt(s ast.Stmt, env *object.Environment) (object.Value, error) {
	switch n := s.(type) {
	case *ast.Define:
		v, err := it.evalExpr(n.Expr, env)
		if err != nil {
			return nil, err
		}
		if !env.Define(n.Name, v) {
			return nil, redefined(n.Name)
		}
		return nil, nil
	case *ast.Print:
		v, err := it.evalExpr(n.Expr, env)
		if err != nil {
			return nil, err
		}
		return nil, it.print(n.Kind, v)
	case ast.Expr:
		return it.evalExpr(n, env)
	}
	return nil, fmt.Errorf("internal error: unhandled statement %T", s)
}

func (it *Interp) print(kind ast.PrintKind, v object.Value) error {
	switch kind {
	case ast.PrintNum:
		n, ok := v.(object.Int)
		if !ok {
			return typeError("number", object.TypeName(v))
		}
		_, err := fmt.Fprintf(it.Out, "%d\n", int64(n))
		return err
	case ast.PrintBool:
		b, ok := v.(object.Bool)
		if !ok {
			return typeError("boolean", object.TypeName(v))
		}
		_, err := fmt.Fprintf(it.Out, "%s\n", b.String())
		return err
	}
	return fmt.Errorf("internal error: unhandled print kind %v", kind)
}

func (it *Interp) evalExpr(e ast.Expr, env *object.Environment) (object.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		if n.IsBool {
			return object.Bool(n.Bool), nil
		}
		return object.Int(n.Int), nil
	case *ast.VarRef:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, undefinedVariable(n.Name)
		}
		return v, nil
	case *ast.If:
		return it.evalIf(n, env)
	case *ast.Lambda:
		return &object.Closure{Params: n.Params, Body: n.Body, CapturedEnv: env}, nil
	case *ast.Apply:
		return it.evalApply(n, env)
	case *ast.PrimOp:
		return it.evalPrimOp(n, env)
	}
	return nil, fmt.Errorf("internal error: unhandled expression %T", e)
}

func (it *Interp) evalIf(n *ast.If, env *object.Environment) (object.Value, error) {
	t, err := it.evalExpr(n.Test, env)
	if err != nil {
		return nil, err
	}
	b, ok := t.(object.Bool)
	if !ok {
		return nil, typeError("boolean", object.TypeName(t))
	}
	if bool(b) {
		return it.evalExpr(n.Then, env)
	}
	return it.evalExpr(n.Else, env)
}

func (it *Interp) evalApply(n *ast.Apply, env *object.Environment) (object.Value, error) {
	calleeVal, err := it.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}
	closure, ok := calleeVal.(*object.Closure)
	if !ok {
		return nil, typeError("function", object.TypeName(calleeVal))
	}
	if len(n.Args) != len(closure.Params) {
		return nil, userArity(len(closure.Params), len(n.Args))
	}
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	frame := object.NewEnvironment(closure.CapturedEnv)
	for i, p := range closure.Params {
		frame.Define(p, args[i])
	}
	tracer().Debugf("calling closure with %d params, new frame parented on %s", len(closure.Params), closure.CapturedEnv)
	frame.Dump(tracing.LevelDebug)
	var result object.Value
	for _, stmt := range closure.Body {
		result, err = it.evalStmt(stmt, frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (it *Interp) evalPrimOp(n *ast.PrimOp, env *object.Environment) (object.Value, error) {
	switch n.Op {
	case ast.OpAnd:
		return it.evalShortCircuit(n, env, false)
	case ast.OpOr:
		return it.evalShortCircuit(n, env, true)
	}
	vals := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	switch n.Op {
	case ast.OpAdd:
		return applyAdd(vals)
	case ast.OpMul:
		return applyMul(vals)
	case ast.OpSub:
		return applySub(vals)
	case ast.OpDiv:
		return applyDiv(vals)
	case ast.OpMod:
		return applyMod(vals)
	case ast.OpGt:
		return applyGt(vals)
	case ast.OpLt:
		return applyLt(vals)
	case ast.OpEq:
		return applyEq(vals)
	case ast.OpNot:
		return applyNot(vals)
	}
	return nil, fmt.Errorf("internal error: unhandled operator %v", n.Op)
}

// evalShortCircuit implements `and`/`or`: args are evaluated left to
// right, stopping at the first value equal to stopOn (false for `and`,
// true for `or`) — later arguments, and any side effects in them, are
// never evaluated.
func (it *Interp) evalShortCircuit(n *ast.PrimOp, env *object.Environment, stopOn bool) (object.Value, error) {
	if len(n.Args) < 2 {
		return nil, needAtLeast(2, len(n.Args))
	}
	result := object.Bool(!stopOn)
	for _, a := range n.Args {
		v, err := it.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		b, ok := v.(object.Bool)
		if !ok {
			return nil, typeError("boolean", object.TypeName(v))
		}
		result = b
		if bool(b) == stopOn {
			return result, nil
		}
	}
	return result, nil
}
