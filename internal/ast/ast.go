// Package ast defines Mini-LISP's typed abstract syntax tree and the
// builder that produces it from the S-expression layer by dispatching on
// list head forms. Nodes are immutable after construction, grounded in
// termr.ASTBuilder's "recognize a form, build a typed node" shape —
// trimmed to a direct S-expr walk, since Mini-LISP has no grammar
// ambiguity and therefore no need for a parse-forest/SPPF layer.
package ast

import "fmt"

// Stmt is any top-level or body-level statement: a Define, a Print, or a
// bare expression (every Expr is also a Stmt).
type Stmt interface {
	stmtNode()
}

// Expr is any Mini-LISP expression.
type Expr interface {
	Stmt
	exprNode()
}

// Literal is a boolean or integer constant.
type Literal struct {
	IsBool bool
	Int    int64
	Bool   bool
}

func (*Literal) stmtNode() {}
func (*Literal) exprNode() {}

func (l *Literal) String() string {
	if l.IsBool {
		if l.Bool {
			return "#t"
		}
		return "#f"
	}
	return fmt.Sprintf("%d", l.Int)
}

// VarRef is an unresolved identifier, looked up in the environment at
// evaluation time.
type VarRef struct {
	Name string
}

func (*VarRef) stmtNode() {}
func (*VarRef) exprNode() {}

// Define binds Name to the value of Expr in the frame it runs in.
// Redefinition within the same frame is a runtime error; shadowing via a
// deeper frame is allowed.
type Define struct {
	Name string
	Expr Expr
}

func (*Define) stmtNode() {}

// If evaluates Test and takes exactly one of Then/Else; the other
// branch is never evaluated.
type If struct {
	Test, Then, Else Expr
}

func (*If) stmtNode() {}
func (*If) exprNode() {}

// Lambda produces a Closure value capturing the defining environment.
// Body is non-empty; its last statement's value is the call's result,
// every earlier one's value is discarded. Prefix statements may be a
// Define or a bare expression.
type Lambda struct {
	Params []string
	Body   []Stmt
}

func (*Lambda) stmtNode() {}
func (*Lambda) exprNode() {}

// Apply calls Callee (which must evaluate to a Closure) with Args,
// evaluated left to right in the caller's environment.
type Apply struct {
	Callee Expr
	Args   []Expr
}

func (*Apply) stmtNode() {}
func (*Apply) exprNode() {}

// PrimOpKind is one of the eleven built-in operator symbols. Primitive
// operators are not first-class: they cannot be passed around as
// values, only appear as the head of a PrimOp node.
//
//go:generate stringer -type PrimOpKind
type PrimOpKind int

const (
	OpAdd PrimOpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpGt
	OpLt
	OpEq
	OpAnd
	OpOr
	OpNot
)

// primOpNames maps operator spellings to their PrimOpKind; also doubles
// as the reserved-keyword set consulted when a name is used in value
// position (see build.go's reservedNames).
var primOpNames = map[string]PrimOpKind{
	"+":   OpAdd,
	"-":   OpSub,
	"*":   OpMul,
	"/":   OpDiv,
	"mod": OpMod,
	">":   OpGt,
	"<":   OpLt,
	"=":   OpEq,
	"and": OpAnd,
	"or":  OpOr,
	"not": OpNot,
}

// PrimOp applies a built-in operator to Args. Arity and operand types
// are not checked here — internal/eval checks them at evaluation time.
type PrimOp struct {
	Op   PrimOpKind
	Args []Expr
}

func (*PrimOp) stmtNode() {}
func (*PrimOp) exprNode() {}

// PrintKind selects print-num vs print-bool.
type PrintKind int

const (
	PrintNum PrintKind = iota
	PrintBool
)

// Print evaluates Expr and writes its decimal or #t/#f form followed by
// a newline.
type Print struct {
	Kind PrintKind
	Expr Expr
}

func (*Print) stmtNode() {}
