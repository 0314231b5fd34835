package sexpr

import (
	"github.com/mlisp/minilisp/internal/diag"
	"github.com/mlisp/minilisp/internal/lexer"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minilisp.sexpr'.
func tracer() tracing.Trace {
	return diag.Tracer("minilisp.sexpr")
}

// SyntaxError is a reader-level syntax error. Tok is the offending token
// when one could be identified, otherwise nil and Error() falls back to
// the bare "syntax error" form.
type SyntaxError struct {
	Tok   *lexer.Token
	Bare  string
}

func (e *SyntaxError) Error() string {
	if e.Tok == nil {
		return "syntax error"
	}
	lex := e.Tok.Lexeme
	if e.Tok.Kind == lexer.EOF {
		lex = "EOF"
	}
	return "syntax error, unexpected '" + lex + "'"
}

// Reader reads S-expressions, one at a time, from a token stream.
type Reader struct {
	toks []lexer.Token
	pos  int
}

// NewReader creates a reader over a token stream produced by lexer.Tokenize.
func NewReader(toks []lexer.Token) *Reader {
	return &Reader{toks: toks}
}

func (r *Reader) peek() lexer.Token {
	return r.toks[r.pos]
}

func (r *Reader) advance() lexer.Token {
	t := r.toks[r.pos]
	if t.Kind != lexer.EOF {
		r.pos++
	}
	return t
}

// AtEOF reports whether the reader has consumed every token.
func (r *Reader) AtEOF() bool {
	return r.peek().Kind == lexer.EOF
}

// ReadAll reads s-expressions until the token stream is exhausted,
// producing the top-level sequence.
func ReadAll(toks []lexer.Token) ([]SExpr, error) {
	r := NewReader(toks)
	var out []SExpr
	for !r.AtEOF() {
		s, err := r.Read()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Read reads one s-expression, advancing past it.
func (r *Reader) Read() (SExpr, error) {
	tok := r.peek()
	switch tok.Kind {
	case lexer.EOF:
		return SExpr{}, &SyntaxError{Bare: "unexpected end of input"}
	case lexer.RParen:
		tk := tok
		return SExpr{}, &SyntaxError{Tok: &tk}
	case lexer.LParen:
		return r.readList()
	case lexer.True:
		r.advance()
		return SExpr{Kind: AtomBool, Bool: true, Line: tok.Line, Column: tok.Column}, nil
	case lexer.False:
		r.advance()
		return SExpr{Kind: AtomBool, Bool: false, Line: tok.Line, Column: tok.Column}, nil
	case lexer.Int:
		r.advance()
		return SExpr{Kind: AtomInt, Int: tok.Int, Line: tok.Line, Column: tok.Column}, nil
	case lexer.Sym:
		r.advance()
		return SExpr{Kind: AtomSym, Sym: tok.Lexeme, Line: tok.Line, Column: tok.Column}, nil
	}
	tk := tok
	return SExpr{}, &SyntaxError{Tok: &tk}
}

func (r *Reader) readList() (SExpr, error) {
	open := r.advance() // consume '('
	var elems []SExpr
	for {
		tok := r.peek()
		if tok.Kind == lexer.EOF {
			tracer().Debugf("unmatched '(' opened at line %d", open.Line)
			return SExpr{}, &SyntaxError{Bare: "unexpected end of input"}
		}
		if tok.Kind == lexer.RParen {
			r.advance()
			break
		}
		e, err := r.Read()
		if err != nil {
			return SExpr{}, err
		}
		elems = append(elems, e)
	}
	return SExpr{Kind: List, Elems: elems, Line: open.Line, Column: open.Column}, nil
}
