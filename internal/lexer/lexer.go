// Package lexer turns Mini-LISP source text into a flat token stream.
//
// Scanning is backed by github.com/timtadh/lexmachine, the same DFA-lexer
// generator terex/terexlang uses: regexes are registered in priority
// order and lexmachine resolves matches longest-first, ties broken by
// registration order — which is exactly the "longest match, then listed
// priority" rule the lexical grammar asks for, including the '-'-vs-
// negative-literal ambiguity (a bare '-' only loses to the integer
// pattern when a digit follows with no intervening whitespace, since
// the DFA can't cross the gap).
package lexer

import (
	"fmt"
	"strconv"

	"github.com/mlisp/minilisp/internal/diag"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'minilisp.lexer'.
func tracer() tracing.Trace {
	return diag.Tracer("minilisp.lexer")
}

// rules lists the recognized lexemes in priority order, mirroring
// terexlang.Lexer()'s init closure. Int's regex matches the maximal run
// of digits (with an optional leading '-') rather than just the legal
// literal shapes, so that a malformed run like "007" is captured whole
// instead of splitting into several legal-looking Int tokens one digit
// short each — legality is then checked once the full lexeme is in hand,
// in Tokenize.
var rules = []struct {
	kind  Kind
	regex string
}{
	{LParen, `\(`},
	{RParen, `\)`},
	{True, `#t`},
	{False, `#f`},
	{Int, `\-?[0-9]+`},
	{Sym, `[a-z][a-z0-9\-]*`},
	{Sym, `\+|\-|\*|/|<|>|=`},
}

var machine *lexmachine.Lexer

func init() {
	m := lexmachine.NewLexer()
	for _, r := range rules {
		kind := r.kind
		m.Add([]byte(r.regex), func(s *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
			return s.Token(int(kind), string(match.Bytes), match), nil
		})
	}
	m.Add([]byte(` |\t|\n|\r`), skip)
	if err := m.Compile(); err != nil {
		panic(fmt.Errorf("lexer: compiling DFA: %w", err))
	}
	machine = m
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// isLegalIntLexeme reports whether digits (an Int-rule match, optionally
// '-'-prefixed) is "0" or a non-zero digit followed by zero or more
// digits. A leading-zero run of more than one digit ("007") or a signed
// zero ("-0") is not a legal integer literal.
func isLegalIntLexeme(lexeme string) bool {
	neg := false
	digits := lexeme
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if digits == "0" {
		return !neg
	}
	return digits[0] != '0'
}

// SyntaxError reports a lexical failure: an unrecognized character.
type SyntaxError struct {
	Offender byte
	Offset   int
}

func (e *SyntaxError) Error() string {
	if e.Offender == 0 {
		return "syntax error"
	}
	return fmt.Sprintf("syntax error, unexpected '%c'", e.Offender)
}

// Tokenize scans source in full and returns its token stream, terminated
// by an EOF token. The first unrecognized character aborts scanning.
func Tokenize(source []byte) ([]Token, error) {
	scanner, err := machine.Scanner(source)
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				off := ui.FailTC
				var ch byte
				if off >= 0 && off < len(source) {
					ch = source[off]
				}
				tracer().Debugf("lexer: unconsumed input at %d", off)
				return nil, &SyntaxError{Offender: ch, Offset: off}
			}
			return nil, fmt.Errorf("lexer: %w", err)
		}
		lt := tok.(*lexmachine.Token)
		t := Token{
			Kind:   Kind(lt.Type),
			Lexeme: string(lt.Lexeme),
			Offset: lt.TC,
			Line:   lt.StartLine,
			Column: lt.StartColumn,
		}
		if t.Kind == Int {
			if !isLegalIntLexeme(t.Lexeme) {
				tracer().Debugf("lexer: illegal integer literal %q at %d", t.Lexeme, t.Offset)
				return nil, &SyntaxError{Offender: t.Lexeme[0], Offset: t.Offset}
			}
			n, perr := strconv.ParseInt(t.Lexeme, 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("lexer: malformed integer literal %q: %w", t.Lexeme, perr)
			}
			t.Int = n
		}
		toks = append(toks, t)
	}
	toks = append(toks, Token{Kind: EOF})
	return toks, nil
}
