package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/ll/token"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// Literals are operators and punctuation.
var Literals = map[string]token.Kind{
	"(":  token.OpenParenthesis,
	")":  token.CloseParenthesis,
	":":  token.Colon,
	"::": token.Sr,
	"[":  token.OpenSquareBracket,
	"]":  token.CloseSquareBracket,
	",":  token.Comma,
	";":  token.SemiColon,
	"=>": token.Arrow,
	"{":  token.OpenCurly,
	"}":  token.CloseCurly,
	"=":  token.EqualsSymbol,
	"==": token.EqualEqual,
	"<>": token.NotEqual,
	"<":  token.LessThan,
	">":  token.GreaterThan,
	"<=": token.LessThanOrEq,
	">=": token.GreaterThanOrEq,
	"+":  token.Plus,
	"-":  token.Minus,
	"*":  token.Asterix,
	"/":  token.Slash,
	".":  token.Period,
}

// Keywords are reserved words. They take precedence over identifiers.
// Keywords are spelled like their terminals, except for localVar.
var Keywords = map[string]token.Kind{
	"function":    token.Function,
	"integer":     token.IntegerKeyword,
	"float":       token.FloatKeyword,
	"localVar":    token.LocalVar,
	"void":        token.Void,
	"while":       token.While,
	"if":          token.If,
	"then":        token.Then,
	"else":        token.Else,
	"write":       token.Write,
	"read":        token.Read,
	"return":      token.Return,
	"class":       token.Class,
	"isa":         token.IsA,
	"public":      token.Public,
	"private":     token.Private,
	"attribute":   token.Attribute,
	"constructor": token.Constructor,
	"or":          token.Or,
	"and":         token.And,
	"not":         token.Not,
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// New compiles the DFA for the language.
//
// New will return an error if compiling the DFA failed.
func New() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	lexer := adapter.Lexer
	// with matches of equal length, patterns added first win
	for kw, kind := range Keywords {
		lexer.Add([]byte(kw), MakeToken(kind))
	}
	for lit, kind := range Literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lexer.Add([]byte(r), MakeToken(kind))
	}
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), Skip)
	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(token.Identifier))
	lexer.Add([]byte(`[0-9]+\.[0-9]+((e|E)(\+|\-)?[0-9]+)?`), MakeToken(token.FloatLit))
	lexer.Add([]byte(`[0-9]+`), MakeToken(token.IntLit))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Tokenize scans a complete input. Unrecognized input is skipped; the first
// error is returned together with all tokens found.
func (lm *LMAdapter) Tokenize(input string) ([]scanner.Token, error) {
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		scanner.LogError(e)
		if first == nil {
			first = e
		}
	})
	tokens := scanner.All(scan)
	return tokens, first
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() scanner.Token {
	if lms.scanner == nil {
		return scanner.Token{Kind: scanner.EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(fmt.Errorf("unrecognized input %q at offset %d", ui.Text[ui.StartTC:ui.FailTC], ui.StartTC))
			lms.scanner.TC = ui.FailTC
		} else {
			lms.Error(err)
			return scanner.Token{Kind: scanner.EOF}
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.Token{Kind: scanner.EOF}
	}
	lt := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q", lt.Value, lt.Lexeme)
	return scanner.Token{
		Kind:   lt.Value.(token.Kind),
		Lexeme: string(lt.Lexeme),
		Span:   predict.Span{uint64(lt.TC), uint64(lt.TC + len(lt.Lexeme))},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of a given kind.
func MakeToken(kind token.Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), kind, m), nil
	}
}
