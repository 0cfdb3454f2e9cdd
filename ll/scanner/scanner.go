/*
Package scanner defines tokens and an interface for tokenizers producing input
for the predictive parser, and reads and writes token files.

A token file lists the raw kinds of a token stream, one per line:

	Identifier
	EqualsSymbol
	IntLit
	SemiColon

Raw kinds are mapped to grammar terminals by package token. An adapter for
lexmachine, producing tokens from source text, lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/token"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// EOF is the kind of the token a tokenizer returns at the end of input.
const EOF token.Kind = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Token is a token of the language, as produced by a tokenizer.
type Token struct {
	Kind   token.Kind
	Lexeme string
	Span   predict.Span // byte offsets of the lexeme within the input
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%s[%q]%s", t.Kind, t.Lexeme, t.Span)
}

// LogError is the default error reporting function for tokenizers.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// All reads tokens from a tokenizer until end of input. The EOF token is not
// included.
func All(tz Tokenizer) []Token {
	var tokens []Token
	for tok := tz.NextToken(); tok.Kind != EOF; tok = tz.NextToken() {
		tokens = append(tokens, tok)
	}
	tracer().Debugf("tokenizer produced %d tokens", len(tokens))
	return tokens
}

// Kinds returns the raw kind names of a list of tokens.
func Kinds(tokens []Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Kind.String()
	}
	return names
}

// --- Token files -----------------------------------------------------------

// ReadKinds reads a token file. Lines are trimmed and blank lines are skipped.
func ReadKinds(r io.Reader) ([]string, error) {
	var kinds []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		kinds = append(kinds, line)
	}
	if err := sc.Err(); err != nil {
		return kinds, fmt.Errorf("cannot read token file: %w", err)
	}
	return kinds, nil
}

// WriteKinds writes a token file for a list of tokens.
func WriteKinds(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for _, name := range Kinds(tokens) {
		bw.WriteString(name)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write token file: %w", err)
	}
	return nil
}
