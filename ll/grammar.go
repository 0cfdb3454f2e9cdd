package ll

import (
	"strings"
	"unicode"

	"github.com/npillmayer/predict"
)

// Arrows separating the left-hand side of a production from its right-hand
// side. Grammar tools export the Unicode arrow, hand-written tables tend to use
// the ASCII variant.
const (
	Arrow      = "→"
	ASCIIArrow = "->"
)

// EpsilonRune is the rendered form of the epsilon marker, as produced by HTML
// readers decoding "&epsilon;".
const EpsilonRune = "ε"

// IsEpsilon returns true if sym is the empty-derivation marker.
func IsEpsilon(sym string) bool {
	return sym == predict.Epsilon || sym == EpsilonRune
}

// IsTerminal returns true if sym is spelled like a terminal symbol, i.e. it
// contains letters and all of them are lower-case. The epsilon marker is not a
// terminal.
func IsTerminal(sym string) bool {
	if IsEpsilon(sym) {
		return false
	}
	return hasLettersOfCase(sym, unicode.IsLower)
}

// IsNonTerminal returns true if sym is spelled like a non-terminal symbol, i.e.
// it contains letters and all of them are upper-case.
func IsNonTerminal(sym string) bool {
	return hasLettersOfCase(sym, unicode.IsUpper)
}

func hasLettersOfCase(sym string, isCase func(rune) bool) bool {
	letters := 0
	for _, r := range sym {
		if unicode.IsLetter(r) {
			if !isCase(r) {
				return false
			}
			letters++
		} else if !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return letters > 0
}

// Production is a production in parsed form. Text holds the verbatim text the
// production has been parsed from.
type Production struct {
	LHS  string
	RHS  []string
	Text string
}

// ParseProduction parses the textual form of a production
//
//    <NonTerminal> <arrow> <symbol> <symbol> ...
//
// and checks its shape. A malformed production results in a
// ShapeViolationError.
func ParseProduction(text string) (Production, error) {
	p := Production{Text: text}
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return p, shapeError(text, "", "expected a non-terminal, an arrow and at least one symbol")
	}
	if !IsNonTerminal(fields[0]) {
		return p, shapeError(text, fields[0], "left-hand side is not a non-terminal")
	}
	p.LHS = fields[0]
	if fields[1] != Arrow && fields[1] != ASCIIArrow {
		return p, shapeError(text, p.LHS, "malformed arrow separator "+fields[1])
	}
	for _, sym := range fields[2:] {
		if !IsEpsilon(sym) && !IsTerminal(sym) && !IsNonTerminal(sym) {
			return p, shapeError(text, p.LHS, "symbol '"+sym+"' is neither terminal nor non-terminal")
		}
	}
	p.RHS = fields[2:]
	return p, nil
}

// IsEpsilon returns true if p derives the empty string directly.
func (p Production) IsEpsilon() bool {
	for _, sym := range p.RHS {
		if !IsEpsilon(sym) {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	return p.LHS + " " + Arrow + " " + strings.Join(p.RHS, " ")
}
