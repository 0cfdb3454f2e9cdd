package predictive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/predict/ll"
)

// SyntaxError is returned for input the grammar does not derive. It is the
// expected failure for invalid programs.
type SyntaxError struct {
	NonTerminal string   // non-terminal being expanded
	Lookahead   string   // offending terminal, empty at end of input
	Position    int      // index of the lookahead within the input
	Expected    []string // terminals which would have been acceptable
}

func (e *SyntaxError) Error() string {
	la := e.Lookahead
	if la == "" {
		la = "end of input"
	}
	msg := fmt.Sprintf("syntax error at token #%d: unexpected %s while parsing %s", e.Position, la, e.NonTerminal)
	if len(e.Expected) > 0 {
		msg += ", expected one of { " + strings.Join(e.Expected, " ") + " }"
	}
	return msg
}

// LeftoverTokensError is returned if START has been derived completely, but
// input is left. As the input ends with the end-of-input terminal, this
// indicates a defective table.
type LeftoverTokensError struct {
	Consumed  int
	Remaining []string
}

func (e *LeftoverTokensError) Error() string {
	return fmt.Sprintf("all tokens should have been consumed: %d consumed, %d left over %v",
		e.Consumed, len(e.Remaining), e.Remaining)
}

// TableDefectError is returned if a production has been predicted for a
// lookahead terminal it does not start with.
type TableDefectError struct {
	NonTerminal string
	Production  string
	Expected    string
	Lookahead   string
}

func (e *TableDefectError) Error() string {
	return fmt.Sprintf("table predicts %q for M[%s,%s], but production expects %s",
		e.Production, e.NonTerminal, e.Lookahead, e.Expected)
}

// DepthExceededError is returned if expansions nest deeper than the parser's
// limit.
type DepthExceededError struct {
	NonTerminal string
	Depth       int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("expansion of %s exceeds maximum depth %d", e.NonTerminal, e.Depth)
}

// IsSyntaxError returns true if err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var synerr *SyntaxError
	return errors.As(err, &synerr)
}

// IsInternal returns true if err flags an inconsistency of the parse table or
// of the parser itself.
func IsInternal(err error) bool {
	var (
		shape    *ll.ShapeViolationError
		leftover *LeftoverTokensError
		defect   *TableDefectError
		depth    *DepthExceededError
	)
	return errors.As(err, &shape) || errors.As(err, &leftover) ||
		errors.As(err, &defect) || errors.As(err, &depth)
}
