package ll

import "fmt"

// DuplicateNonTerminalError is returned by BuildTable if a non-terminal labels
// more than one row of a grammar grid.
type DuplicateNonTerminalError struct {
	NonTerminal string
	FirstRow    int // 1-based row index within the grid, header is row 0
	Row         int
}

func (e *DuplicateNonTerminalError) Error() string {
	return fmt.Sprintf("non-terminal %s defined twice (rows %d and %d)", e.NonTerminal, e.FirstRow, e.Row)
}

// RowCountMismatchError is returned by BuildTable if the number of table
// entries does not match the number of data rows of the grid.
type RowCountMismatchError struct {
	Entries int
	Rows    int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("parse table has %d entries for %d grammar rows", e.Entries, e.Rows)
}

// MisalignedRowError is returned by BuildTable for rows which cannot be aligned
// with the terminal alphabet.
type MisalignedRowError struct {
	Row    int
	Reason string
}

func (e *MisalignedRowError) Error() string {
	return fmt.Sprintf("grammar row %d: %s", e.Row, e.Reason)
}

// AmbiguousGrammarError is returned by BuildTable if a (non-terminal, terminal)
// pair would predict more than one production, i.e. the grammar is not LL(1).
type AmbiguousGrammarError struct {
	NonTerminal string
	Terminal    string
	First       string
	Second      string
}

func (e *AmbiguousGrammarError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): M[%s,%s] = { %q, %q }",
		e.NonTerminal, e.Terminal, e.First, e.Second)
}

// ShapeViolationError flags a stored production which is not of the form
// expected. It indicates a corrupt parse table, never a syntax error of the
// parser's input.
type ShapeViolationError struct {
	Production  string
	NonTerminal string
	Reason      string
}

func (e *ShapeViolationError) Error() string {
	if e.NonTerminal == "" {
		return fmt.Sprintf("corrupt production %q: %s", e.Production, e.Reason)
	}
	return fmt.Sprintf("corrupt production %q for %s: %s", e.Production, e.NonTerminal, e.Reason)
}

func shapeError(prod, nonterm, reason string) *ShapeViolationError {
	err := &ShapeViolationError{Production: prod, NonTerminal: nonterm, Reason: reason}
	tracer().Errorf("%v", err)
	return err
}
