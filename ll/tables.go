package ll

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/predict/ll/sparse"
)

// === Terminal Alphabet =====================================================

// LoadTerminals extracts the terminal alphabet from the header row of a grammar
// grid. Column 0 of a grid holds the non-terminals, therefore the header's
// first cell is skipped. Order is significant: table columns are aligned to the
// alphabet by position. No de-duplication is performed.
func LoadTerminals(header []string) []string {
	if len(header) == 0 {
		return nil
	}
	terminals := make([]string, 0, len(header)-1)
	for _, cell := range header[1:] {
		terminals = append(terminals, strings.TrimSpace(cell))
	}
	return terminals
}

// === Parse Table ===========================================================

// Table is an LL(1) parse table, mapping a non-terminal and a lookahead
// terminal to the production to predict. Create one with BuildTable.
//
// A table is immutable after construction and safe to be shared between
// parsers.
type Table struct {
	terminals    []string       // terminal alphabet, in header order
	termcol      map[string]int // terminal -> matrix column
	nonterminals []string       // non-terminals, in row order
	ntrow        map[string]int // non-terminal -> matrix row
	productions  []string       // verbatim production texts, indexed by matrix values
	matrix       *sparse.Matrix
}

func newTable(terminals []string, rows int) *Table {
	t := &Table{
		terminals:    terminals,
		termcol:      make(map[string]int, len(terminals)),
		nonterminals: make([]string, 0, rows),
		ntrow:        make(map[string]int, rows),
		productions:  make([]string, 0, rows*2),
	}
	for j, a := range terminals {
		if _, exists := t.termcol[a]; !exists { // first occurrence defines the column
			t.termcol[a] = j
		}
	}
	t.matrix = sparse.New(rows, len(terminals))
	return t
}

// Option configures table construction.
type Option func(*tableBuilder)

type tableBuilder struct {
	lastWriteWins bool
}

// LastWriteWins sets or clears option LastWriteWins. If set, a second
// production for the same (non-terminal, terminal) pair replaces the first one
// instead of failing with an AmbiguousGrammarError.
func LastWriteWins(b bool) Option {
	return func(tb *tableBuilder) {
		tb.lastWriteWins = b
	}
}

// BuildTable constructs a parse table from a grammar grid. Row 0 of the grid is
// the header row carrying the terminal alphabet (see LoadTerminals). Every
// other row starts with a non-terminal, followed by one cell per terminal. A
// cell is present only if its trimmed text is longer than one character;
// present cells are stored verbatim.
func BuildTable(grid [][]string, opts ...Option) (*Table, error) {
	tb := &tableBuilder{}
	for _, opt := range opts {
		opt(tb)
	}
	if len(grid) == 0 {
		return nil, &MisalignedRowError{Row: 0, Reason: "grid has no header row"}
	}
	terminals := LoadTerminals(grid[0])
	tracer().Debugf("terminal alphabet of size %d: %v", len(terminals), terminals)
	rows := grid[1:]
	t := newTable(terminals, len(rows))
	for r, row := range rows {
		if err := tb.addRow(t, r+1, row); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	if len(t.nonterminals) != len(rows) {
		err := &RowCountMismatchError{Entries: len(t.nonterminals), Rows: len(rows)}
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Infof("LL(1) table with %d non-terminals, %d terminals and %d productions",
		len(t.nonterminals), len(t.terminals), len(t.productions))
	return t, nil
}

func (tb *tableBuilder) addRow(t *Table, rowno int, row []string) error {
	if len(row) == 0 {
		return &MisalignedRowError{Row: rowno, Reason: "empty row"}
	}
	N := strings.TrimSpace(row[0])
	if N == "" {
		return &MisalignedRowError{Row: rowno, Reason: "missing non-terminal label"}
	}
	if len(row)-1 > len(t.terminals) {
		return &MisalignedRowError{Row: rowno, Reason: fmt.Sprintf(
			"%d cells for %d terminals", len(row)-1, len(t.terminals))}
	}
	if first, exists := t.ntrow[N]; exists {
		return &DuplicateNonTerminalError{NonTerminal: N, FirstRow: first + 1, Row: rowno}
	}
	i := len(t.nonterminals)
	t.nonterminals = append(t.nonterminals, N)
	t.ntrow[N] = i
	for j, text := range row[1:] {
		if !isPresent(text) {
			continue
		}
		a := t.terminals[j]
		col := t.termcol[a]
		inx := int32(len(t.productions))
		t.productions = append(t.productions, text)
		if occupied := t.matrix.Add(i, col, inx); occupied {
			prev := t.productions[t.matrix.Value(i, col)]
			if !tb.lastWriteWins {
				return &AmbiguousGrammarError{NonTerminal: N, Terminal: a, First: prev, Second: text}
			}
			tracer().Infof("M[%s,%s]: %q replaces %q", N, a, text, prev)
			t.matrix.Set(i, col, inx)
		}
		tracer().Debugf("M[%s,%s] = %s", N, a, text)
	}
	return nil
}

// isPresent decides whether a cell holds a production. Empty cells of exported
// tables often contain a single filler character or whitespace.
func isPresent(cell string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(cell)) > 1
}

// --- Table access ----------------------------------------------------------

// Lookup returns the production predicted for non-terminal N and lookahead
// terminal a.
func (t *Table) Lookup(N, a string) (string, bool) {
	i, ok := t.ntrow[N]
	if !ok {
		return "", false
	}
	j, ok := t.termcol[a]
	if !ok {
		return "", false
	}
	v := t.matrix.Value(i, j)
	if v == sparse.NoValue {
		return "", false
	}
	return t.productions[v], true
}

// Terminals returns a copy of the terminal alphabet, in header order.
func (t *Table) Terminals() []string {
	return append([]string(nil), t.terminals...)
}

// NonTerminals returns the non-terminals of the table, in row order.
func (t *Table) NonTerminals() []string {
	return append([]string(nil), t.nonterminals...)
}

// IsTerminal returns true if a is a member of the table's terminal alphabet.
func (t *Table) IsTerminal(a string) bool {
	_, ok := t.termcol[a]
	return ok
}

// HasNonTerminal returns true if the table has a row for N.
func (t *Table) HasNonTerminal(N string) bool {
	_, ok := t.ntrow[N]
	return ok
}

// Size returns the number of entries, i.e. non-terminals, of the table.
func (t *Table) Size() int {
	return len(t.nonterminals)
}

// Row returns all the predictions for non-terminal N, keyed by terminal.
func (t *Table) Row(N string) map[string]string {
	i, ok := t.ntrow[N]
	if !ok {
		return nil
	}
	row := make(map[string]string)
	t.matrix.Each(func(r, c int, a, _ int32) {
		if r == i {
			row[t.terminals[c]] = t.productions[a]
		}
	})
	return row
}

// Map returns the table as a mapping of mappings: non-terminal to terminal to
// verbatim production. Every non-terminal is present, even if its row is empty.
func (t *Table) Map() map[string]map[string]string {
	m := make(map[string]map[string]string, len(t.nonterminals))
	for _, N := range t.nonterminals {
		m[N] = make(map[string]string)
	}
	t.matrix.Each(func(r, c int, a, _ int32) {
		m[t.nonterminals[r]][t.terminals[c]] = t.productions[a]
	})
	return m
}

// Dump is a debugging helper, tracing the table at debug level.
func (t *Table) Dump() {
	tracer().Debugf("--- LL(1) table -----------------------------")
	row := -1
	t.matrix.Each(func(r, c int, a, _ int32) {
		if r != row {
			row = r
			tracer().Debugf("%s:", t.nonterminals[r])
		}
		tracer().Debugf("    %-12s %s", t.terminals[c], t.productions[a])
	})
	tracer().Debugf("---------------------------------------------")
}
