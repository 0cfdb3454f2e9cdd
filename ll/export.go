package ll

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/predict"
	"golang.org/x/net/html"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteTerminals writes a terminal alphabet to w, one terminal per line.
func WriteTerminals(w io.Writer, terminals []string) error {
	bw := bufio.NewWriter(w)
	for _, a := range terminals {
		bw.WriteString(a)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteJSON serializes the table as a JSON object keyed by non-terminal. Every
// value is an object keyed by terminal, holding the verbatim production. Rows
// are written in table order, keys within a row in alphabet order.
func (t *Table) WriteJSON(w io.Writer) error {
	stream := jsoniter.NewStream(json, w, 4096)
	stream.WriteObjectStart()
	row, first := -1, true
	openRowsUpTo := func(r int) { // rows without cells are written as empty objects
		for row < r {
			if row >= 0 {
				stream.WriteObjectEnd()
				stream.WriteMore()
			}
			row++
			stream.WriteRaw("\n  ")
			stream.WriteObjectField(t.nonterminals[row])
			stream.WriteObjectStart()
			first = true
		}
	}
	t.matrix.Each(func(r, c int, a, _ int32) {
		openRowsUpTo(r)
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(t.terminals[c])
		stream.WriteString(t.productions[a])
	})
	openRowsUpTo(len(t.nonterminals) - 1)
	if row >= 0 {
		stream.WriteObjectEnd()
	}
	stream.WriteRaw("\n")
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return fmt.Errorf("cannot serialize parse table: %w", stream.Error)
	}
	return stream.Flush()
}

// ReadJSON loads a table serialized by WriteJSON. As JSON objects carry no
// order, the terminal alphabet has to be supplied by the caller, usually from a
// terminals listing written by WriteTerminals. Non-terminals are ordered
// alphabetically, with START first.
func ReadJSON(r io.Reader, terminals []string, opts ...Option) (*Table, error) {
	var m map[string]map[string]string
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("cannot read parse table: %w", err)
	}
	cols := make(map[string]int, len(terminals))
	for j, a := range terminals {
		if _, exists := cols[a]; !exists {
			cols[a] = j + 1
		}
	}
	header := append([]string{""}, terminals...)
	grid := [][]string{header}
	names := treeset.NewWith(startFirst)
	for N := range m {
		names.Add(N)
	}
	for _, x := range names.Values() {
		N := x.(string)
		row := make([]string, len(header))
		row[0] = N
		for a, prod := range m[N] {
			j, ok := cols[a]
			if !ok {
				return nil, &MisalignedRowError{Row: len(grid), Reason: "unknown terminal " + a}
			}
			row[j] = prod
		}
		grid = append(grid, row)
	}
	return BuildTable(grid, opts...)
}

func startFirst(a, b interface{}) int {
	s1, s2 := a.(string), b.(string)
	switch {
	case s1 == s2:
		return 0
	case s1 == predict.Start:
		return -1
	case s2 == predict.Start:
		return 1
	case s1 < s2:
		return -1
	}
	return 1
}

// WriteHTML exports the table in HTML format. The output is the format
// package grid reads, so it may serve as a grammar source as well.
func (t *Table) WriteHTML(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	bw.WriteString(fmt.Sprintf("LL(1) table with %d entries<p>\n", t.matrix.ValueCount()))
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><th></th>")
	for _, a := range t.terminals {
		bw.WriteString("<th><terminal>" + html.EscapeString(a) + "</terminal></th>")
	}
	bw.WriteString("</tr>\n")
	for _, N := range t.nonterminals {
		bw.WriteString("<tr><th>" + html.EscapeString(N) + "</th>")
		for j, a := range t.terminals {
			td := "&nbsp;"
			if t.termcol[a] != j { // duplicate header terminal
				bw.WriteString("<td>" + td + "</td>")
				continue
			}
			if prod, ok := t.Lookup(N, a); ok {
				td = html.EscapeString(prod)
			}
			bw.WriteString("<td>" + td + "</td>")
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}

// tableDigest is the part of a table which determines its identity.
type tableDigest struct {
	Terminals []string
	Rows      map[string]map[string]string
}

// Fingerprint returns a hash identifying the table's content. Tables built
// from equivalent grids have equal fingerprints.
func (t *Table) Fingerprint() string {
	h, err := structhash.Hash(tableDigest{Terminals: t.terminals, Rows: t.Map()}, 1)
	if err != nil {
		tracer().Errorf("cannot compute table fingerprint: %v", err)
		return ""
	}
	return h
}
