/*
Package grid reads LL(1) grammar tables from HTML.

Grammar tables are commonly produced by LL(1) table generators as HTML
documents. Every <tr> element is a table row. The first row is the header: it
lists the terminals, either wrapped in <terminal> elements or as plain cell
text. Every subsequent row starts with a <th> cell holding a non-terminal,
followed by one <td> cell per terminal, holding the production to predict.

	<tr><th></th><th><terminal>id</terminal></th><th><terminal>eof</terminal></th></tr>
	<tr><th>START</th><td>START → A eof</td><td>START → A eof</td></tr>

ReadHTML returns the table as a grid of strings, which is the input format of
ll.BuildTable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}

// ErrNoTable is returned for documents without any table rows.
var ErrNoTable = errors.New("no table rows found")

// the <terminal> element is not part of HTML
const terminalTag = "terminal"

// gridReader collects rows while tokenizing an HTML document. Unclosed cells and
// rows are closed implicitly, as HTML permits.
type gridReader struct {
	rows      [][]string
	row       []string
	terminals []string
	inRow     bool
	inCell    bool
	inTerm    bool
	cell      strings.Builder
	term      strings.Builder
}

// ReadHTML reads an HTML grammar table. The header row of the grid contains an
// empty corner cell, followed by the terminals.
func ReadHTML(r io.Reader) ([][]string, error) {
	z := html.NewTokenizer(r)
	gr := &gridReader{}
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("cannot read HTML table: %w", err)
			}
			gr.endRow()
			if len(gr.rows) == 0 {
				return nil, ErrNoTable
			}
			tracer().Debugf("read HTML table with %d rows", len(gr.rows))
			return gr.rows, nil
		case html.TextToken:
			gr.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			gr.start(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			gr.end(string(name))
		}
	}
}

func (gr *gridReader) start(tag string) {
	switch atom.Lookup([]byte(tag)) {
	case atom.Tr:
		gr.endRow()
		gr.inRow = true
	case atom.Th, atom.Td:
		gr.endCell()
		if !gr.inRow { // cell outside of a row opens a row
			gr.inRow = true
		}
		gr.inCell = true
	case atom.Table:
		gr.endRow()
	default:
		if tag == terminalTag {
			gr.inTerm = true
			gr.term.Reset()
		}
	}
}

func (gr *gridReader) end(tag string) {
	switch atom.Lookup([]byte(tag)) {
	case atom.Tr, atom.Table:
		gr.endRow()
	case atom.Th, atom.Td:
		gr.endCell()
	default:
		if tag == terminalTag && gr.inTerm {
			gr.inTerm = false
			gr.terminals = append(gr.terminals, strings.TrimSpace(gr.term.String()))
		}
	}
}

func (gr *gridReader) text(s string) {
	if gr.inTerm {
		gr.term.WriteString(s)
	}
	if gr.inCell {
		gr.cell.WriteString(s)
	}
}

func (gr *gridReader) endCell() {
	if !gr.inCell {
		return
	}
	gr.inCell = false
	gr.inTerm = false
	gr.row = append(gr.row, strings.TrimSpace(gr.cell.String()))
	gr.cell.Reset()
}

func (gr *gridReader) endRow() {
	gr.endCell()
	if !gr.inRow {
		return
	}
	gr.inRow = false
	row := gr.row
	if len(gr.rows) == 0 && len(gr.terminals) > 0 {
		// header with explicitly tagged terminals
		row = append([]string{""}, gr.terminals...)
	}
	gr.row = nil
	gr.terminals = nil
	if len(row) == 0 {
		return
	}
	gr.rows = append(gr.rows, row)
}
