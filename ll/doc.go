/*
Package ll implements prerequisites for LL(1) predictive parsing.

Building a Parse Table

LL(1) tables are not computed from a grammar here. They are supplied as a
tabular grid, usually authored with a grammar tool and exported to HTML:
a header row lists the terminal alphabet, every following row starts with a
non-terminal and holds, in the column of a lookahead terminal, the production to
predict.

                 id                 lpar            eof
    START        START → A eof
    A            A → id A                           A → &epsilon

Cells containing at most one character denote "no production". Clients pass the
grid (rows of cell texts, see package grid for reading HTML) to BuildTable:

    table, err := ll.BuildTable(grid)
    if err != nil {
        // malformed grammar source
    }
    prod, ok := table.Lookup("A", "id")   // "A → id A", true

Productions are stored verbatim and parsed on demand:

    p, err := ll.ParseProduction(prod)   // p.LHS = "A", p.RHS = [id A]

Symbol names follow a convention: terminals are spelled in lower-case,
non-terminals in upper-case, START is the start symbol and &epsilon denotes the
empty derivation.

Tables are immutable after construction and may be shared between parsers.
They may be exported to JSON, to HTML (readable by package grid) or inspected
with Dump.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
