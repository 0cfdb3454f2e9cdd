/*
Command llparse runs the predictive LL(1) parser on token files or source files.

The grammar is given as an HTML LL(1) table, as produced by common table
generators:

	llparse -table grammar.html -out ./derivations prog1.tokens prog2.tokens

For every input file, llparse writes the leftmost derivation to
<out>/<file>.derivation and the parse tree to <out>/<file>.dot. Without -out,
derivations are printed to the terminal. Flag -src makes llparse tokenize the
input files itself, instead of reading token files.

Syntax errors are reported per input file, and processing continues with the
next file. Errors in the grammar table, in token files, and internal errors of
the parser stop llparse immediately.

With flag -i, llparse starts an interactive loop, reading lines of raw token
kinds (or source text, with -src) and printing their derivation.

Flags

	-table      HTML file with the LL(1) table (required)
	-trace      trace level [Debug|Info|Error]
	-out        output directory for derivations and parse trees
	-terminals  write the terminal alphabet to this file
	-json       write the table as JSON to this file
	-src        input files are source text
	-tree       print parse trees to the terminal
	-i          interactive mode

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.cli'
func tracer() tracing.Trace {
	return tracing.Select("predict.cli")
}
