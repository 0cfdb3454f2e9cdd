/*
Package predict is an LL(1) parsing toolbox.

It builds predictive parse tables from a tabular grammar description, parses
token streams of a small instructional programming language with a recursive
table-driven parser, and records the leftmost derivation step by step. Package
structure is as follows:

■ ll: Package ll holds grammar symbols, productions and the LL(1) parse table,
including import and export of tables.

■ ll/token: Package token maps the raw token kinds of the language's tokenizer onto
the terminal alphabet of a grammar.

■ ll/predictive: Package predictive implements the parser engine.

■ ll/derivation: Package derivation defines sinks for derivation steps, most
notably a line-oriented trace writer.

■ ll/parsetree: Package parsetree rebuilds a parse tree from derivation steps and
exports it to Graphviz.

■ ll/grid, ll/scanner, ll/sparse: supporting packages for reading grammar grids,
token files and source code, and for storing table entries.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
