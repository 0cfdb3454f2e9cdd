/*
Package lexmach provides a tokenizer for the language, built with the lexmachine
scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The DFA is compiled once by New. It recognizes keywords, operators and
punctuation, identifiers, and integer and float literals. White space and
comments (line comments starting with a double slash, block comments delimited
by slash-star and star-slash) are skipped.

	lm, err := lexmach.New()
	if err != nil {
		// do error handling
	}
	tokens, err := lm.Tokenize("x = 2 + 3;")

Tokenize reports the first lexical error, but keeps on scanning after skipping
unrecognized input, so clients receive all the tokens found. For incremental
scanning, a scanner implementing scanner.Tokenizer is instantiated for each
concrete input.

	scan, err := lm.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}
	for tok := scan.NextToken(); tok.Kind != scanner.EOF; tok = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
