package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/predict/ll/derivation"
	"github.com/npillmayer/predict/ll/parsetree"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/pterm/pterm"
)

// REPL starts interactive mode. Every line holds whitespace-separated raw token
// kinds, or source text if the driver has a lexer. Errors are printed and never
// stop the loop. Commands start with a colon:
//
//     :tree   toggle printing of parse trees
//     :quit   leave interactive mode
//
func (d *Driver) REPL() error {
	repl, err := readline.New("llparse> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := d.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// Eval parses a single line of input. It returns true if the user wants to quit.
func (d *Driver) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tree":
		d.tree = !d.tree
		pterm.Info.Printf("printing of parse trees is %v\n", d.tree)
		return false
	}
	kinds := strings.Fields(line)
	if d.lexer != nil {
		tokens, err := d.lexer.Tokenize(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		kinds = scanner.Kinds(tokens)
	}
	builder := parsetree.NewBuilder()
	_, err := d.parser.ParseKinds(kinds, derivation.Tee(derivation.NewConsole(), builder))
	if err != nil {
		pterm.Error.Println(err.Error())
		if predictive.IsInternal(err) {
			pterm.Error.Println("this is an internal error; please check the LL(1) table")
		}
		return false
	}
	if d.tree {
		if err := builder.Tree().Render(); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	return false
}
