package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/derivation"
	"github.com/npillmayer/predict/ll/grid"
	"github.com/npillmayer/predict/ll/parsetree"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// trace keys of the packages of this module
var traceKeys = []string{
	"predict.cli",
	"predict.ll",
	"predict.token",
	"predict.scanner",
	"predict.parser",
	"predict.derivation",
}

// Exit codes.
const (
	exitOK          = 0
	exitSyntaxError = 1 // at least one input had syntax errors
	exitAbort       = 2 // table, token file or internal error
	exitUsage       = 3
)

// Driver holds everything needed to process input files.
type Driver struct {
	table  *ll.Table
	parser *predictive.Parser
	lexer  *lexmach.LMAdapter // nil unless input is source text
	outdir string
	tree   bool
}

// main() loads an LL(1) table and parses every input file given as an
// argument, or starts an interactive loop.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	tablef := flag.String("table", "", "HTML file with the LL(1) table")
	outdir := flag.String("out", "", "Output directory for derivations and parse trees")
	termf := flag.String("terminals", "", "Write the terminal alphabet to this file")
	jsonf := flag.String("json", "", "Write the table in JSON format to this file")
	src := flag.Bool("src", false, "Input files are source text instead of token files")
	tree := flag.Bool("tree", false, "Print parse trees")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if *tablef == "" {
		pterm.Error.Println("no LL(1) table given, use flag -table")
		flag.Usage()
		os.Exit(exitUsage)
	}
	table, err := loadTable(*tablef)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitAbort)
	}
	pterm.Info.Printf("LL(1) table %s with %d non-terminals, fingerprint %s\n",
		filepath.Base(*tablef), table.Size(), table.Fingerprint())
	table.Dump() // only visible in debug mode
	if err := exportTable(table, *termf, *jsonf); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitAbort)
	}
	//
	driver := &Driver{
		table:  table,
		parser: predictive.NewParser(table),
		outdir: *outdir,
		tree:   *tree,
	}
	if *src {
		if driver.lexer, err = lexmach.New(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitAbort)
		}
	}
	if driver.outdir != "" {
		if err := os.MkdirAll(driver.outdir, 0755); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitAbort)
		}
	}
	if *interactive {
		if err := driver.REPL(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitAbort)
		}
		os.Exit(exitOK)
	}
	os.Exit(driver.Batch(flag.Args()))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadTable(filename string) (*ll.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open LL(1) table: %w", err)
	}
	defer f.Close()
	g, err := grid.ReadHTML(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read LL(1) table %s: %w", filename, err)
	}
	return ll.BuildTable(g)
}

func exportTable(table *ll.Table, termf, jsonf string) error {
	if termf != "" {
		if err := writeFile(termf, func(f *os.File) error {
			return ll.WriteTerminals(f, table.Terminals())
		}); err != nil {
			return err
		}
		tracer().Infof("terminals written to %s", termf)
	}
	if jsonf != "" {
		if err := writeFile(jsonf, func(f *os.File) error {
			return table.WriteJSON(f)
		}); err != nil {
			return err
		}
		tracer().Infof("table written to %s", jsonf)
	}
	return nil
}

// writeFile creates a file and calls write on it. The file is closed on every
// path; a failing close is reported unless write already failed.
func writeFile(filename string, write func(*os.File) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// --- Batch mode ------------------------------------------------------------

// Batch processes all input files and returns the exit code. Syntax errors are
// reported and processing continues; all other errors abort.
func (d *Driver) Batch(files []string) int {
	if len(files) == 0 {
		pterm.Warning.Println("no input files")
		return exitOK
	}
	code := exitOK
	for _, filename := range files {
		err := d.process(filename)
		if err == nil {
			pterm.Success.Printf("%s: parsed successfully\n", filename)
			continue
		}
		if predictive.IsSyntaxError(err) {
			pterm.Error.Printf("%s: %v\n", filename, err)
			if d.outdir != "" {
				pterm.Error.Printf("see %s for the partial derivation\n", d.outputFile(filename, ".derivation"))
			}
			code = exitSyntaxError
			continue
		}
		pterm.Error.Printf("%s: %v\n", filename, err)
		if predictive.IsInternal(err) {
			pterm.Error.Println("this is an internal error; please check the LL(1) table")
		}
		return exitAbort
	}
	return code
}

func (d *Driver) process(filename string) error {
	kinds, err := d.readInput(filename)
	if err != nil {
		return err
	}
	tracer().Infof("%s: %d tokens", filename, len(kinds))
	builder := parsetree.NewBuilder()
	if d.outdir == "" {
		_, err = d.parser.ParseKinds(kinds, derivation.Tee(derivation.NewConsole(), builder))
	} else {
		err = d.parseTo(d.outputFile(filename, ".derivation"), kinds, builder)
	}
	if err != nil {
		return err
	}
	return d.outputTree(filename, builder.Tree())
}

// parseTo parses with a derivation trace written to a file. The trace is
// flushed and closed on every path, keeping partial derivations.
func (d *Driver) parseTo(tracefile string, kinds []string, builder *parsetree.Builder) error {
	var lines int
	err := writeFile(tracefile, func(f *os.File) error {
		trace := derivation.NewWriter(f)
		_, err := d.parser.ParseKinds(kinds, derivation.Tee(trace, builder))
		if ferr := trace.Flush(); err == nil {
			err = ferr
		}
		lines = trace.Lines()
		return err
	})
	tracer().Debugf("%d lines written to %s", lines, tracefile)
	return err
}

func (d *Driver) outputTree(filename string, tree *parsetree.Tree) error {
	if d.tree {
		pterm.Println(filename)
		if err := tree.Render(); err != nil {
			return err
		}
	}
	if d.outdir == "" {
		return nil
	}
	return writeFile(d.outputFile(filename, ".dot"), func(f *os.File) error {
		return tree.WriteDOT(f)
	})
}

func (d *Driver) readInput(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if d.lexer == nil {
		return scanner.ReadKinds(f)
	}
	source, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read source file: %w", err)
	}
	tokens, err := d.lexer.Tokenize(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if d.outdir != "" {
		err = writeFile(d.outputFile(filename, ".tokens"), func(f *os.File) error {
			return scanner.WriteKinds(f, tokens)
		})
	}
	return scanner.Kinds(tokens), err
}

func (d *Driver) outputFile(filename, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return filepath.Join(d.outdir, base+ext)
}

// --- Tracing ---------------------------------------------------------------

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
