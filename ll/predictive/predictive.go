/*
Package predictive provides a table-driven LL(1) parser. Clients have to use
package ll to build the parse table; the parser derives a leftmost derivation for
a sequence of terminals, reporting every step to a derivation sink.

Usage

	table, err := ll.BuildTable(grid)
	...
	p := predictive.NewParser(table)
	trace := derivation.NewWriter(os.Stdout)
	derived, err := p.Parse([]string{"id", "plus", "id"}, trace)
	trace.Flush()

Parse appends the end-of-input terminal "eof" to the input if it is missing.
Beginning with START, the parser looks up the production for the current
non-terminal and the lookahead terminal, then walks the production's right-hand
side: terminals are matched against the input, non-terminals are expanded
recursively. For every symbol visited, the complete sentential form is reported
as a derivation.Step.

Errors

A missing table entry for a non-terminal and the lookahead is a *SyntaxError.
This is the ordinary result for an invalid program. All other errors the parser
returns indicate a defective table or input sequence and are flagged by
IsInternal. Never report them as syntax errors.

Configuration

The maximum nesting depth of expansions may be set with configuration key
'parser-max-depth' (default 10000) or option MaxDepth. Setting configuration
flag 'panic-on-internal-error' makes the parser panic on internal errors, to
help with post-mortems of a broken grammar table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/derivation"
	"github.com/npillmayer/predict/ll/token"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.parser'.
func tracer() tracing.Trace {
	return tracing.Select("predict.parser")
}

// DefaultMaxDepth is the nesting limit for expansions, if not configured
// otherwise.
const DefaultMaxDepth = 10000

// Parser is an LL(1) parser. Create and initialize one with NewParser.
// A parser holds no state of a parse run and may be used for
// more than one input.
type Parser struct {
	table           *ll.Table
	maxDepth        int
	panicOnInternal bool
}

// Option configures a parser.
type Option func(*Parser)

// MaxDepth limits the nesting depth of expansions. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// PanicOnInternalError sets or clears option PanicOnInternalError.
func PanicOnInternalError(b bool) Option {
	return func(p *Parser) {
		p.panicOnInternal = b
	}
}

// NewParser creates a parser for a parse table.
func NewParser(table *ll.Table, opts ...Option) *Parser {
	p := &Parser{
		table:           table,
		maxDepth:        DefaultMaxDepth,
		panicOnInternal: gconf.GetBool("panic-on-internal-error"),
	}
	if d := gconf.GetInt("parser-max-depth"); d > 0 {
		p.maxDepth = d
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the parse table of the parser.
func (p *Parser) Table() *ll.Table {
	return p.table
}

// ParseKinds canonicalizes raw token kind names (see package token) and parses
// the resulting terminals. Canonicalization errors are returned before the
// sink receives any event.
func (p *Parser) ParseKinds(raw []string, sink derivation.Sink) ([]string, error) {
	terminals, err := token.Canonicalize(raw, p.table.Terminals())
	if err != nil {
		return nil, err
	}
	return p.Parse(terminals, sink)
}

// Parse derives the sequence of terminals from START. It returns the derived
// terminals, which on success equal the input including the end-of-input
// terminal. sink may be nil.
func (p *Parser) Parse(terminals []string, sink derivation.Sink) ([]string, error) {
	if p.table == nil {
		return nil, &ll.ShapeViolationError{Reason: "parser not initialized with a table"}
	}
	if sink == nil {
		sink = derivation.Discard
	}
	run := &parseRun{
		parser: p,
		input:  arraylist.New(),
		sink:   sink,
	}
	for _, a := range terminals {
		run.input.Add(a)
	}
	if len(terminals) == 0 || terminals[len(terminals)-1] != predict.EOF {
		run.input.Add(predict.EOF)
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("parsing %d tokens", run.input.Size())
	if err := sink.Started(); err != nil {
		return nil, err
	}
	derived, err := run.expand(predict.Start, nil, nil, 0)
	if err != nil {
		return derived, p.failed(err)
	}
	if run.input.Size() > 0 {
		return derived, p.failed(&LeftoverTokensError{
			Consumed:  run.consumed,
			Remaining: run.remaining(),
		})
	}
	tracer().Infof("input accepted after %d steps", run.steps)
	return derived, sink.Succeeded()
}

// failed logs an error and, for internal errors, panics if configured to.
func (p *Parser) failed(err error) error {
	if !IsInternal(err) {
		tracer().Infof("parse failed: %v", err)
		return err
	}
	tracer().Errorf("internal error: %v", err)
	if p.panicOnInternal {
		panic(`LL(1) parser detected an inconsistency.

Configuration flag panic-on-internal-error is set to true. It is aimed at
helping to debug a parse table. If you did not expect this to panic, please
unset panic-on-internal-error to its default (false).

` + err.Error())
	}
	return err
}

// --- Parse runs ------------------------------------------------------------

// parseRun holds the state of a single parse: the unconsumed input and the
// sink. Expansion contexts live on the call stack of expand.
type parseRun struct {
	parser   *Parser
	input    *arraylist.List // unconsumed terminals
	consumed int
	steps    int
	sink     derivation.Sink
}

func (run *parseRun) lookahead() (string, bool) {
	x, ok := run.input.Get(0)
	if !ok {
		return "", false
	}
	return x.(string), true
}

func (run *parseRun) consume() {
	run.input.Remove(0)
	run.consumed++
}

func (run *parseRun) remaining() []string {
	r := make([]string, 0, run.input.Size())
	for _, x := range run.input.Values() {
		r = append(r, x.(string))
	}
	return r
}

// expand derives non-terminal N from the input. head holds the symbols matched
// before N, tail the symbols pending after N. It returns the terminals derived
// from N, including a partial derivation if an error occurs.
func (run *parseRun) expand(N string, head, tail []string, depth int) ([]string, error) {
	table := run.parser.table
	if depth >= run.parser.maxDepth {
		return nil, &DepthExceededError{NonTerminal: N, Depth: depth}
	}
	a, ok := run.lookahead()
	if !ok {
		return nil, &SyntaxError{NonTerminal: N, Position: run.consumed, Expected: run.expected(N)}
	}
	if !table.HasNonTerminal(N) {
		return nil, &ll.ShapeViolationError{NonTerminal: N, Reason: "no table row for non-terminal"}
	}
	text, ok := table.Lookup(N, a)
	if !ok {
		return nil, &SyntaxError{NonTerminal: N, Lookahead: a, Position: run.consumed, Expected: run.expected(N)}
	}
	tracer().Debugf("M[%s,%s] = %s", N, a, text)
	prod, err := ll.ParseProduction(text)
	if err != nil {
		return nil, err
	}
	if prod.LHS != N {
		return nil, &ll.ShapeViolationError{Production: text, NonTerminal: N,
			Reason: "predicted for " + N + " but derives " + prod.LHS}
	}
	selectedAt := run.consumed
	derived := make([]string, 0, len(prod.RHS))
	for i, sym := range prod.RHS {
		rest := prod.RHS[i+1:]
		step := derivation.Step{
			Head:        clone(head),
			Derived:     clone(derived),
			Focus:       sym,
			Rest:        clone(rest),
			Tail:        clone(tail),
			NonTerminal: N,
			Depth:       depth,
		}
		run.steps++
		if err := run.sink.Step(step); err != nil {
			return derived, err
		}
		switch {
		case ll.IsEpsilon(sym):
			// derives nothing
		case ll.IsTerminal(sym):
			if err := run.match(N, text, sym, selectedAt); err != nil {
				return derived, err
			}
			derived = append(derived, sym)
		default:
			sub, err := run.expand(sym, concat(head, derived), concat(rest, tail), depth+1)
			derived = append(derived, sub...)
			if err != nil {
				return derived, err
			}
		}
	}
	return derived, nil
}

// match consumes terminal sym from the input. A mismatch before any token has
// been consumed for the active production means the table predicted the
// production for a lookahead it cannot start with.
func (run *parseRun) match(N, prod, sym string, selectedAt int) error {
	a, ok := run.lookahead()
	if ok && a == sym {
		if !run.parser.table.IsTerminal(sym) {
			return &ll.ShapeViolationError{Production: prod, NonTerminal: N,
				Reason: "terminal " + sym + " is not in the alphabet"}
		}
		run.consume()
		return nil
	}
	if run.consumed == selectedAt {
		return &TableDefectError{NonTerminal: N, Production: prod, Expected: sym, Lookahead: a}
	}
	return &SyntaxError{NonTerminal: N, Lookahead: a, Position: run.consumed, Expected: []string{sym}}
}

// expected lists the terminals N has predictions for, in alphabet order.
func (run *parseRun) expected(N string) []string {
	var exp []string
	for _, a := range run.parser.table.Terminals() {
		if _, ok := run.parser.table.Lookup(N, a); ok {
			exp = append(exp, a)
		}
	}
	return exp
}

// --- Helpers ----------------------------------------------------------

func clone(syms []string) []string {
	return append([]string(nil), syms...)
}

// concat returns a new slice, never aliasing a or b.
func concat(a, b []string) []string {
	c := make([]string, 0, len(a)+len(b))
	c = append(c, a...)
	return append(c, b...)
}
