/*
Package derivation records the leftmost derivation of a predictive parse.

A predictive parser reports every right-hand-side symbol it visits as a Step.
A step carries the complete sentential form at that moment: the symbols already
matched to the left (head), the terminals derived so far by the active
production, the focus symbol, the remaining symbols of the active production and
the symbols still pending from all enclosing productions (tail).

Steps are delivered to a Sink. The main sink is Writer, producing a
line-oriented derivation trace:

    Starting parse
    START -> *A* eof
    START -> *id* A eof
    START -> id *A* eof
    …
    Parsed successfully!

Sinks are owned by the caller of a parse. The parser never closes or flushes
them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derivation

import (
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.derivation'.
func tracer() tracing.Trace {
	return tracing.Select("predict.derivation")
}

// Step is one sentential form of a leftmost derivation, with one symbol in
// focus.
type Step struct {
	Head        []string // symbols matched before the active production
	Derived     []string // terminals derived so far by the active production
	Focus       string   // symbol currently considered
	Rest        []string // symbols of the active production after Focus
	Tail        []string // pending symbols of enclosing productions
	NonTerminal string   // left-hand side of the active production
	Depth       int      // nesting depth of the active production, START is 0
}

// Symbols returns the sentential form of a step as a flat list of symbols.
func (s Step) Symbols() []string {
	syms := make([]string, 0, len(s.Head)+len(s.Derived)+1+len(s.Rest)+len(s.Tail))
	syms = append(syms, s.Head...)
	syms = append(syms, s.Derived...)
	syms = append(syms, s.Focus)
	syms = append(syms, s.Rest...)
	return append(syms, s.Tail...)
}

// String renders a step as a derivation line, with the focus symbol put
// between asterisks.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(predict.Start)
	b.WriteString(" ->")
	writeSymbols(&b, s.Head)
	writeSymbols(&b, s.Derived)
	b.WriteString(" *")
	b.WriteString(s.Focus)
	b.WriteString("*")
	writeSymbols(&b, s.Rest)
	writeSymbols(&b, s.Tail)
	return b.String()
}

func writeSymbols(b *strings.Builder, syms []string) {
	for _, sym := range syms {
		if sym == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(sym)
	}
}

// Sink receives the events of a parse: Started once before the first table
// lookup, Step for every right-hand-side symbol visited, in pre-order from left
// to right, and Succeeded once after the input has been accepted. A failing
// parse ends without further events. Returning an error from a Sink aborts the
// parse with this error.
type Sink interface {
	Started() error
	Step(Step) error
	Succeeded() error
}

// Discard is a Sink doing nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) Started() error   { return nil }
func (discard) Step(Step) error  { return nil }
func (discard) Succeeded() error { return nil }

// --- Recorder --------------------------------------------------------------

// Recorder is a Sink keeping all steps in memory.
type Recorder struct {
	Steps     []Step
	started   bool
	succeeded bool
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) Started() error {
	r.started = true
	return nil
}

func (r *Recorder) Step(s Step) error {
	r.Steps = append(r.Steps, s)
	return nil
}

func (r *Recorder) Succeeded() error {
	r.succeeded = true
	return nil
}

// HasStarted returns true if a parse has reported its start.
func (r *Recorder) HasStarted() bool {
	return r.started
}

// HasSucceeded returns true if a parse has reported its success.
func (r *Recorder) HasSucceeded() bool {
	return r.succeeded
}

// Lines renders all recorded steps.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		lines[i] = s.String()
	}
	return lines
}

// --- Tee -------------------------------------------------------------------

// Tee creates a Sink duplicating every event to all the given sinks, in order.
// The first error stops the fan-out.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Started() error {
	for _, s := range t {
		if err := s.Started(); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Step(step Step) error {
	for _, s := range t {
		if err := s.Step(step); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Succeeded() error {
	for _, s := range t {
		if err := s.Succeeded(); err != nil {
			return err
		}
	}
	return nil
}
