package derivation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Markers framing a derivation trace.
const (
	StartedMarker   = "Starting parse"
	SucceededMarker = "Parsed successfully!"
)

// Writer is a Sink writing a line-oriented derivation trace. Output is buffered;
// clients call Flush after a parse, successful or not, to keep partial traces
// of failing parses. The first write error sticks and is returned by all
// subsequent calls.
type Writer struct {
	w     *bufio.Writer
	err   error
	lines int
}

var _ Sink = (*Writer)(nil)

// NewWriter creates a trace writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (tw *Writer) Started() error {
	return tw.line(StartedMarker)
}

func (tw *Writer) Step(s Step) error {
	return tw.line(s.String())
}

func (tw *Writer) Succeeded() error {
	return tw.line(SucceededMarker)
}

// Lines returns the number of lines written so far.
func (tw *Writer) Lines() int {
	return tw.lines
}

// Flush writes buffered lines to the underlying writer.
func (tw *Writer) Flush() error {
	if tw.err != nil {
		return tw.err
	}
	tw.err = tw.w.Flush()
	return tw.err
}

func (tw *Writer) line(s string) error {
	if tw.err != nil {
		return tw.err
	}
	_, err := tw.w.WriteString(s)
	if err == nil {
		err = tw.w.WriteByte('\n')
	}
	if err != nil {
		tw.err = fmt.Errorf("cannot write derivation: %w", err)
		tracer().Errorf("%v", tw.err)
		return tw.err
	}
	tw.lines++
	return nil
}

// --- Console ---------------------------------------------------------------

// Console is a Sink printing steps to a terminal, with the focus symbol
// highlighted.
type Console struct {
	Focus   pterm.Style // style for the focus symbol
	Context pterm.Style // style for head and tail
}

var _ Sink = (*Console)(nil)

// NewConsole creates a console sink with default colors.
func NewConsole() *Console {
	return &Console{
		Focus:   *pterm.NewStyle(pterm.FgBlack, pterm.BgCyan),
		Context: *pterm.NewStyle(pterm.FgGray),
	}
}

func (c *Console) Started() error {
	pterm.Info.Println(StartedMarker)
	return nil
}

func (c *Console) Step(s Step) error {
	pterm.Println(c.Sprint(s))
	return nil
}

func (c *Console) Succeeded() error {
	pterm.Success.Println(SucceededMarker)
	return nil
}

// Sprint renders a step with colors.
func (c *Console) Sprint(s Step) string {
	line := "START ->"
	for _, sym := range s.Head {
		if sym != "" {
			line += " " + c.Context.Sprint(sym)
		}
	}
	for _, sym := range s.Derived {
		line += " " + sym
	}
	line += " " + c.Focus.Sprint(s.Focus)
	for _, sym := range s.Rest {
		line += " " + sym
	}
	for _, sym := range s.Tail {
		if sym != "" {
			line += " " + c.Context.Sprint(sym)
		}
	}
	return line
}
