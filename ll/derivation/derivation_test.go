package derivation

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestStepString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	s := Step{
		Head:    []string{"id"},
		Derived: []string{"plus"},
		Focus:   "T",
		Rest:    []string{"ER"},
		Tail:    []string{"", "eof"},
	}
	assert.Equal(t, "START -> id plus *T* ER eof", s.String())
	assert.Equal(t, []string{"id", "plus", "T", "ER", "", "eof"}, s.Symbols())
	s = Step{Focus: "A", Tail: []string{"eof"}}
	assert.Equal(t, "START -> *A* eof", s.String())
}

func TestWriter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.NoError(t, w.Started())
	assert.NoError(t, w.Step(Step{Focus: "eof"}))
	assert.NoError(t, w.Succeeded())
	assert.Equal(t, "", buf.String(), "output should be buffered until Flush")
	assert.NoError(t, w.Flush())
	assert.Equal(t, "Starting parse\nSTART -> *eof*\nParsed successfully!\n", buf.String())
	assert.Equal(t, 3, w.Lines())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterStickyError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	w := NewWriter(failingWriter{})
	assert.NoError(t, w.Started()) // buffered
	err := w.Flush()
	assert.Error(t, err)
	assert.Error(t, w.Step(Step{Focus: "id"}))
	assert.Equal(t, err, w.Flush())
}

func TestRecorderAndTee(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	r1, r2 := &Recorder{}, &Recorder{}
	sink := Tee(r1, Discard, r2)
	assert.NoError(t, sink.Started())
	assert.NoError(t, sink.Step(Step{Focus: "A", Tail: []string{"eof"}}))
	assert.True(t, r1.HasStarted())
	assert.False(t, r2.HasSucceeded())
	assert.NoError(t, sink.Succeeded())
	assert.True(t, r2.HasSucceeded())
	assert.Equal(t, []string{"START -> *A* eof"}, r2.Lines())
	assert.Len(t, r1.Steps, 1)
}

type refusingSink struct {
	Recorder
}

func (refusingSink) Step(Step) error {
	return errors.New("refused")
}

func TestTeeStopsAtFirstError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	r := &Recorder{}
	sink := Tee(&refusingSink{}, r)
	assert.Error(t, sink.Step(Step{Focus: "id"}))
	assert.Empty(t, r.Steps)
}

func TestConsoleSprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	c := NewConsole()
	line := c.Sprint(Step{Head: []string{"id"}, Focus: "A", Tail: []string{"eof"}})
	assert.Contains(t, line, "START ->")
	assert.Contains(t, line, "A")
}
