package parsetree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/derivation"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprTable(t *testing.T) *ll.Table {
	table, err := ll.BuildTable([][]string{
		{"", "id", "plus", "lpar", "rpar", "eof"},
		{"START", "START → E eof", "", "START → E eof", "", ""},
		{"E", "E → T ER", "", "E → T ER", "", ""},
		{"ER", "", "ER → plus T ER", "", "ER → ε", "ER → ε"},
		{"T", "T → id", "", "T → lpar E rpar", "", ""},
	})
	require.NoError(t, err)
	return table
}

func parse(t *testing.T, input ...string) (*Builder, error) {
	b := NewBuilder()
	_, err := predictive.NewParser(exprTable(t)).Parse(input, b)
	return b, err
}

func TestBuildTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	b, err := parse(t, "id", "plus", "id")
	require.NoError(t, err)
	assert.True(t, b.Complete())
	tree := b.Tree()
	require.NotNil(t, tree)
	assert.Equal(t, predict.Start, tree.Root.Symbol)
	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "E", tree.Root.Children[0].Symbol)
	assert.Equal(t, "eof", tree.Root.Children[1].Symbol)
	assert.Equal(t, []string{"id", "plus", "id", "eof"}, tree.Leaves())
	assert.Equal(t, predict.Span{0, 4}, tree.Root.Span)
	assert.Equal(t, predict.Span{0, 3}, tree.Root.Children[0].Span)
	// START E T id ER plus T id ER ε eof
	assert.Equal(t, 11, tree.Size())
}

func TestPartialTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	b, err := parse(t, "id", "plus", "plus")
	require.Error(t, err)
	assert.False(t, b.Complete())
	assert.Equal(t, []string{"id", "plus"}, b.Tree().Leaves())
}

func TestBuilderRejectsForeignSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	b := NewBuilder()
	assert.Nil(t, b.Tree())
	assert.Error(t, b.Step(derivation.Step{Focus: "E", NonTerminal: "START"}))
	require.NoError(t, b.Started())
	assert.Error(t, b.Step(derivation.Step{Focus: "id", NonTerminal: "T", Depth: 2}))
	assert.Error(t, b.Step(derivation.Step{Focus: "id", NonTerminal: "T", Depth: 0}))
	assert.NoError(t, b.Step(derivation.Step{Focus: "E", NonTerminal: "START", Depth: 0}))
	assert.NoError(t, b.Step(derivation.Step{Focus: "T", NonTerminal: "E", Depth: 1}))
}

func TestWriteDOT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	b, err := parse(t, "lpar", "id", "rpar")
	require.NoError(t, err)
	tree := b.Tree()
	var buf bytes.Buffer
	require.NoError(t, tree.WriteDOT(&buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph {"))
	assert.Equal(t, tree.Size()-1, strings.Count(dot, " -> "), "one edge per parent/child pair")
	assert.Contains(t, dot, `label="{lpar | 0…1}"`)
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.derivation")
	defer teardown()
	//
	b, err := parse(t, "id")
	require.NoError(t, err)
	list := b.Tree().LeveledList()
	require.Len(t, list, b.Tree().Size())
	assert.Equal(t, 0, list[0].Level)
	assert.Equal(t, "START", list[0].Text)
	assert.Equal(t, "id @0", list[3].Text) // START E T id
	assert.Equal(t, 3, list[3].Level)
}
