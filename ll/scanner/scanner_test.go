package scanner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	kinds, err := ReadKinds(strings.NewReader("Identifier\n  EqualsSymbol \r\n\n\tIntLit\nSemiColon"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Identifier", "EqualsSymbol", "IntLit", "SemiColon"}, kinds)
	kinds, err = ReadKinds(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, kinds)
}

// sliceTokenizer replays a fixed list of tokens.
type sliceTokenizer struct {
	tokens []Token
}

func (st *sliceTokenizer) NextToken() Token {
	if len(st.tokens) == 0 {
		return Token{Kind: EOF}
	}
	tok := st.tokens[0]
	st.tokens = st.tokens[1:]
	return tok
}

func (st *sliceTokenizer) SetErrorHandler(func(error)) {}

func TestWriteKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	tz := &sliceTokenizer{tokens: []Token{
		{Kind: token.Identifier, Lexeme: "x", Span: predict.Span{0, 1}},
		{Kind: token.EqualsSymbol, Lexeme: "=", Span: predict.Span{2, 3}},
		{Kind: token.IntLit, Lexeme: "2", Span: predict.Span{4, 5}},
	}}
	tokens := All(tz)
	require.Len(t, tokens, 3)
	var buf bytes.Buffer
	require.NoError(t, WriteKinds(&buf, tokens))
	assert.Equal(t, "Identifier\nEqualsSymbol\nIntLit\n", buf.String())
	kinds, err := ReadKinds(&buf)
	require.NoError(t, err)
	assert.Equal(t, Kinds(tokens), kinds)
	assert.Equal(t, `Identifier["x"](0…1)`, tokens[0].String())
}
