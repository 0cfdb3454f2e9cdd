package grid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idList = `<html><body>
<table border="1">
<tr><th></th><th><terminal>id</terminal></th><th><terminal>plus</terminal></th><th><terminal>eof</terminal></th></tr>
<tr><th>START</th><td>START → A eof</td><td>&nbsp;</td><td>START → A eof</td></tr>
<tr><th>A</th><td>A → id A</td><td> </td><td>A → &amp;epsilon</td></tr>
</table>
</body></html>`

func TestReadHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	grid, err := ReadHTML(strings.NewReader(idList))
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"", "id", "plus", "eof"}, grid[0])
	assert.Equal(t, []string{"START", "START → A eof", "", "START → A eof"}, grid[1])
	assert.Equal(t, []string{"A", "A → id A", "", "A → &epsilon"}, grid[2])
	table, err := ll.BuildTable(grid)
	require.NoError(t, err)
	prod, ok := table.Lookup("A", "eof")
	assert.True(t, ok)
	assert.Equal(t, "A → &epsilon", prod)
}

func TestReadPlainHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	// unclosed cells and rows, header without terminal tags
	doc := `<table><tr><td><td>id<td>eof
<tr><th>START<td>START → id eof<td>
</table>`
	grid, err := ReadHTML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"", "id", "eof"}, grid[0])
	assert.Equal(t, []string{"START", "START → id eof", ""}, grid[1])
}

func TestNoTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	_, err := ReadHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	assert.True(t, errors.Is(err, ErrNoTable))
	_, err = ReadHTML(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoTable))
}

func TestHTMLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	grid, err := ReadHTML(strings.NewReader(idList))
	require.NoError(t, err)
	table, err := ll.BuildTable(grid)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, table.WriteHTML(&buf))
	grid2, err := ReadHTML(&buf)
	require.NoError(t, err)
	table2, err := ll.BuildTable(grid2)
	require.NoError(t, err)
	assert.Equal(t, table.Map(), table2.Map())
	assert.Equal(t, table.Fingerprint(), table2.Fingerprint())
}
