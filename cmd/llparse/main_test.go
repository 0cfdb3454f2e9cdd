package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/parsetree"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assignments = `<table>
<tr><th></th><th><terminal>id</terminal></th><th><terminal>equal</terminal></th><th><terminal>intlit</terminal></th><th><terminal>semi</terminal></th><th><terminal>eof</terminal></th></tr>
<tr><th>START</th><td>START → STMTS eof</td><td></td><td></td><td></td><td>START → STMTS eof</td></tr>
<tr><th>STMTS</th><td>STMTS → STMT STMTS</td><td></td><td></td><td></td><td>STMTS → &amp;epsilon</td></tr>
<tr><th>STMT</th><td>STMT → id equal intlit semi</td><td></td><td></td><td></td><td></td></tr>
</table>`

func setup(t *testing.T) (*Driver, string) {
	dir := t.TempDir()
	tablef := filepath.Join(dir, "table.html")
	require.NoError(t, os.WriteFile(tablef, []byte(assignments), 0644))
	table, err := loadTable(tablef)
	require.NoError(t, err)
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0755))
	return &Driver{table: table, parser: predictive.NewParser(table), outdir: out}, dir
}

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, dir := setup(t)
	good := filepath.Join(dir, "good.tokens")
	bad := filepath.Join(dir, "bad.tokens")
	require.NoError(t, os.WriteFile(good, []byte("Identifier\nEqualsSymbol\nIntLit\nSemiColon\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("Identifier\nIntLit\n"), 0644))
	code := d.Batch([]string{bad, good})
	assert.Equal(t, exitSyntaxError, code, "syntax errors must not stop the batch")
	deriv, err := os.ReadFile(filepath.Join(d.outdir, "good.derivation"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(deriv)), "\n")
	assert.Equal(t, "Starting parse", lines[0])
	assert.Equal(t, "Parsed successfully!", lines[len(lines)-1])
	_, err = os.Stat(filepath.Join(d.outdir, "good.dot"))
	assert.NoError(t, err)
	partial, err := os.ReadFile(filepath.Join(d.outdir, "bad.derivation"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(partial), "Starting parse\n"))
	assert.NotContains(t, string(partial), "Parsed successfully!")
}

func TestBatchAbortsOnUnknownKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, dir := setup(t)
	broken := filepath.Join(dir, "broken.tokens")
	good := filepath.Join(dir, "good.tokens")
	require.NoError(t, os.WriteFile(broken, []byte("Identifier\nFoo\n"), 0644))
	require.NoError(t, os.WriteFile(good, []byte("Identifier\nEqualsSymbol\nIntLit\nSemiColon\n"), 0644))
	assert.Equal(t, exitAbort, d.Batch([]string{broken, good}))
	_, err := os.Stat(filepath.Join(d.outdir, "good.derivation"))
	assert.True(t, os.IsNotExist(err), "processing must stop at the first non-syntax error")
}

func TestBatchSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, dir := setup(t)
	lexer, err := lexmach.New()
	require.NoError(t, err)
	d.lexer = lexer
	prog := filepath.Join(dir, "prog.src")
	require.NoError(t, os.WriteFile(prog, []byte("x = 1; // first\ny = 2;\n"), 0644))
	assert.Equal(t, exitOK, d.Batch([]string{prog}))
	tokens, err := os.ReadFile(filepath.Join(d.outdir, "prog.tokens"))
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(tokens), "\n"))
}

func TestExportTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, dir := setup(t)
	termf := filepath.Join(dir, "terminals.txt")
	jsonf := filepath.Join(dir, "table.json")
	require.NoError(t, exportTable(d.table, termf, jsonf))
	terms, err := os.ReadFile(termf)
	require.NoError(t, err)
	assert.Equal(t, "id\nequal\nintlit\nsemi\neof\n", string(terms))
	f, err := os.Open(jsonf)
	require.NoError(t, err)
	defer f.Close()
	table, err := ll.ReadJSON(f, d.table.Terminals())
	require.NoError(t, err)
	assert.Equal(t, d.table.Fingerprint(), table.Fingerprint())
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, _ := setup(t)
	assert.False(t, d.Eval("Identifier EqualsSymbol IntLit SemiColon"))
	assert.False(t, d.Eval("Identifier Plus"))
	assert.False(t, d.Eval(":tree"))
	assert.True(t, d.tree)
	assert.True(t, d.Eval(":quit"))
}

func TestTraceFileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.cli")
	defer teardown()
	//
	d, dir := setup(t)
	// a failing close is reported
	err := writeFile(filepath.Join(dir, "closed.txt"), func(f *os.File) error {
		return f.Close()
	})
	assert.Error(t, err)
	// a syntax error survives closing the trace file
	tracefile := filepath.Join(d.outdir, "bad.derivation")
	err = d.parseTo(tracefile, []string{"Identifier", "IntLit"}, parsetree.NewBuilder())
	assert.True(t, predictive.IsSyntaxError(err), "expected syntax error, got %v", err)
	partial, rerr := os.ReadFile(tracefile)
	require.NoError(t, rerr)
	assert.True(t, strings.HasPrefix(string(partial), "Starting parse\n"))
	// a trace file which cannot be created is reported
	err = d.parseTo(filepath.Join(dir, "missing", "x.derivation"), []string{"Identifier"}, parsetree.NewBuilder())
	assert.Error(t, err)
	assert.False(t, predictive.IsSyntaxError(err))
}
