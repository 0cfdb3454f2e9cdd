package parsetree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// WriteDOT exports a parse tree to the Graphviz Dot format.
func (t *Tree) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	ids := make(map[*Node]int, t.Size())
	t.Walk(func(n *Node, level int) bool {
		id := len(ids)
		ids[n] = id
		bw.WriteString(fmt.Sprintf("n%03d [fillcolor=%s label=\"{%s | %d…%d}\"]\n",
			id, nodecolor(n), forGraphviz(n.Symbol), n.Span.From(), n.Span.To()))
		return true
	})
	t.Walk(func(n *Node, level int) bool {
		for _, ch := range n.Children {
			bw.WriteString(fmt.Sprintf("n%03d -> n%03d\n", ids[n], ids[ch]))
		}
		return true
	})
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(n *Node) string {
	switch {
	case n.IsTerminal():
		return "lightgray"
	case n.IsEpsilon():
		return "whitesmoke"
	}
	return "white"
}

// record labels treat these as field separators
var graphvizEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func forGraphviz(sym string) string {
	return graphvizEscaper.Replace(sym)
}

// LeveledList creates a pterm list for rendering a tree on a terminal:
//
//     pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(tree.LeveledList())).Render()
//
func (t *Tree) LeveledList() pterm.LeveledList {
	ll := pterm.LeveledList{}
	t.Walk(func(n *Node, level int) bool {
		text := n.Symbol
		if n.IsTerminal() {
			text = fmt.Sprintf("%s @%d", n.Symbol, n.Span.From())
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
		return true
	})
	return ll
}

// Render prints a tree to the terminal.
func (t *Tree) Render() error {
	if t == nil || t.Root == nil {
		return nil
	}
	root := pterm.NewTreeFromLeveledList(t.LeveledList())
	return pterm.DefaultTree.WithRoot(root).Render()
}
