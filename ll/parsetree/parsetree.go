/*
Package parsetree rebuilds concrete parse trees from the derivation of a
predictive parse.

A Builder is a derivation.Sink. Every derivation step names the symbol in focus
and the nesting depth of the production it belongs to, which is all it takes to
attach the symbol to its parent node:

	b := parsetree.NewBuilder()
	_, err := parser.Parse(input, b)
	...
	tree := b.Tree()
	tree.WriteDOT(os.Stdout)

Terminal nodes carry the span of the input position they match; spans of
non-terminal nodes cover the spans of their children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"fmt"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/derivation"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.derivation'.
func tracer() tracing.Trace {
	return tracing.Select("predict.derivation")
}

// Node is a node of a parse tree.
type Node struct {
	Symbol   string
	Span     predict.Span // input positions covered by this node
	Children []*Node
}

// IsTerminal returns true for leaves matching an input terminal.
func (n *Node) IsTerminal() bool {
	return ll.IsTerminal(n.Symbol)
}

// IsEpsilon returns true for leaves of empty productions.
func (n *Node) IsEpsilon() bool {
	return ll.IsEpsilon(n.Symbol)
}

func (n *Node) String() string {
	return fmt.Sprintf("%s%s", n.Symbol, n.Span)
}

// Tree is a parse tree with root START.
type Tree struct {
	Root *Node
	size int
}

// Size returns the number of nodes of the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// --- Builder ---------------------------------------------------------------

// Builder is a derivation.Sink creating a parse tree.
type Builder struct {
	tree     *Tree
	open     []*Node // open[d] is the node of the active production at depth d
	position uint64  // input position of the next terminal
	done     bool
}

var _ derivation.Sink = (*Builder)(nil)

// NewBuilder creates a builder for a single parse.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Started() error {
	root := &Node{Symbol: predict.Start}
	b.tree = &Tree{Root: root, size: 1}
	b.open = []*Node{root}
	b.position = 0
	b.done = false
	return nil
}

func (b *Builder) Step(s derivation.Step) error {
	if b.tree == nil {
		return fmt.Errorf("parse tree: step %q before start of parse", s)
	}
	if s.Depth < 0 || s.Depth >= len(b.open) {
		return fmt.Errorf("parse tree: step at depth %d, but only %d productions active", s.Depth, len(b.open))
	}
	b.open = b.open[:s.Depth+1]
	parent := b.open[s.Depth]
	if parent.Symbol != s.NonTerminal {
		return fmt.Errorf("parse tree: step for %s at depth %d, but active production is %s",
			s.NonTerminal, s.Depth, parent.Symbol)
	}
	node := &Node{Symbol: s.Focus}
	switch {
	case ll.IsTerminal(s.Focus):
		node.Span = predict.Span{b.position, b.position + 1}
		b.position++
	case ll.IsEpsilon(s.Focus):
		node.Span = predict.Span{b.position, b.position}
	default:
		b.open = append(b.open, node)
	}
	parent.Children = append(parent.Children, node)
	b.tree.size++
	tracer().Debugf("parse tree: %s ← %s", parent.Symbol, node)
	return nil
}

func (b *Builder) Succeeded() error {
	b.done = true
	return nil
}

// Tree returns the tree built so far, with spans set for all nodes. For failed
// parses, the tree is partial. Returns nil if no parse has been started.
func (b *Builder) Tree() *Tree {
	if b.tree == nil {
		return nil
	}
	setSpans(b.tree.Root)
	return b.tree
}

// Complete returns true if the parse has succeeded.
func (b *Builder) Complete() bool {
	return b.done
}

func setSpans(n *Node) predict.Span {
	if len(n.Children) == 0 {
		return n.Span
	}
	span := setSpans(n.Children[0])
	for _, ch := range n.Children[1:] {
		span = span.Extend(setSpans(ch))
	}
	n.Span = span
	return span
}

// --- Queries ---------------------------------------------------------------

// Leaves returns the terminals of the tree from left to right. Epsilon leaves
// are skipped.
func (t *Tree) Leaves() []string {
	var leaves []string
	t.Walk(func(n *Node, level int) bool {
		if n.IsTerminal() {
			leaves = append(leaves, n.Symbol)
		}
		return true
	})
	return leaves
}

// Walk traverses the tree top-down and left to right. f may return false to
// skip the children of a node.
func (t *Tree) Walk(f func(n *Node, level int) bool) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, 0, f)
}

func walk(n *Node, level int, f func(*Node, int) bool) {
	if !f(n, level) {
		return
	}
	for _, ch := range n.Children {
		walk(ch, level+1, f)
	}
}
