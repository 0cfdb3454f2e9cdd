/*
Package token maps the raw token kinds of the language's tokenizer onto the
terminal alphabet of a grammar.

Tokenizers name token kinds after their appearance (OpenParenthesis,
IntegerKeyword, …), whereas grammar tables use short terminal names (lpar,
integer, …). Kind is a closed enumeration of the raw kinds; every kind carries
its raw name and its terminal in a single table. The package refuses to
initialize if a kind lacks an entry, so adding a kind without mapping it shows
up at program start.

    terminals, err := token.Canonicalize([]string{"Identifier", "Plus", "IntLit"}, alphabet)
    // terminals = [id plus intlit]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.token'.
func tracer() tracing.Trace {
	return tracing.Select("predict.token")
}

// Kind is a raw token kind, as produced by the tokenizer.
type Kind int

// Raw token kinds of the language.
const (
	Illegal Kind = iota
	Function
	Identifier
	OpenParenthesis
	CloseParenthesis
	Colon
	IntegerKeyword
	OpenSquareBracket
	CloseSquareBracket
	Comma
	LocalVar
	SemiColon
	Arrow
	Void
	OpenCurly
	CloseCurly
	EqualsSymbol
	IntLit
	While
	LessThan
	GreaterThan
	Minus
	If
	Plus
	Then
	Else
	Write
	Read
	Class
	Public
	Private
	FloatKeyword
	IsA
	Attribute
	Constructor
	Sr
	Return
	Asterix
	Period
	FloatLit
	LessThanOrEq
	GreaterThanOrEq
	EqualEqual
	NotEqual
	Slash
	Or
	And
	Not
	lastKind // sentinel, keep last
)

// FirstKind and LastKind delimit the valid kinds.
const (
	FirstKind = Function
	LastKind  = lastKind - 1
)

type entry struct {
	name     string // raw kind name, as written to token files
	terminal string // terminal of the grammar
}

var kinds = map[Kind]entry{
	Function:           {"Function", "function"},
	Identifier:         {"Identifier", "id"},
	OpenParenthesis:    {"OpenParenthesis", "lpar"},
	CloseParenthesis:   {"CloseParenthesis", "rpar"},
	Colon:              {"Colon", "colon"},
	IntegerKeyword:     {"IntegerKeyword", "integer"},
	OpenSquareBracket:  {"OpenSquareBracket", "lsqbr"},
	CloseSquareBracket: {"CloseSquareBracket", "rsqbr"},
	Comma:              {"Comma", "comma"},
	LocalVar:           {"LocalVar", "localvar"},
	SemiColon:          {"SemiColon", "semi"},
	Arrow:              {"Arrow", "arrow"},
	Void:               {"Void", "void"},
	OpenCurly:          {"OpenCurly", "lcurbr"},
	CloseCurly:         {"CloseCurly", "rcurbr"},
	EqualsSymbol:       {"EqualsSymbol", "equal"},
	IntLit:             {"IntLit", "intlit"},
	While:              {"While", "while"},
	LessThan:           {"LessThan", "lt"},
	GreaterThan:        {"GreaterThan", "gt"},
	Minus:              {"Minus", "minus"},
	If:                 {"If", "if"},
	Plus:               {"Plus", "plus"},
	Then:               {"Then", "then"},
	Else:               {"Else", "else"},
	Write:              {"Write", "write"},
	Read:               {"Read", "read"},
	Class:              {"Class", "class"},
	Public:             {"Public", "public"},
	Private:            {"Private", "private"},
	FloatKeyword:       {"FloatKeyword", "float"},
	IsA:                {"IsA", "isa"},
	Attribute:          {"Attribute", "attribute"},
	Constructor:        {"Constructor", "constructor"},
	Sr:                 {"Sr", "sr"},
	Return:             {"Return", "return"},
	Asterix:            {"Asterix", "mult"},
	Period:             {"Period", "dot"},
	FloatLit:           {"FloatLit", "floatlit"},
	LessThanOrEq:       {"LessThanOrEq", "leq"},
	GreaterThanOrEq:    {"GreaterThanOrEq", "geq"},
	EqualEqual:         {"EqualEqual", "eq"},
	NotEqual:           {"NotEqual", "neq"},
	Slash:              {"Slash", "div"},
	Or:                 {"Or", "or"},
	And:                {"And", "and"},
	Not:                {"Not", "not"},
}

var byName map[string]Kind

func init() {
	byName = make(map[string]Kind, len(kinds))
	for k := FirstKind; k <= LastKind; k++ {
		e, ok := kinds[k]
		if !ok || e.name == "" || e.terminal == "" {
			panic(fmt.Sprintf("token kind %d has no mapping to a terminal", int(k)))
		}
		if _, dup := byName[e.name]; dup {
			panic(fmt.Sprintf("token kind name %q used twice", e.name))
		}
		byName[e.name] = k
	}
	if len(kinds) != len(byName) {
		panic("token kind table contains entries outside of the valid kinds")
	}
}

// Lookup finds a kind by its raw name.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Kinds returns all valid kinds, in enumeration order.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for k := FirstKind; k <= LastKind; k++ {
		all = append(all, k)
	}
	return all
}

// IsValid returns true for members of the enumeration.
func (k Kind) IsValid() bool {
	return k >= FirstKind && k <= LastKind
}

// Terminal returns the grammar terminal for k, or "" for invalid kinds.
func (k Kind) Terminal() string {
	return kinds[k].terminal
}

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}
