package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	src := NewSource("x.hl", "(a)")
	assert.Equal(t, "(a)\x00", src.Text)
	assert.Equal(t, 3, src.End())
	loc := src.Locate(1)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 2, loc.Col)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{``, ""},
		{`abc`, "abc"},
		{`a\nb`, "a\nb"},
		{`\r\b\v`, "\r\b\v"},
		{`\"q\"`, `"q"`},
		{`back\\slash`, `back\slash`},
	}
	for _, test := range tests {
		s, err := Unescape(test.in)
		if assert.NoError(t, err, "input: %q", test.in) {
			assert.Equal(t, test.out, s, "input: %q", test.in)
		}
	}
	_, err := Unescape(`bad\t`)
	assert.Error(t, err)
	_, err = Unescape(`bad\`)
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\nb"`, Quote("a\nb"))
	assert.Equal(t, `"\"\\"`, Quote(`"\`))
	s, err := Unescape(Quote("x\v\"y")[1 : len(Quote("x\v\"y"))-1])
	require.NoError(t, err)
	assert.Equal(t, "x\v\"y", s)
}

func TestNodeString(t *testing.T) {
	root := &Node{Type: Root, Children: []*Node{
		{Type: List, Children: []*Node{
			{Type: Identifier, Text: "bind", Pos: 1},
			{Type: Identifier, Text: "x", Pos: 6},
			{Type: Array, Pos: 8, Children: []*Node{
				{Type: Number, Text: "1", Pos: 9},
				{Type: String, Text: "s\n", Pos: 11},
			}},
		}},
	}}
	assert.Equal(t, `(bind x [1 "s\n"])`, root.String())
	assert.Equal(t, "bind", root.Head().Head().Text)
	assert.Len(t, root.Head().Tail(), 2)

	var types []NodeType
	Walk(root, func(n *Node) bool {
		types = append(types, n.Type)
		return n.Type != Array
	})
	assert.Equal(t, []NodeType{Root, List, Identifier, Identifier, Array}, types)
	assert.Contains(t, root.Dump(), "  List @0\n")
}
