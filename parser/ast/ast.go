// Package ast defines the syntax tree produced by the hyperlisp reader and the
// source text it indexes into.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/homonoid/hyperlisp/parser/token"
)

// Sentinel terminates every Source text.  Reaching it means the input is
// exhausted.
const Sentinel = "\x00"

// Source is a named source text.  Node positions are byte offsets into Text,
// which always ends with Sentinel.
type Source struct {
	File string
	Text string
}

// NewSource returns a Source for the named text, appending the sentinel.
func NewSource(file, text string) *Source {
	return &Source{
		File: file,
		Text: text + Sentinel,
	}
}

// End returns the offset of the sentinel.
func (src *Source) End() int {
	return len(src.Text) - 1
}

// Locate returns the file/line/column location of offset pos.
func (src *Source) Locate(pos int) *token.Location {
	return token.Locate(src.File, src.Text, pos)
}

// NodeType is the type of a Node
type NodeType uint

// Possible NodeType values
const (
	Invalid NodeType = iota
	Root
	List
	Array
	Identifier
	Number
	String
)

var nodeTypeStrings = []string{
	Invalid:    "Invalid",
	Root:       "Root",
	List:       "List",
	Array:      "Array",
	Identifier: "Identifier",
	Number:     "Number",
	String:     "String",
}

func (t NodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return nodeTypeStrings[Invalid]
	}
	return nodeTypeStrings[t]
}

// Node is a syntax tree node.  Root, List and Array nodes hold their children
// in Children.  Identifier, Number and String nodes hold their literal text in
// Text; for strings that is the unescaped content between the quotes.
type Node struct {
	Type     NodeType
	Text     string
	Children []*Node
	Pos      int
}

// IsComposite returns true if n holds child nodes instead of text.
func (n *Node) IsComposite() bool {
	switch n.Type {
	case Root, List, Array:
		return true
	}
	return false
}

// Head returns the first child of n or nil if n has no children.
func (n *Node) Head() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Tail returns all children of n except the first.
func (n *Node) Tail() []*Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[1:]
}

// Walk calls fn for n and each of its descendants in depth-first order.  If
// fn returns false the children of that node are skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// String renders n back into hyperlisp surface syntax.
func (n *Node) String() string {
	switch n.Type {
	case Root:
		return join(n.Children, "", "")
	case List:
		return join(n.Children, "(", ")")
	case Array:
		return join(n.Children, "[", "]")
	case String:
		return Quote(n.Text)
	case Identifier, Number:
		return n.Text
	default:
		return fmt.Sprintf("%#v", n)
	}
}

// Dump writes an indented tree of n to a string, one node per line.
func (n *Node) Dump() string {
	var buf bytes.Buffer
	dump(&buf, n, "")
	return buf.String()
}

func dump(buf *bytes.Buffer, n *Node, indent string) {
	if n.IsComposite() {
		fmt.Fprintf(buf, "%s%s @%d\n", indent, n.Type, n.Pos)
		for _, c := range n.Children {
			dump(buf, c, indent+"  ")
		}
		return
	}
	fmt.Fprintf(buf, "%s%s %s @%d\n", indent, n.Type, n.String(), n.Pos)
}

func join(nodes []*Node, left, right string) string {
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range nodes {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}

var escapes = map[byte]byte{
	'r':  '\r',
	'b':  '\b',
	'n':  '\n',
	'v':  '\v',
	'"':  '"',
	'\\': '\\',
}

var quoter = strings.NewReplacer(
	"\\", `\\`,
	`"`, `\"`,
	"\r", `\r`,
	"\b", `\b`,
	"\n", `\n`,
	"\v", `\v`,
)

// Unescape replaces the escape sequences \r \b \n \v \" and \\ in s.  An
// unknown escape is returned as an error.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash in string literal")
		}
		e, ok := escapes[s[i]]
		if !ok {
			return "", fmt.Errorf("invalid escape sequence \\%c", s[i])
		}
		buf.WriteByte(e)
	}
	return buf.String(), nil
}

// Quote returns s as a double-quoted hyperlisp string literal.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
