package token

import (
	"fmt"
	"strings"
)

type Token struct {
	Type Type
	Text string
	Pos  int // byte offset of the first character in the source text
}

func (tok *Token) String() string {
	if tok.Type == EOF {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Text)
}

type Type uint

// Type constants used for the hyperlisp lexer/parser.
const (
	INVALID Type = iota
	EOF

	// Atomic expressions & literals
	NUMBER
	IDENTIFIER
	STRING

	// Delimiters
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:    "invalid",
		EOF:        "end-of-input",
		NUMBER:     "number",
		IDENTIFIER: "identifier",
		STRING:     "string",
		PAREN_L:    "(",
		PAREN_R:    ")",
		BRACE_L:    "[",
		BRACE_R:    "]",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Delimiter returns the token type for a delimiter character.  Delimiter
// returns INVALID for any other character.
func Delimiter(c byte) Type {
	switch c {
	case '(':
		return PAREN_L
	case ')':
		return PAREN_R
	case '[':
		return BRACE_L
	case ']':
		return BRACE_R
	}
	return INVALID
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

// Locate resolves the byte offset pos within text into a Location.  Lines
// are counted from 1.  The column of a character that follows a newline is
// its distance from that newline.
func Locate(file, text string, pos int) *Location {
	if pos > len(text) {
		pos = len(text)
	}
	if pos < 0 {
		pos = 0
	}
	head := text[:pos]
	loc := &Location{
		File: file,
		Pos:  pos,
		Line: 1 + strings.Count(head, "\n"),
	}
	nl := strings.LastIndexByte(head, '\n')
	if nl < 0 {
		loc.Col = pos + 1
	} else {
		loc.Col = pos - nl
	}
	return loc
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
