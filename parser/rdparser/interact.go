package rdparser

import (
	"github.com/homonoid/hyperlisp/parser/ast"
	"github.com/homonoid/hyperlisp/parser/lexer"
	"github.com/homonoid/hyperlisp/parser/token"
)

// Prompts used by an interactive reader.
const (
	Prompt         = ">> "
	ContinuePrompt = ".. "
)

// Incomplete returns true if text ends inside an unclosed list or array, in
// which case an interactive reader should read another line before parsing.
// Text containing an invalid token is never incomplete, so that parsing it
// reports the error.
func Incomplete(text string) bool {
	depth, ok := scanDepth(text)
	return ok && depth > 0
}

// scanDepth returns the number of lists and arrays left open at the end of
// text.  Scanning stops at the first invalid token, and ok is false.
func scanDepth(text string) (depth int, ok bool) {
	for _, tok := range lexer.Tokenize(ast.NewSource("", text)) {
		switch tok.Type {
		case token.PAREN_L, token.BRACE_L:
			depth++
		case token.PAREN_R, token.BRACE_R:
			depth--
		case token.INVALID:
			return depth, false
		}
	}
	return depth, true
}
