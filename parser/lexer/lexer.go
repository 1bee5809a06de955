package lexer

import (
	"github.com/homonoid/hyperlisp/parser/ast"
	"github.com/homonoid/hyperlisp/parser/internal/interntoken"
	"github.com/homonoid/hyperlisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

// tokenPattern matches a token or skipped text at the scanner cursor.
// Alternatives are tried in order and the first one that matches wins.
const tokenPattern = `^(?:` +
	`(?P<skip>;[^\n\x00]*|[ \n\t\r]+)` +
	`|(?P<number>-?(?:[0-9]+\.[0-9]+|[1-9][0-9]*|0))` +
	`|(?P<identifier>[a-zA-Z_][a-zA-Z0-9_]*|[+\-*/])` +
	`|(?P<string>"(?:[^"\n\\\x00]|\\[rbnv"\\])*")` +
	`|(?P<delimiter>[()\[\]])` +
	`)`

// groupTypes maps the named groups of tokenPattern to token types.
// Delimiters are typed by token.Delimiter.
var groupTypes = []struct {
	group string
	typ   token.Type
}{
	{"number", token.NUMBER},
	{"identifier", token.IDENTIFIER},
	{"string", token.STRING},
	{"delimiter", token.INVALID},
}

type Lexer struct {
	src     *ast.Source
	scanner parsec.Scanner
	names   *interntoken.Table
	eof     *token.Token
}

// New returns a Lexer that scans tokens from src.
func New(src *ast.Source) *Lexer {
	return NewInterned(src, nil)
}

// NewInterned returns a Lexer that scans tokens from src and shares the text
// of identifiers through names.  A nil names interns nothing.
func NewInterned(src *ast.Source, names *interntoken.Table) *Lexer {
	return &Lexer{
		src:     src,
		scanner: parsec.NewScanner([]byte(src.Text)),
		names:   names,
	}
}

// NextToken scans and returns the next token.  Comments and whitespace are
// discarded.  Once the end of input is reached every call returns the same
// EOF token.  If no token can be scanned NextToken returns an INVALID token
// positioned at the offending character, and the cursor does not advance.
func (lex *Lexer) NextToken() *token.Token {
	if lex.eof != nil {
		return lex.eof
	}
	for {
		pos := lex.scanner.GetCursor()
		captures, s := lex.scanner.SubmatchAll(tokenPattern)
		lex.scanner = s
		if captures == nil {
			break
		}
		if _, ok := captures["skip"]; ok {
			continue
		}
		for _, g := range groupTypes {
			if text, ok := captures[g.group]; ok {
				return lex.emit(g.typ, text, pos)
			}
		}
		panic("token pattern matched no group")
	}
	pos := lex.scanner.GetCursor()
	if pos == lex.src.End() {
		lex.eof = &token.Token{Type: token.EOF, Pos: pos}
		return lex.eof
	}
	return &token.Token{
		Type: token.INVALID,
		Text: lex.src.Text[pos : pos+1],
		Pos:  pos,
	}
}

// Pos returns the offset of the scanner cursor.
func (lex *Lexer) Pos() int {
	return lex.scanner.GetCursor()
}

func (lex *Lexer) emit(typ token.Type, text []byte, pos int) *token.Token {
	tok := &token.Token{
		Type: typ,
		Pos:  pos,
	}
	switch typ {
	case token.INVALID:
		tok.Type = token.Delimiter(text[0])
		tok.Text = string(text)
	case token.IDENTIFIER:
		tok.Text = lex.names.GetBytes(text)
	case token.STRING:
		tok.Text = string(text[1 : len(text)-1])
	default:
		tok.Text = string(text)
	}
	return tok
}

// Tokenize scans all tokens in src, ending with EOF.  If an invalid token is
// encountered it is the last token returned.
func Tokenize(src *ast.Source) []*token.Token {
	lex := New(src)
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.INVALID {
			return toks
		}
	}
}
