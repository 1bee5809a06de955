package rdparser

import (
	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/parser/ast"
	"github.com/homonoid/hyperlisp/parser/internal/interntoken"
	"github.com/homonoid/hyperlisp/parser/lexer"
	"github.com/homonoid/hyperlisp/parser/token"
)

type reader struct {
	names *interntoken.Table
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.  Identifier text
// is shared between the sources read by one Reader.
func NewReader() lisp.Reader {
	return &reader{names: interntoken.NewTable()}
}

// Read implements lisp.Reader.
func (r *reader) Read(src *ast.Source) (*ast.Node, error) {
	p := newParser(lexer.NewInterned(src, r.names), src)
	return p.ParseProgram()
}

// Parser is a recursive descent parser for hyperlisp.  The peek token is the
// single token of lookahead.
//
//	Root  := Listy(EOF)
//	List  := '(' Listy(')')
//	Array := '[' Listy(']')
//	Listy(t) := t | (Atom | List) Listy(t)
//	Atom  := Identifier | Number | String | Array
type Parser struct {
	src  *ast.Source
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from src.
func New(src *ast.Source) *Parser {
	return newParser(lexer.New(src), src)
}

func newParser(lex *lexer.Lexer, src *ast.Source) *Parser {
	p := &Parser{
		src: src,
		lex: lex,
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses the entire source and returns its Root node.
func (p *Parser) ParseProgram() (*ast.Node, error) {
	children, err := p.parseListy(token.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Node{Type: ast.Root, Children: children, Pos: 0}, nil
}

// ParseExpression parses one atom or list.
func (p *Parser) ParseExpression() (*ast.Node, error) {
	switch p.PeekType() {
	case token.NUMBER:
		return p.parseLiteral(ast.Number)
	case token.IDENTIFIER:
		return p.parseLiteral(ast.Identifier)
	case token.STRING:
		return p.ParseLiteralString()
	case token.BRACE_L:
		return p.ParseArray()
	case token.PAREN_L:
		return p.ParseList()
	case token.INVALID:
		return nil, p.lexicalError()
	default:
		return nil, p.syntaxError()
	}
}

func (p *Parser) parseLiteral(typ ast.NodeType) (*ast.Node, error) {
	tok := p.ReadToken()
	return &ast.Node{Type: typ, Text: tok.Text, Pos: tok.Pos}, nil
}

func (p *Parser) ParseLiteralString() (*ast.Node, error) {
	if p.PeekType() != token.STRING {
		return nil, p.syntaxError()
	}
	s, err := ast.Unescape(p.peek.Text)
	if err != nil {
		return nil, p.lexicalError()
	}
	tok := p.ReadToken()
	return &ast.Node{Type: ast.String, Text: s, Pos: tok.Pos}, nil
}

func (p *Parser) ParseList() (*ast.Node, error) {
	return p.parseComposite(ast.List, token.PAREN_L, token.PAREN_R)
}

func (p *Parser) ParseArray() (*ast.Node, error) {
	return p.parseComposite(ast.Array, token.BRACE_L, token.BRACE_R)
}

func (p *Parser) parseComposite(typ ast.NodeType, open, close token.Type) (*ast.Node, error) {
	if !p.expect(open) {
		return nil, p.syntaxError()
	}
	pos := p.Token().Pos
	children, err := p.parseListy(close)
	if err != nil {
		return nil, err
	}
	return &ast.Node{Type: typ, Children: children, Pos: pos}, nil
}

// parseListy parses expressions until it consumes the terminator.
func (p *Parser) parseListy(terminator token.Type) ([]*ast.Node, error) {
	var nodes []*ast.Node
	for !p.expect(terminator) {
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, x)
	}
	return nodes, nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ token.Type) bool {
	if p.peek.Type == typ {
		p.ReadToken()
		return true
	}
	return false
}

func (p *Parser) lexicalError() error {
	return lisp.NewDiagnostic(lisp.LexicalError, "Lexical error", p.src, p.peek.Pos, true)
}

func (p *Parser) syntaxError() error {
	return lisp.NewDiagnostic(lisp.SyntaxError, "Syntax error: invalid syntax", p.src, p.peek.Pos, true)
}
