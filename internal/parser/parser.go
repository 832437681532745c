// Package parser implements clipscript's recursive-descent parser with
// precedence climbing for expressions, producing the typed AST defined in
// package ast.
package parser

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/lexer"
	"github.com/clipscript/clipscript/internal/token"
)

// Parser consumes tokens from a Lexer one at a time and builds an AST. A
// Parser is single-use: call Parse once.
type Parser struct {
	lex *lexer.Lexer

	current token.Token
	peeked  *token.Token

	err error
}

// New creates a Parser reading from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	return p
}

// Parse consumes the entire token stream and returns the program as an
// ordered list of statements.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.current.Type != token.EOF {
		if p.err != nil {
			return nil, p.err
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// advance pulls the next token from the lexer into p.current, recording a
// lexer error (if any) on the parser so subsequent calls short-circuit.
func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	if p.peeked != nil {
		p.current = *p.peeked
		p.peeked = nil
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		return
	}
	p.current = tok
}

// peek returns the token after p.current without consuming p.current.
func (p *Parser) peek() token.Token {
	if p.peeked != nil {
		return *p.peeked
	}
	if p.err != nil {
		return p.current
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		return p.current
	}
	p.peeked = &tok
	return tok
}

func (p *Parser) at(t token.Type) bool {
	return p.current.Type == t
}

// expect consumes the current token if it matches t, else records a
// Syntax error at the current token's span.
func (p *Parser) expect(t token.Type, message string) token.Token {
	tok := p.current
	if p.err != nil {
		return tok
	}
	if tok.Type != t {
		p.err = errs.New(errs.Syntax, message, tok.Span)
		return tok
	}
	p.advance()
	return tok
}

func (p *Parser) fail(kind errs.Kind, message string) {
	if p.err == nil {
		p.err = errs.New(kind, message, p.current.Span)
	}
}
