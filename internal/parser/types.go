package parser

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/token"
)

// parseType parses a type annotation: int | float | boolean | string |
// regex | match | list<type>. An unknown identifier in type position
// yields a Type error at the identifier's span, per spec.md 4.2.
func (p *Parser) parseType() *ast.Type {
	if p.err != nil {
		return nil
	}
	tok := p.current
	if tok.Type != token.IDENT || !token.ReservedTypeNames[tok.Literal] {
		p.err = errs.Newf(errs.Type, tok.Span, "unknown type %q", tok.Literal)
		return nil
	}
	p.advance()

	if tok.Literal != "list" {
		return &ast.Type{SpanValue: tok.Span, Name: tok.Literal}
	}

	start := tok.Span.Start
	p.expect(token.LT, "expected '<' after 'list'")
	elem := p.parseType()
	end := p.current.Span.End
	p.expect(token.GT, "expected '>' to close 'list<...>'")
	if p.err != nil {
		return nil
	}
	return &ast.Type{SpanValue: token.Span{Start: start, End: end}, Name: "list", Elem: elem}
}

// isTypeName reports whether tok begins a type annotation.
func isTypeName(tok token.Token) bool {
	return tok.Type == token.IDENT && token.ReservedTypeNames[tok.Literal]
}
