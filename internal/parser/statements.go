package parser

import (
	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/token"
)

// parseStatement dispatches on the current token to the right statement
// production. The var_decl / assignment split follows spec.md 4.2: a
// leading identifier that spells a reserved type name starts a
// declaration; otherwise, if it is followed by '=', it's an assignment;
// otherwise it's a bare expression evaluated for effect.
func (p *Parser) parseStatement() ast.Stmt {
	if p.err != nil {
		return nil
	}
	switch {
	case p.at(token.FUNCTION):
		return p.parseFunctionDef()
	case p.at(token.IF):
		return p.parseIf()
	case p.at(token.WHILE):
		return p.parseWhile()
	case p.at(token.RETURN):
		return p.parseReturn()
	case p.at(token.BREAK):
		return p.parseBreak()
	case p.at(token.CONTINUE):
		return p.parseContinue()
	case isTypeName(p.current):
		return p.parseVarDecl()
	case p.at(token.IDENT) && p.peek().Type == token.ASSIGN:
		return p.parseAssignment()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(token.LBRACE, "expected '{'")
	var stmts []ast.Stmt
	for p.err == nil && !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE, "expected '}'")
	return stmts
}

func (p *Parser) parseVarDecl() ast.Stmt {
	start := p.current.Span.Start
	typ := p.parseType()
	name := p.expect(token.IDENT, "expected variable name")
	p.expect(token.LPAREN, "expected '(' in variable declaration")

	var parenInit ast.Expr
	if !p.at(token.RPAREN) {
		parenInit = p.parseExpression()
	}
	p.expect(token.RPAREN, "expected ')' in variable declaration")

	var assignInit ast.Expr
	if p.at(token.ASSIGN) {
		p.advance()
		assignInit = p.parseExpression()
	}

	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after variable declaration")
	if p.err != nil {
		return nil
	}

	init := parenInit
	if assignInit != nil {
		init = assignInit
	}

	return &ast.VarDecl{
		SpanValue:   token.Span{Start: start, End: end},
		Name:        name.Literal,
		Type:        typ,
		Initializer: init,
	}
}

func (p *Parser) parseAssignment() ast.Stmt {
	name := p.expect(token.IDENT, "expected identifier")
	p.expect(token.ASSIGN, "expected '='")
	value := p.parseExpression()
	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after assignment")
	if p.err != nil {
		return nil
	}
	return &ast.Assignment{
		SpanValue: token.Span{Start: name.Span.Start, End: end},
		Name:      name.Literal,
		Value:     value,
	}
}

func (p *Parser) parseExpressionStmt() ast.Stmt {
	start := p.current.Span.Start
	expr := p.parseExpression()
	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after expression")
	if p.err != nil {
		return nil
	}
	return &ast.ExpressionStmt{SpanValue: token.Span{Start: start, End: end}, Expr: expr}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.expect(token.IF, "expected 'if'").Span.Start
	p.expect(token.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after if condition")
	body := p.parseBlock()

	var elifs []ast.ElifClause
	for p.err == nil && p.at(token.ELIF) {
		p.advance()
		p.expect(token.LPAREN, "expected '(' after 'elif'")
		elifCond := p.parseExpression()
		p.expect(token.RPAREN, "expected ')' after elif condition")
		elifBody := p.parseBlock()
		elifs = append(elifs, ast.ElifClause{Cond: elifCond, Body: elifBody})
	}

	var elseBody []ast.Stmt
	if p.err == nil && p.at(token.ELSE) {
		p.advance()
		elseBody = p.parseBlock()
	}

	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after if statement")
	if p.err != nil {
		return nil
	}
	return &ast.If{
		SpanValue: token.Span{Start: start, End: end},
		Cond:      cond,
		Body:      body,
		Elifs:     elifs,
		Else:      elseBody,
	}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.expect(token.WHILE, "expected 'while'").Span.Start
	p.expect(token.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after while condition")
	body := p.parseBlock()
	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after while statement")
	if p.err != nil {
		return nil
	}
	return &ast.While{SpanValue: token.Span{Start: start, End: end}, Cond: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.expect(token.RETURN, "expected 'return'").Span.Start
	value := p.parseExpression()
	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after return statement")
	if p.err != nil {
		return nil
	}
	return &ast.Return{SpanValue: token.Span{Start: start, End: end}, Value: value}
}

func (p *Parser) parseBreak() ast.Stmt {
	tok := p.expect(token.BREAK, "expected 'break'")
	p.expect(token.SEMI, "expected ';' after 'break'")
	if p.err != nil {
		return nil
	}
	return &ast.Break{SpanValue: tok.Span}
}

func (p *Parser) parseContinue() ast.Stmt {
	tok := p.expect(token.CONTINUE, "expected 'continue'")
	p.expect(token.SEMI, "expected ';' after 'continue'")
	if p.err != nil {
		return nil
	}
	return &ast.Continue{SpanValue: tok.Span}
}

func (p *Parser) parseFunctionDef() ast.Stmt {
	start := p.expect(token.FUNCTION, "expected 'function'").Span.Start
	name := p.expect(token.IDENT, "expected function name")

	var returnType *ast.Type
	if p.at(token.RETURNS) {
		p.advance()
		returnType = p.parseType()
	}

	p.expect(token.LPAREN, "expected '(' in function definition")
	var params []ast.Param
	if !p.at(token.RPAREN) {
		for {
			pt := p.parseType()
			pname := p.expect(token.IDENT, "expected parameter name")
			params = append(params, ast.Param{Name: pname.Literal, Type: pt})
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RPAREN, "expected ')' in function definition")

	body := p.parseBlock()
	end := p.current.Span.End
	p.expect(token.SEMI, "expected ';' after function definition")
	if p.err != nil {
		return nil
	}

	return &ast.FunctionDef{
		SpanValue:  token.Span{Start: start, End: end},
		Name:       name.Literal,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}
