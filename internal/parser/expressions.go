package parser

import (
	"strconv"
	"strings"

	"github.com/clipscript/clipscript/internal/ast"
	"github.com/clipscript/clipscript/internal/errs"
	"github.com/clipscript/clipscript/internal/object"
	"github.com/clipscript/clipscript/internal/token"
)

// parseExpression is the entry point for expression parsing, implementing
// the nine precedence levels of spec.md 4.2 from lowest to highest:
// ternary, ||, &&, equality/relational, additive, multiplicative, **,
// unary, primary/postfix.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseTernary()
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseOr()
	if p.err != nil || !p.at(token.QUESTION) {
		return cond
	}
	p.advance()
	then := p.parseTernary()
	p.expect(token.COLON, "expected ':' in ternary expression")
	els := p.parseTernary()
	if p.err != nil {
		return cond
	}
	return &ast.Ternary{
		SpanValue: token.Span{Start: cond.Span().Start, End: els.Span().End},
		Cond:      cond,
		Then:      then,
		Else:      els,
	}
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.err == nil && p.at(token.OR) {
		p.advance()
		right := p.parseAnd()
		left = &ast.BinaryOp{
			SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
			Left:      left, Right: right, Op: ast.Or,
		}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.err == nil && p.at(token.AND) {
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryOp{
			SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
			Left:      left, Right: right, Op: ast.And,
		}
	}
	return left
}

var equalityOps = map[token.Type]ast.BinaryOperator{
	token.EQ:  ast.Eq,
	token.NEQ: ast.Ne,
	token.GT:  ast.Gt,
	token.LT:  ast.Lt,
	token.GE:  ast.Ge,
	token.LE:  ast.Le,
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseAdditive()
	for p.err == nil {
		op, ok := equalityOps[p.current.Type]
		if !ok {
			break
		}
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryOp{
			SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
			Left:      left, Right: right, Op: op,
		}
	}
	return left
}

var additiveOps = map[token.Type]ast.BinaryOperator{
	token.PLUS:   ast.Add,
	token.MINUS:  ast.Sub,
	token.CONCAT: ast.Concat,
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.err == nil {
		op, ok := additiveOps[p.current.Type]
		if !ok {
			break
		}
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{
			SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
			Left:      left, Right: right, Op: op,
		}
	}
	return left
}

var multiplicativeOps = map[token.Type]ast.BinaryOperator{
	token.STAR:  ast.Mul,
	token.SLASH: ast.Div,
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parsePow()
	for p.err == nil {
		op, ok := multiplicativeOps[p.current.Type]
		if !ok {
			break
		}
		p.advance()
		right := p.parsePow()
		left = &ast.BinaryOp{
			SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
			Left:      left, Right: right, Op: op,
		}
	}
	return left
}

// parsePow is right-associative: 2 ** 3 ** 2 == 2 ** (3 ** 2).
func (p *Parser) parsePow() ast.Expr {
	left := p.parseUnary()
	if p.err != nil || !p.at(token.POW) {
		return left
	}
	p.advance()
	right := p.parsePow()
	return &ast.BinaryOp{
		SpanValue: token.Span{Start: left.Span().Start, End: right.Span().End},
		Left:      left, Right: right, Op: ast.Pow,
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.err != nil {
		return nil
	}
	switch p.current.Type {
	case token.NOT:
		tok := p.current
		p.advance()
		child := p.parseUnary()
		return &ast.UnaryOp{SpanValue: token.Span{Start: tok.Span.Start, End: child.Span().End}, Op: ast.Not, Child: child}
	case token.MINUS:
		tok := p.current
		p.advance()
		child := p.parseUnary()
		return &ast.UnaryOp{SpanValue: token.Span{Start: tok.Span.Start, End: child.Span().End}, Op: ast.Neg, Child: child}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles `.member` and `.method(args)` chains on a primary
// expression. A bare call's own argument list is parsed in parsePrimary.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for p.err == nil && p.at(token.DOT) {
		p.advance()
		name := p.expect(token.IDENT, "expected member or method name after '.'")
		if p.at(token.LPAREN) {
			p.advance()
			args := p.parseArguments()
			end := p.current.Span.End
			p.expect(token.RPAREN, "expected ')' after method arguments")
			expr = &ast.MethodCall{
				SpanValue: token.Span{Start: expr.Span().Start, End: end},
				Object:    expr, Method: name.Literal, Arguments: args,
			}
		} else {
			expr = &ast.MemberAccess{
				SpanValue: token.Span{Start: expr.Span().Start, End: name.Span.End},
				Object:    expr, Member: name.Literal,
			}
		}
	}
	return expr
}

func (p *Parser) parseArguments() []ast.Expr {
	var args []ast.Expr
	if p.at(token.RPAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.err == nil && p.at(token.COMMA) {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	if p.err != nil {
		return nil
	}
	tok := p.current

	switch tok.Type {
	case token.INT:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.err = errs.Newf(errs.Syntax, tok.Span, "invalid integer literal %q", tok.Literal)
			return nil
		}
		return &ast.Literal{SpanValue: tok.Span, Value: object.Int(n)}

	case token.FLOAT:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.err = errs.Newf(errs.Syntax, tok.Span, "invalid float literal %q", tok.Literal)
			return nil
		}
		return &ast.Literal{SpanValue: tok.Span, Value: object.Float(f)}

	case token.BOOL:
		p.advance()
		return &ast.Literal{SpanValue: tok.Span, Value: object.Bool(tok.Literal == "true")}

	case token.STRING:
		p.advance()
		return &ast.Literal{SpanValue: tok.Span, Value: object.String(unescapeStringLiteral(tok.Literal, false))}

	case token.FSTRING:
		p.advance()
		return &ast.Literal{SpanValue: tok.Span, Value: object.String(unescapeStringLiteral(tok.Literal, true))}

	case token.REGEX:
		p.advance()
		pattern, flags := splitRegexLiteral(tok.Literal)
		return &ast.Literal{SpanValue: tok.Span, Value: object.Regex(pattern, flags)}

	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN, "expected ')'")
		return inner

	case token.LBRACE:
		return p.parseListLiteral()

	case token.IDENT:
		if token.ReservedTypeNames[tok.Literal] {
			return p.parseTypeCast()
		}
		p.advance()
		if p.at(token.LPAREN) {
			p.advance()
			args := p.parseArguments()
			end := p.current.Span.End
			p.expect(token.RPAREN, "expected ')' after call arguments")
			return &ast.FunctionCall{SpanValue: token.Span{Start: tok.Span.Start, End: end}, Name: tok.Literal, Arguments: args}
		}
		return &ast.Variable{SpanValue: tok.Span, Name: tok.Literal}

	default:
		p.err = errs.New(errs.Syntax, "expected expression", tok.Span)
		return nil
	}
}

// parseTypeCast parses `type(expr)`, e.g. `int(x)` or `list<match>(y)`.
func (p *Parser) parseTypeCast() ast.Expr {
	start := p.current.Span.Start
	typ := p.parseType()
	p.expect(token.LPAREN, "expected '(' after type in cast expression")
	value := p.parseExpression()
	end := p.current.Span.End
	p.expect(token.RPAREN, "expected ')' after cast expression")
	if p.err != nil {
		return nil
	}
	return &ast.TypeCast{SpanValue: token.Span{Start: start, End: end}, Target: typ, Value: value}
}

// parseListLiteral parses `{e1, e2, ...}`.
func (p *Parser) parseListLiteral() ast.Expr {
	start := p.expect(token.LBRACE, "expected '{'").Span.Start
	var elems []ast.Expr
	if !p.at(token.RBRACE) {
		elems = append(elems, p.parseExpression())
		for p.err == nil && p.at(token.COMMA) {
			p.advance()
			elems = append(elems, p.parseExpression())
		}
	}
	end := p.current.Span.End
	p.expect(token.RBRACE, "expected '}' to close list literal")
	if p.err != nil {
		return nil
	}
	return &ast.ListLiteral{SpanValue: token.Span{Start: start, End: end}, Elements: elems}
}

// unescapeStringLiteral strips the lexer's raw `f"..."`/`"..."` wrapping
// (leading 'f' marker, surrounding quote) and resolves backslash escapes.
// An f-string literal's `%N` placeholders are left verbatim here; they are
// only resolved when the string is passed as the template argument to the
// separate fstring(...) builtin (spec.md 6), same as any other substring.
func unescapeStringLiteral(lit string, fstring bool) string {
	if fstring && len(lit) > 0 && lit[0] == 'f' {
		lit = lit[1:]
	}
	if len(lit) >= 2 {
		lit = lit[1 : len(lit)-1]
	}

	var b strings.Builder
	runes := []rune(lit)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' || i+1 >= len(runes) {
			b.WriteRune(c)
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		case '\'':
			b.WriteRune('\'')
		case '0':
			b.WriteRune(0)
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// splitRegexLiteral separates `/pattern/flags` lexer literal text into its
// pattern and flags parts. The lexer stores the full `/.../flags` form in
// Token.Literal.
func splitRegexLiteral(lit string) (pattern, flags string) {
	if len(lit) < 2 || lit[0] != '/' {
		return lit, ""
	}
	for i := len(lit) - 1; i > 0; i-- {
		if lit[i] == '/' {
			return lit[1:i], lit[i+1:]
		}
	}
	return lit[1:], ""
}
