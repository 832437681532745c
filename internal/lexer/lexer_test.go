package lexer

import (
	"testing"

	"github.com/clipscript/clipscript/internal/token"
	"github.com/deepnoodle-ai/wonton/assert"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		assert.Nil(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexSimpleProgram(t *testing.T) {
	toks := lexAll(t, `int x (5);`)
	assert.Equal(t, types(toks), []token.Type{token.IDENT, token.IDENT, token.LPAREN, token.INT, token.RPAREN, token.SEMI, token.EOF})
}

func TestLexNumbers(t *testing.T) {
	toks := lexAll(t, `123 1.5 1e10 2E-3 3.`)
	assert.Equal(t, toks[0].Type, token.INT)
	assert.Equal(t, toks[0].Literal, "123")
	assert.Equal(t, toks[1].Type, token.FLOAT)
	assert.Equal(t, toks[1].Literal, "1.5")
	assert.Equal(t, toks[2].Type, token.FLOAT)
	assert.Equal(t, toks[2].Literal, "1e10")
	assert.Equal(t, toks[3].Type, token.FLOAT)
	assert.Equal(t, toks[3].Literal, "2E-3")
	// "3." has no digit after the dot, so the dot is not consumed as part
	// of the number.
	assert.Equal(t, toks[4].Type, token.INT)
	assert.Equal(t, toks[4].Literal, "3")
	assert.Equal(t, toks[5].Type, token.DOT)
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, `function returns if elif else while return break continue true false foo`)
	assert.Equal(t, types(toks), []token.Type{
		token.FUNCTION, token.RETURNS, token.IF, token.ELIF, token.ELSE, token.WHILE,
		token.RETURN, token.BREAK, token.CONTINUE, token.BOOL, token.BOOL, token.IDENT, token.EOF,
	})
}

func TestLexString(t *testing.T) {
	toks := lexAll(t, `"hello\nworld"`)
	assert.Equal(t, toks[0].Type, token.STRING)
	assert.Equal(t, toks[0].Literal, `"hello\nworld"`)
}

func TestLexFString(t *testing.T) {
	toks := lexAll(t, `f"hi %1"`)
	assert.Equal(t, toks[0].Type, token.FSTRING)
	assert.Equal(t, toks[0].Literal, `f"hi %1"`)
}

func TestLexUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	_, err := l.Next()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unterminated string literal")
}

func TestLexDivideVsRegex(t *testing.T) {
	// After an identifier (an expression terminator), '/' is divide.
	toks := lexAll(t, `x / 2`)
	assert.Equal(t, types(toks), []token.Type{token.IDENT, token.SLASH, token.INT, token.EOF})

	// After '=' (not an expression terminator), '/.../ ' is a regex literal.
	toks = lexAll(t, `= /abc/i`)
	assert.Equal(t, types(toks), []token.Type{token.ASSIGN, token.REGEX, token.EOF})
	assert.Equal(t, toks[1].Literal, "/abc/i")
}

func TestLexRegexFallsBackToDivideWithoutClosingSlash(t *testing.T) {
	// '(' is not an expression terminator, so the lexer attempts a regex
	// scan first; finding no closing '/' before the line ends, it falls
	// back to treating '/' as divide.
	toks := lexAll(t, `( / 2)`)
	assert.Equal(t, types(toks), []token.Type{token.LPAREN, token.SLASH, token.INT, token.RPAREN, token.EOF})
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks := lexAll(t, "1 // a comment\n2")
	assert.Equal(t, types(toks), []token.Type{token.INT, token.INT, token.EOF})
	assert.Equal(t, toks[0].Literal, "1")
	assert.Equal(t, toks[1].Literal, "2")
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, `== != >= <= && || ** ++ + - * / = > < ! ? : .`)
	assert.Equal(t, types(toks), []token.Type{
		token.EQ, token.NEQ, token.GE, token.LE, token.AND, token.OR, token.POW, token.CONCAT,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.ASSIGN, token.GT, token.LT,
		token.NOT, token.QUESTION, token.COLON, token.DOT, token.EOF,
	})
}

func TestLexSpanTracksLineAndColumn(t *testing.T) {
	toks := lexAll(t, "int x\n(1);")
	// "int" starts at 1:1
	assert.Equal(t, toks[0].Span.Start, token.Position{Line: 1, Column: 1})
	// "(" starts on the second line
	lparenIdx := 2
	assert.Equal(t, toks[lparenIdx].Type, token.LPAREN)
	assert.Equal(t, toks[lparenIdx].Span.Start, token.Position{Line: 2, Column: 1})
}
