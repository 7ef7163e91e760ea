package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10.5;
const pi = 3;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
while (x) { x = x - 1; }
"foo"
"foo bar"
"line\nbreak\t\"quoted\"\\"
[1, 2];
{"a": 1};
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {FLOAT, "10.5"}, {SEMICOLON, ";"},
		{CONST, "const"}, {IDENT, "pi"}, {ASSIGN, "="}, {INT, "3"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{WHILE, "while"}, {LPAREN, "("}, {IDENT, "x"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {ASSIGN, "="}, {IDENT, "x"}, {MINUS, "-"}, {INT, "1"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{STRING, "foo"},
		{STRING, "foo bar"},
		{STRING, "line\nbreak\t\"quoted\"\\"},
		{LBRACKET, "["}, {INT, "1"}, {COMMA, ","}, {INT, "2"}, {RBRACKET, "]"}, {SEMICOLON, ";"},
		{LBRACE, "{"}, {STRING, "a"}, {COLON, ":"}, {INT, "1"}, {RBRACE, "}"}, {SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func TestIllegalTrailingDot(t *testing.T) {
	l := New("1.")
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
}

func TestEqNotEqNeverSplit(t *testing.T) {
	l := New("== != = !")
	assert.Equal(t, EQ, l.NextToken().Type)
	assert.Equal(t, NOT_EQ, l.NextToken().Type)
	assert.Equal(t, ASSIGN, l.NextToken().Type)
	assert.Equal(t, BANG, l.NextToken().Type)
}

func TestEOFRepeatable(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		assert.Equal(t, EOF, tok.Type)
	}
}
