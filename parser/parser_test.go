package parser

import (
	"fmt"
	"testing"

	"github.com/monkeylang/monk/ast"
	"github.com/monkeylang/monk/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	msgs := ""
	for _, e := range errs {
		msgs += fmt.Sprintf("parser error: %s\n", e)
	}
	t.Fatalf("parser produced %d errors:\n%s", len(errs), msgs)
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input       string
		expectedIdt string
		mutable     bool
	}{
		{"let x = 5;", "x", true},
		{"const y = 10;", "y", false},
		{"let foobar = y;", "foobar", true},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, tt.expectedIdt, stmt.Name.Value)
		assert.Equal(t, tt.mutable, stmt.Mutable)
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, "return 5;")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Equal(t, "return", stmt.TokenLiteral())
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while (x < 5) { x = x + 1; }")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	require.NotNil(t, stmt.Condition)
	require.Len(t, stmt.Body.Statements, 1)
}

func TestAssignExpression(t *testing.T) {
	program := parseProgram(t, "x = 5;")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	assign, ok := stmt.Expression.(*ast.AssignExpression)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Value)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a % b", "(a % b)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"fn(x) { x; }(y)", "fn(x) {\nx\n}(y)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String())
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.NotNil(t, expr.Consequence)
	require.NotNil(t, expr.Alternative)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)

	ident, ok := call.Function.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestImmediatelyInvokedFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "fn(x) { return x; }(5);")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)

	_, ok = call.Function.(*ast.FunctionLiteral)
	require.True(t, ok, "call target should be a general expression, not just an identifier")
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.IndexExpression)
	require.True(t, ok)
	require.NotNil(t, idx.Index)
}

func TestHashLiteralParsing(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)
}

func TestEmptyHashLiteral(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	assert.Len(t, hash.Pairs, 0)
}

func TestParserErrorAccumulation(t *testing.T) {
	l := lexer.New("let = 5; let y 10;")
	p := New(l)
	p.ParseProgram()
	assert.Greater(t, len(p.Errors()), 1, "parser should accumulate more than one error")
}
