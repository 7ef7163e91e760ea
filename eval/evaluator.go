/*
Package eval implements the tree-walking evaluator: a single Eval
operation dispatched on the AST variant, per §4.3.
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/monkeylang/monk/ast"
	"github.com/monkeylang/monk/function"
	"github.com/monkeylang/monk/objects"
	"github.com/monkeylang/monk/scope"
	"github.com/monkeylang/monk/std"
)

var (
	NULL  = objects.NULL
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
)

// Evaluator carries the I/O collaborators used by the gets/puts
// builtins. A fresh Evaluator may be reused across many Eval calls
// against the same or different environments, matching the REPL's
// "one evaluator, persistent env" usage and the file runner's
// "one evaluator, fresh env" usage.
type Evaluator struct {
	Writer   io.Writer
	Reader   *bufio.Reader
	Builtins map[string]*objects.Builtin
}

// New creates an Evaluator with the standard library's builtin table
// and os.Stdin/os.Stdout as the default I/O collaborators.
func New() *Evaluator {
	return &Evaluator{
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		Builtins: std.Builtins,
	}
}

func (e *Evaluator) Output() io.Writer      { return e.Writer }
func (e *Evaluator) Input() *bufio.Reader   { return e.Reader }
func (e *Evaluator) SetWriter(w io.Writer)  { e.Writer = w }
func (e *Evaluator) SetReader(r io.Reader)  { e.Reader = bufio.NewReader(r) }

// Eval walks node, producing a runtime value. Errors and ReturnValue/
// Exit wrappers short-circuit per the rules in §4.3/§7.
func (e *Evaluator) Eval(node ast.Node, env *scope.Environment) objects.Object {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if isError(val) || isPropagating(val) {
			return val
		}
		env.Set(node.Name.Value, val, node.Mutable)
		return val

	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)

	case *ast.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if isError(val) || isPropagating(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)

	case *ast.IntegerLiteral:
		return &objects.Integer{Value: node.Value}

	case *ast.FloatLiteral:
		return &objects.Float{Value: node.Value}

	case *ast.StringLiteral:
		return &objects.String{Value: node.Value}

	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) || isPropagating(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) || isPropagating(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) || isPropagating(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := e.Eval(node.Function, env)
		if isError(fn) || isPropagating(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments, env)
		if len(args) == 1 && (isError(args[0]) || isPropagating(args[0])) {
			return args[0]
		}
		return e.CallFunction(fn, args...)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && (isError(elements[0]) || isPropagating(elements[0])) {
			return elements[0]
		}
		return &objects.Array{Elements: elements}

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)

	case *ast.IndexExpression:
		left := e.Eval(node.Left, env)
		if isError(left) || isPropagating(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isError(index) || isPropagating(index) {
			return index
		}
		return evalIndexExpression(left, index)
	}

	return NULL
}

func (e *Evaluator) evalProgram(program *ast.Program, env *scope.Environment) objects.Object {
	var result objects.Object = NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		case *objects.Exit:
			return result
		}
	}
	return result
}

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *scope.Environment) objects.Object {
	var result objects.Object = NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == objects.RETURN_VALUE_OBJ || rt == objects.ERROR_OBJ || rt == objects.EXIT_OBJ {
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalWhileStatement(ws *ast.WhileStatement, env *scope.Environment) objects.Object {
	for {
		cond := e.Eval(ws.Condition, env)
		if isError(cond) || isPropagating(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return NULL
		}
		result := e.Eval(ws.Body, env)
		if result != nil {
			rt := result.Type()
			if rt == objects.RETURN_VALUE_OBJ || rt == objects.ERROR_OBJ || rt == objects.EXIT_OBJ {
				return result
			}
		}
	}
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *scope.Environment) objects.Object {
	val := e.Eval(node.Value, env)
	if isError(val) || isPropagating(val) {
		return val
	}

	ok, immutable := env.Assign(node.Name.Value, val)
	if immutable {
		return objects.NewError("cannot reassign to const: %s", node.Name.Value)
	}
	if !ok {
		return objects.NewError("identifier not found: %s", node.Name.Value)
	}
	return val
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *scope.Environment) objects.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Value]; ok {
		return builtin
	}
	return objects.NewError("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *scope.Environment) []objects.Object {
	var result []objects.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isError(evaluated) || isPropagating(evaluated) {
			return []objects.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *scope.Environment) objects.Object {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) || isPropagating(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	}
	return NULL
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *scope.Environment) objects.Object {
	hash := objects.NewHash()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isError(key) || isPropagating(key) {
			return key
		}

		hashable, ok := key.(objects.Hashable)
		if !ok {
			return objects.NewError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pair.Value, env)
		if isError(value) || isPropagating(value) {
			return value
		}

		hash.Set(key, hashable.HashKey(), value)
	}
	return hash
}

// CallFunction implements objects.Runtime, and is also the evaluator's
// own dispatch point for CallExpression: it applies fn (a
// *function.Function or *objects.Builtin) to args.
func (e *Evaluator) CallFunction(fn objects.Object, args ...objects.Object) objects.Object {
	switch fn := fn.(type) {
	case *function.Function:
		if len(args) != len(fn.Parameters) {
			return objects.NewError("wrong number of arguments: expected=%d, got=%d", len(fn.Parameters), len(args))
		}
		extendedEnv := scope.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			extendedEnv.Set(param.Value, args[i], true)
		}
		evaluated := e.Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)

	case *objects.Builtin:
		return fn.Fn(e, args...)

	default:
		return objects.NewError("not a function: %s", fn.Type())
	}
}

func unwrapReturnValue(obj objects.Object) objects.Object {
	if rv, ok := obj.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return obj
}

func isError(obj objects.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == objects.ERROR_OBJ
}

// isPropagating reports whether obj is a control value (Exit) that
// must short-circuit exactly like Error, without being an Error
// itself.
func isPropagating(obj objects.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == objects.EXIT_OBJ
}

// isTruthy discriminates by variant type, not pointer identity: every
// Null value is falsy regardless of which package constructed it, per
// §4.4 ("only null and false are falsy").
func isTruthy(obj objects.Object) bool {
	switch obj.Type() {
	case objects.NULL_OBJ:
		return false
	case objects.BOOLEAN_OBJ:
		return obj.(*objects.Boolean).Value
	default:
		return true
	}
}

func nativeBoolToBooleanObject(input bool) *objects.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}
