/*
Package std implements the interpreter's built-in function library:
the required set from §4.7, registered by name and invoked by the
evaluator after an environment lookup miss.
*/
package std

import (
	"strconv"
	"strings"

	"github.com/monkeylang/monk/function"
	"github.com/monkeylang/monk/objects"
)

// Builtins is the read-only table of builtin functions, keyed by name.
// It is populated once at package init and never mutated afterward.
var Builtins = map[string]*objects.Builtin{
	"len":    {Name: "len", Fn: builtinLen},
	"first":  {Name: "first", Fn: builtinFirst},
	"last":   {Name: "last", Fn: builtinLast},
	"rest":   {Name: "rest", Fn: builtinRest},
	"push":   {Name: "push", Fn: builtinPush},
	"puts":   {Name: "puts", Fn: builtinPuts},
	"gets":   {Name: "gets", Fn: builtinGets},
	"type":   {Name: "type", Fn: builtinType},
	"int":    {Name: "int", Fn: builtinInt},
	"str":    {Name: "str", Fn: builtinStr},
	"sumarr": {Name: "sumarr", Fn: builtinSumarr},
	"zip":    {Name: "zip", Fn: builtinZip},
	"exit":   {Name: "exit", Fn: builtinExit},
	"help":   {Name: "help", Fn: builtinHelp},
}

func wrongArgs(expected, got int) *objects.Error {
	return objects.NewError("wrong number of arguments: expected=%d, got=%d", expected, got)
}

func unsupportedArg(name string, got objects.Object) *objects.Error {
	return objects.NewError("argument to `%s` not supported, got %s", name, got.Type())
}

func builtinLen(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	switch arg := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len(arg.Value))}
	case *objects.Array:
		return &objects.Integer{Value: int64(len(arg.Elements))}
	case *objects.Hash:
		return &objects.Integer{Value: int64(len(arg.Order))}
	default:
		return unsupportedArg("len", args[0])
	}
}

func builtinFirst(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("first", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("last", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("rest", args[0])
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	rest := make([]objects.Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &objects.Array{Elements: rest}
}

// builtinPush returns a new Array with x appended; the original array
// is left unmodified.
func builtinPush(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 2 {
		return wrongArgs(2, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("push", args[0])
	}
	newElements := make([]objects.Object, len(arr.Elements), len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements = append(newElements, args[1])
	return &objects.Array{Elements: newElements}
}

// builtinPuts writes each argument's display form, separated by a
// single space, followed by a newline, and returns Null.
func builtinPuts(rt objects.Runtime, args ...objects.Object) objects.Object {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	w := rt.Output()
	w.Write([]byte(strings.Join(parts, " ")))
	w.Write([]byte("\n"))
	return NULL
}

// builtinGets reads one line from the input collaborator, returning it
// without the trailing newline.
func builtinGets(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 0 {
		return wrongArgs(0, len(args))
	}
	line, err := rt.Input().ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return NULL
	}
	return &objects.String{Value: line}
}

func builtinType(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	switch args[0].(type) {
	case *function.Function:
		return &objects.String{Value: "FUNCTION"}
	default:
		return &objects.String{Value: string(args[0].Type())}
	}
}

func builtinInt(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	switch arg := args[0].(type) {
	case *objects.Integer:
		return arg
	case *objects.Float:
		return &objects.Integer{Value: int64(arg.Value)}
	case *objects.String:
		n, err := strconv.ParseInt(strings.TrimSpace(arg.Value), 10, 64)
		if err != nil {
			return objects.NewError("could not parse %q as integer", arg.Value)
		}
		return &objects.Integer{Value: n}
	case *objects.Boolean:
		if arg.Value {
			return &objects.Integer{Value: 1}
		}
		return &objects.Integer{Value: 0}
	default:
		return unsupportedArg("int", args[0])
	}
}

func builtinStr(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	return &objects.String{Value: args[0].Inspect()}
}

func builtinSumarr(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return wrongArgs(1, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("sumarr", args[0])
	}
	if len(arr.Elements) == 0 {
		return &objects.Integer{Value: 0}
	}

	isFloat := false
	var fsum float64
	var isum int64
	for _, el := range arr.Elements {
		switch n := el.(type) {
		case *objects.Integer:
			isum += n.Value
			fsum += float64(n.Value)
		case *objects.Float:
			isFloat = true
			fsum += n.Value
		default:
			return unsupportedArg("sumarr", el)
		}
	}
	if isFloat {
		return &objects.Float{Value: fsum}
	}
	return &objects.Integer{Value: isum}
}

// builtinZip returns pairs of corresponding elements from a and b,
// truncated to the length of the shorter input.
func builtinZip(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) != 2 {
		return wrongArgs(2, len(args))
	}
	a, ok := args[0].(*objects.Array)
	if !ok {
		return unsupportedArg("zip", args[0])
	}
	b, ok := args[1].(*objects.Array)
	if !ok {
		return unsupportedArg("zip", args[1])
	}

	n := len(a.Elements)
	if len(b.Elements) < n {
		n = len(b.Elements)
	}
	pairs := make([]objects.Object, n)
	for i := 0; i < n; i++ {
		pairs[i] = &objects.Array{Elements: []objects.Object{a.Elements[i], b.Elements[i]}}
	}
	return &objects.Array{Elements: pairs}
}

// builtinExit signals the host to terminate with the given code
// (default 0) by producing a propagating Exit value rather than
// calling os.Exit directly — see objects.Exit.
func builtinExit(rt objects.Runtime, args ...objects.Object) objects.Object {
	if len(args) > 1 {
		return wrongArgs(1, len(args))
	}
	if len(args) == 0 {
		return &objects.Exit{Code: 0}
	}
	code, ok := args[0].(*objects.Integer)
	if !ok {
		return unsupportedArg("exit", args[0])
	}
	return &objects.Exit{Code: code.Value}
}

const helpText = `monk — a small interpreter

Builtins: len, first, last, rest, push, puts, gets, type, int, str,
sumarr, zip, exit, help.
`

func builtinHelp(rt objects.Runtime, args ...objects.Object) objects.Object {
	rt.Output().Write([]byte(helpText))
	return NULL
}

// NULL is the one canonical objects.NULL singleton, aliased here so
// builtins do not need to import eval (which itself imports std,
// avoiding a cycle) while still comparing identical to every other
// Null value in the interpreter.
var NULL = objects.NULL
