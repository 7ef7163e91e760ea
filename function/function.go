/*
Package function holds the Function runtime-value type in its own
package so it can depend on both ast (to reconstruct source text in
Inspect) and scope (to hold its captured closure environment) without
objects importing either — avoiding an import cycle between objects,
ast, and scope.
*/
package function

import (
	"bytes"
	"strings"

	"github.com/monkeylang/monk/ast"
	"github.com/monkeylang/monk/objects"
	"github.com/monkeylang/monk/scope"
)

// Function is a user-defined function value. Env is the environment
// captured at the point the FunctionLiteral was evaluated — it must
// outlive every Function value that references it, which direct
// reference capture (not a copy) guarantees.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *scope.Environment
}

func (f *Function) Type() objects.ObjectType { return objects.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
