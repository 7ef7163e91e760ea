/*
Package file implements the file-runner entry point of §6.4: read a
source file in full, evaluate it in a fresh environment, and report
parse errors or the final value's canonical form.
*/
package file

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/monkeylang/monk/eval"
	"github.com/monkeylang/monk/lexer"
	"github.com/monkeylang/monk/objects"
	"github.com/monkeylang/monk/parser"
	"github.com/monkeylang/monk/scope"
)

var redColor = color.New(color.FgRed)

// Run reads path, parses and evaluates its contents in a fresh
// environment, and writes diagnostics/results to out. It returns the
// process exit code the caller should use: 0 on success, 1 on parse or
// runtime error, or the code carried by an exit() call.
func Run(path string, out io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(out, "could not read file %q: %v\n", path, err)
		return 1
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(out, "parser error: %s\n", msg)
		}
		return 1
	}

	e := eval.New()
	e.SetWriter(out)
	env := scope.NewEnvironment()

	result := e.Eval(program, env)

	switch result := result.(type) {
	case *objects.Exit:
		return int(result.Code)
	case *objects.Error:
		redColor.Fprintln(out, result.Inspect())
		return 1
	default:
		if result != nil {
			io.WriteString(out, result.Inspect()+"\n")
		}
		return 0
	}
}
