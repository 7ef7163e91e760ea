/*
Package repl implements the Read-Eval-Print Loop for monk. The REPL
reads a line, evaluates it against a persistent environment, and
echoes either parse errors (each prefixed "parser error: ") or the
result's canonical form, per §6.3. It is a thin external collaborator
around the eval/parser/lexer core.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/monkeylang/monk/eval"
	"github.com/monkeylang/monk/lexer"
	"github.com/monkeylang/monk/objects"
	"github.com/monkeylang/monk/parser"
	"github.com/monkeylang/monk/scope"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation details shown at startup; evaluation
// behavior itself is fixed by §6.3.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to monk!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Call exit() to quit, or press Ctrl+D")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until exit() is called or input closes.
// It returns the process exit code the caller should use.
func (r *Repl) Start(reader io.Reader, writer io.Writer) int {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start readline: %v\n", err)
		return 1
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)
	env := scope.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return 0
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return 0
		}

		if code, exited := r.executeWithRecovery(writer, line, evaluator, env); exited {
			return code
		}
	}
}

// executeWithRecovery parses and evaluates one line, reporting parser
// errors, runtime errors, or the result's canonical form. It recovers
// from panics so a bad line never kills the session. The second return
// value is true when the line invoked exit(), signaling Start to stop.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, env *scope.Environment) (int, bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "parser error: %s\n", msg)
		}
		return 0, false
	}

	result := evaluator.Eval(program, env)

	switch result := result.(type) {
	case *objects.Exit:
		writer.Write([]byte("Good Bye!\n"))
		return int(result.Code), true
	case *objects.Error:
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	default:
		if result != nil {
			yellowColor.Fprintf(writer, "%s\n", result.Inspect())
		}
	}
	return 0, false
}
