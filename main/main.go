/*
Package main is the entry point for the monk interpreter. It supports
two modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop
 2. File mode: execute a monk source file given on the command line
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/monkeylang/monk/file"
	"github.com/monkeylang/monk/repl"
)

// VERSION is the current version of the monk interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "monk >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ▄▄▄▄▄  ▄▄▄▄  ▄▄    ▄  ▄   ▄
  █   ▀█ █  █  █ █   █  █  █
  █▄▄▄▄▀ █  █  █  █  █  █▄▄█
  █   ▀▄ █  █  █   █ █  █  █
  █    █ █▄▄█  █    ██  █  █
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var cyanColor = color.New(color.FgCyan)

// main dispatches based on command-line arguments:
//
//	monk              - start in REPL (interactive) mode
//	monk <filename>   - execute the specified monk source file
//	monk --help       - display help information
//	monk --version    - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		os.Exit(file.Run(arg, os.Stdout))
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	os.Exit(repler.Start(os.Stdin, os.Stdout))
}

func showHelp() {
	cyanColor.Println("monk - a small interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  monk                    Start interactive REPL mode")
	cyanColor.Println("  monk <path-to-file>     Execute a monk source file")
	cyanColor.Println("  monk --help             Display this help message")
	cyanColor.Println("  monk --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	cyanColor.Println("  .exit                   Exit the REPL")
	cyanColor.Println("  exit()                  Exit the REPL from within monk code")
}

func showVersion() {
	cyanColor.Println("monk - a small interpreted language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
