// Command scm-mix is the entry point for the interpreter: REPL mode by
// default, file mode when given a path, and a "server <port>" mode
// that serves the same language over TCP.
package main

import (
	"os"

	"github.com/akashmaji946/scm-mix/repl"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const (
	version = "v1.0.0"
	author  = "akashmaji946/scm-mix"
	prompt  = "scm> "
	line    = "----------------------------------------------------------------"
	banner  = `
     ___  ___ __  __       __  __ _____  __
    / _ \/ __|  \/  |_ __ |  \/  |_ _\ \/ /
   | (_) |(__| |\/| | '  \| |\/| || | >  <
    \___/\___|_|  |_|_|_|_|_|  |_|___/_/\_\
`
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing port for server mode: scm-mix server <port>")
				os.Exit(1)
			}
			runServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	r := repl.NewRepl(banner, version, author, line, prompt)
	r.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("scm-mix - a small Lisp-family expression language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  scm-mix                  Start interactive REPL mode")
	yellowColor.Println("  scm-mix <path-to-file>   Execute a source file")
	yellowColor.Println("  scm-mix server <port>    Serve the REPL over TCP")
	yellowColor.Println("  scm-mix --help           Display this help message")
	yellowColor.Println("  scm-mix --version        Display version information")
}

func showVersion() {
	cyanColor.Printf("scm-mix %s\n", version)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	if err := repl.RunFile(string(src), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func runServer(port string) {
	r := repl.NewRepl(banner, version, author, line, prompt)
	logf := func(format string, args ...interface{}) {
		cyanColor.Fprintf(os.Stdout, format, args...)
	}
	if err := r.Serve(":"+port, logf); err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
		os.Exit(1)
	}
}
