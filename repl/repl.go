// Package repl implements the interactive Read-Eval-Print Loop, the
// file runner, and the TCP server driver: banner + colored-output
// presentation (github.com/chzyer/readline, github.com/fatih/color),
// `.exit` as a REPL escape hatch, and continue-after-error behavior
// driving the reader/ast/eval pipeline.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/scm-mix/ast"
	"github.com/akashmaji946/scm-mix/eval"
	"github.com/akashmaji946/scm-mix/reader"
	"github.com/akashmaji946/scm-mix/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session:
// banner, version string, and prompt. One Repl value is reused to
// start as many sessions as needed (e.g. once per TCP client).
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl with the given presentation strings.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type (exit) or .exit to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// session carries the mutable state one REPL/file/connection run
// threads across top-level forms: the environment chain and the
// parser's read-only view of it.
type session struct {
	env  *value.Env
	pars *ast.Parser
	ev   *eval.Evaluator
}

func newSession(out io.Writer) *session {
	env := value.Empty()
	return &session{
		env:  env,
		pars: ast.New(env),
		ev:   &eval.Evaluator{Out: out},
	}
}

// evalLine reads every form out of line, evaluates them in order, and
// reports the final value, its tail classification, and whether the
// program asked to terminate (via (exit)). A read/parse/eval error
// aborts the remaining forms on this one line but does not stop the
// session: errors are reported and the REPL keeps running.
func (s *session) evalLine(line string) (value.Value, eval.Tail, bool, error) {
	r := reader.NewFromString(line)
	var result value.Value = value.TheVoid
	tail := eval.TailOther
	for {
		form, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eval.TailOther, false, err
		}
		expr, err := s.pars.Parse(form)
		if err != nil {
			return nil, eval.TailOther, false, err
		}
		v, newEnv, vTail, err := s.ev.Eval(expr, s.env)
		if err != nil {
			return nil, eval.TailOther, false, err
		}
		s.env = newEnv
		s.pars.Env = newEnv
		result = v
		tail = vTail
		if _, done := v.(*value.Terminate); done {
			return result, tail, true, nil
		}
	}
	return result, tail, false, nil
}

// printResult applies the printing contract for a non-error top-level
// result: a (void) call prints "#<void>", a display call prints
// nothing (display already wrote its own output), any other void
// result (define, set!, ...) prints nothing, and anything else prints
// its written form.
func printResult(out io.Writer, v value.Value, tail eval.Tail) {
	if _, isVoid := v.(*value.Void); isVoid {
		if tail == eval.TailVoidCall {
			yellowColor.Fprintf(out, "%s\n", v.String())
		}
		return
	}
	yellowColor.Fprintf(out, "%s\n", v.String())
}

// isTerminalInput reports whether in is a terminal, the condition under
// which a caught error's own message is shown before the RuntimeError
// line.
func isTerminalInput(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printError reports a caught failure the way every driver does: the
// literal line "RuntimeError", preceded by the exception's own message
// when reading from a terminal.
func printError(out io.Writer, err error, terminal bool) {
	if terminal {
		redColor.Fprintf(out, "%s\n", err.Error())
	}
	redColor.Fprintf(out, "RuntimeError\n")
}

// Start runs the interactive loop over in/out using readline for line
// editing and history.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	terminal := isTerminalInput(in)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		redColor.Fprintf(out, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	s := newSession(out)

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("Good bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		v, tail, done, err := s.evalLine(line)
		if err != nil {
			printError(out, err, terminal)
			continue
		}
		if done {
			out.Write([]byte("Good bye!\n"))
			return
		}
		printResult(out, v, tail)
	}
}

// RunFile executes a whole source file as one session, stopping at the
// first error (the file-mode contract differs from the REPL's
// continue-after-error behavior).
func RunFile(src string, out io.Writer) error {
	s := newSession(out)
	r := reader.NewFromString(src)
	for {
		form, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		expr, err := s.pars.Parse(form)
		if err != nil {
			return err
		}
		v, newEnv, _, err := s.ev.Eval(expr, s.env)
		if err != nil {
			return err
		}
		s.env = newEnv
		s.pars.Env = newEnv
		if _, done := v.(*value.Terminate); done {
			return nil
		}
	}
}
