// Package repl drives the interactive loop: read a ';'-terminated
// statement, hand it to internal/driver, print the result or the error,
// and keep going. Generalizes a batch-file read-check-eval-print loop to
// also run interactively against stdin, a prompt at a time.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/eaburns/pretty"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/driver"
	"github.com/pi-calculus/pi/internal/parser"
)

const Prompt = ">>> "

// Session is one REPL run: a context plus the I/O it reads from and
// writes to.
type Session struct {
	Ctx   *ctx.Context
	Out   io.Writer
	ErrW  io.Writer
	Debug bool
}

// New returns a Session over a fresh or restored context.
func New(c *ctx.Context, out, errW io.Writer) *Session {
	return &Session{Ctx: c, Out: out, ErrW: errW}
}

// Run reads ';'-terminated statements from in, printing a prompt before
// each one, until `exit` or EOF. It never returns an error for a bad
// statement — those are printed to ErrW and the loop continues, per the
// the recover-and-continue policy the REPL needs.
func (s *Session) Run(in io.Reader, interactive bool) {
	scanner := bufio.NewScanner(in)
	scanner.Split(splitStatements)
	for {
		if interactive {
			fmt.Fprint(s.Out, Prompt)
		}
		if !scanner.Scan() {
			return
		}
		src := strings.TrimSpace(scanner.Text())
		if src == "" {
			continue
		}
		if s.step(src) {
			return
		}
	}
}

// step parses and runs one statement, reporting its result. It returns
// true if the session should stop (an `exit` command was processed).
func (s *Session) step(src string) bool {
	stmt, err := parser.ParseStatement(src)
	if err != nil {
		fmt.Fprintln(s.ErrW, err)
		return false
	}
	if s.Debug {
		pretty.Indent = "    "
		pretty.Print(stmt)
		fmt.Fprintln(s.Out)
	}
	if _, ok := stmt.(ast.Exit); ok {
		return true
	}
	result, err := driver.Run(s.Ctx, stmt)
	if err != nil {
		fmt.Fprintln(s.ErrW, err)
		return false
	}
	if result.Exit {
		return true
	}
	if result.Output != "" {
		fmt.Fprintln(s.Out, result.Output)
	}
	return false
}

// splitStatements is a bufio.SplitFunc that yields one token per ';', the
// same "read whole statements terminated by ;" contract the REPL
// surface requires, plus a final bare `exit` with no semicolon.
func splitStatements(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := strings.IndexByte(string(data), ';'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		trimmed := strings.TrimSpace(string(data))
		if trimmed == "" {
			return len(data), nil, nil
		}
		return len(data), data, nil
	}
	return 0, nil, nil
}
