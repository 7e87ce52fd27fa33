// Package driver implements the statement driver: it
// dispatches one parsed ast.Statement into a ctx.Context, returning the
// text the REPL should print. Declarations are atomic — type-check first,
// mutate the context only on success.
package driver

import (
	"github.com/pkg/errors"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/check"
	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/eval"
	"github.com/pi-calculus/pi/internal/values"
)

func errUnhandled(stmt ast.Statement) error {
	return errors.Errorf("driver: unhandled statement %T", stmt)
}

// Result is what a processed statement prints, plus whether the REPL
// should keep going afterward.
type Result struct {
	Output string
	Exit   bool
}

// Run dispatches stmt against c. On error, c is left exactly as it was:
// every path that could mutate c type-checks before doing so.
func Run(c *ctx.Context, stmt ast.Statement) (Result, error) {
	switch s := stmt.(type) {
	case ast.Declare:
		return runDeclare(c, s)
	case ast.Let:
		return runLet(c, s)
	case ast.Eval:
		return runEval(c, s)
	case ast.Show:
		return Result{Output: renderShow(c)}, nil
	case ast.Exit:
		return Result{Exit: true}, nil
	}
	return Result{}, errUnhandled(stmt)
}

func runDeclare(c *ctx.Context, s ast.Declare) (Result, error) {
	if err := check.Check(c, s.Type, values.Universe{}); err != nil {
		return Result{}, err
	}
	typeVal, err := eval.Eval(s.Type, c.Env())
	if err != nil {
		return Result{}, err
	}
	if err := c.Declare(s.Name, typeVal); err != nil {
		return Result{}, err
	}
	return Result{Output: eval.Quote(typeVal, c.Len(), c.Names()).String()}, nil
}

func runLet(c *ctx.Context, s ast.Let) (Result, error) {
	typeVal, err := check.Infer(c, s.Term)
	if err != nil {
		return Result{}, err
	}
	termVal, err := eval.Eval(s.Term, c.Env())
	if err != nil {
		return Result{}, err
	}
	if err := c.Define(s.Name, typeVal, termVal); err != nil {
		return Result{}, err
	}
	return Result{Output: eval.Quote(termVal, c.Len(), c.Names()).String()}, nil
}

func runEval(c *ctx.Context, s ast.Eval) (Result, error) {
	if _, err := check.Infer(c, s.Term); err != nil {
		return Result{}, err
	}
	val, err := eval.Eval(s.Term, c.Env())
	if err != nil {
		return Result{}, err
	}
	return Result{Output: eval.Quote(val, c.Len(), c.Names()).String()}, nil
}

func renderShow(c *ctx.Context) string {
	out := ""
	for i, e := range c.Entries() {
		if i > 0 {
			out += "\n"
		}
		out += e.Name + " :: " + eval.Quote(e.Type, c.Len(), c.Names()).String()
		if e.Def != nil {
			out += " := " + eval.Quote(e.Def, c.Len(), c.Names()).String()
		}
	}
	return out
}
