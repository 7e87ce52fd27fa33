// Package eval implements the normalizer: Eval reduces a
// surface ast.Term to a values.Value in an environment, and Quote converts
// a value back to an ast.Term for printing and for equality checking.
package eval

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/errs"
	"github.com/pi-calculus/pi/internal/values"
)

// Env is a named environment: a snapshot of every name currently in scope,
// mapping directly to its value. Lambda/Pi closures capture one of these by
// value (a fresh copy on every extension), so a captured environment is
// never mutated after the fact.
type Env = map[string]values.Value

func cloneEnv(env Env) Env {
	cp := make(Env, len(env)+1)
	for k, v := range env {
		cp[k] = v
	}
	return cp
}

// Eval reduces term to weak-head normal form under env.
func Eval(term ast.Term, env Env) (values.Value, error) {
	switch t := term.(type) {
	case ast.Var:
		if v, ok := env[t.Name]; ok {
			return v, nil
		}
		return nil, &errs.UnboundVariable{Name: t.Name}

	case ast.Num:
		var v values.Value = values.Zero{}
		for i := 0; i < t.N; i++ {
			v = values.Succ{Pred: v}
		}
		return v, nil

	case ast.Zero:
		return values.Zero{}, nil

	case ast.Succ:
		v, err := Eval(t.Term, env)
		if err != nil {
			return nil, err
		}
		return values.Succ{Pred: v}, nil

	case ast.Nat:
		return values.Nat{}, nil

	case ast.Universe:
		return values.Universe{}, nil

	case ast.Lambda:
		return values.Lam{Closure: values.Closure{Env: cloneEnv(env), Arg: t.Arg, Body: t.Body}}, nil

	case ast.App:
		f, err := Eval(t.Fun, env)
		if err != nil {
			return nil, err
		}
		a, err := Eval(t.Arg, env)
		if err != nil {
			return nil, err
		}
		return Apply(f, a)

	case ast.Pi:
		argVal, err := Eval(t.ArgType, env)
		if err != nil {
			return nil, err
		}
		name := t.ArgName
		if name == "" {
			name = "_"
		}
		return values.Pi{
			ArgName: name,
			ArgType: argVal,
			RetType: values.Closure{Env: cloneEnv(env), Arg: name, Body: t.RetType},
		}, nil

	case ast.Forall:
		return Eval(t.Desugar(), env)

	case ast.Annot:
		return Eval(t.Term, env)
	}
	return nil, errors.Errorf("eval: unhandled term %T", term)
}

// Apply performs the application rule: a λ applies its
// closure, a neutral grows an NApp spine, anything else is a runtime error.
func Apply(fn, arg values.Value) (values.Value, error) {
	switch f := fn.(type) {
	case values.Lam:
		return ApplyClosure(f.Closure, arg)
	case values.NeutralValue:
		return values.NeutralValue{Neutral: values.NApp{Fun: f.Neutral, Arg: arg}}, nil
	default:
		return nil, &errs.NotAFunction{Found: fmt.Sprintf("%T", fn)}
	}
}

// ApplyClosure evaluates a closure's body in its captured environment
// extended with one more binding for the closure's argument.
func ApplyClosure(c values.Closure, arg values.Value) (values.Value, error) {
	env := make(Env, len(c.Env)+1)
	for k, v := range c.Env {
		env[k] = v
	}
	env[c.Arg] = arg
	return Eval(c.Body, env)
}

// Quote converts v back into a printable ast.Term, introducing fresh bound
// variables starting at level, named "_<level>" except where
// names supplies a real declared name for that level (used so a context
// assumption like `a` prints back as `a`, not `_0`).
func Quote(v values.Value, level int, names []string) ast.Term {
	switch val := v.(type) {
	case values.Universe:
		return ast.Universe{}
	case values.Nat:
		return ast.Nat{}
	case values.Zero:
		return ast.Zero{}
	case values.Succ:
		return ast.Succ{Term: Quote(val.Pred, level, names)}
	case values.Lam:
		name := freshName(level, names)
		body, err := ApplyClosure(val.Closure, values.NeutralValue{Neutral: values.NVar{Level: level, Name: name}})
		if err != nil {
			panic(errors.Wrap(err, "quote: applying λ closure to a fresh variable"))
		}
		return ast.Lambda{Arg: name, Body: Quote(body, level+1, extend(names, name))}
	case values.Pi:
		argT := Quote(val.ArgType, level, names)
		name := freshName(level, names)
		ret, err := ApplyClosure(val.RetType, values.NeutralValue{Neutral: values.NVar{Level: level, Name: name}})
		if err != nil {
			panic(errors.Wrap(err, "quote: applying Π closure to a fresh variable"))
		}
		return ast.Pi{ArgName: name, ArgType: argT, RetType: Quote(ret, level+1, extend(names, name))}
	case values.NeutralValue:
		return quoteNeutral(val.Neutral, level, names)
	}
	panic(fmt.Sprintf("quote: unhandled value %T", v))
}

func quoteNeutral(n values.Neutral, level int, names []string) ast.Term {
	switch nn := n.(type) {
	case values.NVar:
		if nn.Level < len(names) && names[nn.Level] != "" {
			return ast.Var{Name: names[nn.Level]}
		}
		return ast.Var{Name: freshName(nn.Level, names)}
	case values.NApp:
		return ast.App{Fun: quoteNeutral(nn.Fun, level, names), Arg: Quote(nn.Arg, level, names)}
	}
	panic(fmt.Sprintf("quote: unhandled neutral %T", n))
}

func freshName(level int, names []string) string {
	if level < len(names) && names[level] != "" {
		return names[level]
	}
	return fmt.Sprintf("_%d", level)
}

func extend(names []string, name string) []string {
	cp := make([]string, len(names)+1)
	copy(cp, names)
	cp[len(names)] = name
	return cp
}
