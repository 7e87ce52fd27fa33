// Package check implements the bidirectional type checker:
// Infer for positions where the expected type is unknown, Check for
// positions where it is known (most importantly, un-annotated λs).
package check

import (
	"github.com/pkg/errors"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/equal"
	"github.com/pi-calculus/pi/internal/errs"
	"github.com/pi-calculus/pi/internal/eval"
	"github.com/pi-calculus/pi/internal/values"
)

// Infer computes term's type, failing if term does not carry enough
// information to determine one without a caller-supplied expectation.
func Infer(c *ctx.Context, term ast.Term) (values.Value, error) {
	switch t := term.(type) {
	case ast.Var:
		e, ok := c.Lookup(t.Name)
		if !ok {
			return nil, &errs.UnboundVariable{Name: t.Name}
		}
		return e.Type, nil

	case ast.Universe:
		// One universe, 𝒰 : 𝒰. Known-unsound, accepted for pedagogical
		// simplicity.
		return values.Universe{}, nil

	case ast.Nat:
		return values.Universe{}, nil

	case ast.Zero:
		return values.Nat{}, nil

	case ast.Num:
		return values.Nat{}, nil

	case ast.Succ:
		if err := Check(c, t.Term, values.Nat{}); err != nil {
			return nil, err
		}
		return values.Nat{}, nil

	case ast.Pi:
		if err := Check(c, t.ArgType, values.Universe{}); err != nil {
			return nil, err
		}
		argVal, err := eval.Eval(t.ArgType, c.Env())
		if err != nil {
			return nil, err
		}
		name := t.ArgName
		if name == "" {
			name = "_"
		}
		err = c.WithAssumption(name, argVal, func() error {
			return Check(c, t.RetType, values.Universe{})
		})
		if err != nil {
			return nil, err
		}
		return values.Universe{}, nil

	case ast.Forall:
		return Infer(c, t.Desugar())

	case ast.App:
		fnType, err := Infer(c, t.Fun)
		if err != nil {
			return nil, err
		}
		pi, ok := fnType.(values.Pi)
		if !ok {
			return nil, &errs.ExpectedFunctionType{Found: display(c, fnType)}
		}
		if err := Check(c, t.Arg, pi.ArgType); err != nil {
			return nil, err
		}
		argVal, err := eval.Eval(t.Arg, c.Env())
		if err != nil {
			return nil, err
		}
		return eval.ApplyClosure(pi.RetType, argVal)

	case ast.Annot:
		if err := Check(c, t.Type, values.Universe{}); err != nil {
			return nil, err
		}
		tyVal, err := eval.Eval(t.Type, c.Env())
		if err != nil {
			return nil, err
		}
		if err := Check(c, t.Term, tyVal); err != nil {
			return nil, err
		}
		return tyVal, nil

	case ast.Lambda:
		return nil, &errs.CannotInferLambda{}
	}
	return nil, errors.Errorf("infer: unhandled term %T", term)
}

// Check verifies that term has type expected, descending into Infer (and
// comparing by definitional equality) whenever term does not itself carry
// a checking rule.
func Check(c *ctx.Context, term ast.Term, expected values.Value) error {
	if fa, ok := term.(ast.Forall); ok {
		return Check(c, fa.Desugar(), expected)
	}

	if lam, ok := term.(ast.Lambda); ok {
		pi, ok := expected.(values.Pi)
		if !ok {
			return &errs.ExpectedFunctionType{Found: display(c, expected)}
		}
		fresh := values.NeutralValue{Neutral: values.NVar{Level: c.Len(), Name: lam.Arg}}
		retType, err := eval.ApplyClosure(pi.RetType, fresh)
		if err != nil {
			return err
		}
		return c.WithAssumption(lam.Arg, pi.ArgType, func() error {
			return Check(c, lam.Body, retType)
		})
	}

	inferred, err := Infer(c, term)
	if err != nil {
		return err
	}
	if equal.Equal(inferred, expected, c.Len()) {
		return nil
	}
	if _, isUniverse := expected.(values.Universe); isUniverse {
		return &errs.ExpectedUniverse{Found: display(c, inferred)}
	}
	return &errs.TypeMismatch{Expected: display(c, expected), Found: display(c, inferred)}
}

// display quotes v for use inside an error message, seeding the quoter
// with the declared names already in c so a free context variable prints
// back as its own name rather than a generated "_<level>".
func display(c *ctx.Context, v values.Value) string {
	return eval.Quote(v, c.Len(), c.Names()).String()
}
