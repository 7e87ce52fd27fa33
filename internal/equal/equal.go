// Package equal implements definitional equality: two
// values are equal if, after forcing every closure at matching fresh
// levels, their shapes agree all the way down.
package equal

import (
	"github.com/pi-calculus/pi/internal/eval"
	"github.com/pi-calculus/pi/internal/values"
)

// Equal reports whether v1 and v2 are definitionally equal, up to
// α-equivalence, given that level free variables are already in scope.
// Mixed Num/Succ/Zero representations need no special case here: eval
// already normalises Num(n) down to a Succ/Zero chain before a Value ever
// exists, so by the time Equal runs both sides share one representation.
func Equal(v1, v2 values.Value, level int) bool {
	switch a := v1.(type) {
	case values.Universe:
		_, ok := v2.(values.Universe)
		return ok

	case values.Nat:
		_, ok := v2.(values.Nat)
		return ok

	case values.Zero:
		_, ok := v2.(values.Zero)
		return ok

	case values.Succ:
		b, ok := v2.(values.Succ)
		return ok && Equal(a.Pred, b.Pred, level)

	case values.Pi:
		b, ok := v2.(values.Pi)
		if !ok || !Equal(a.ArgType, b.ArgType, level) {
			return false
		}
		fresh := values.NeutralValue{Neutral: values.NVar{Level: level}}
		ra, err := eval.ApplyClosure(a.RetType, fresh)
		if err != nil {
			return false
		}
		rb, err := eval.ApplyClosure(b.RetType, fresh)
		if err != nil {
			return false
		}
		return Equal(ra, rb, level+1)

	case values.Lam:
		b, ok := v2.(values.Lam)
		if !ok {
			return false
		}
		fresh := values.NeutralValue{Neutral: values.NVar{Level: level}}
		ba, err := eval.ApplyClosure(a.Closure, fresh)
		if err != nil {
			return false
		}
		bb, err := eval.ApplyClosure(b.Closure, fresh)
		if err != nil {
			return false
		}
		return Equal(ba, bb, level+1)

	case values.NeutralValue:
		b, ok := v2.(values.NeutralValue)
		return ok && neutralEqual(a.Neutral, b.Neutral, level)
	}
	return false
}

func neutralEqual(n1, n2 values.Neutral, level int) bool {
	switch a := n1.(type) {
	case values.NVar:
		b, ok := n2.(values.NVar)
		return ok && a.Level == b.Level
	case values.NApp:
		b, ok := n2.(values.NApp)
		return ok && neutralEqual(a.Fun, b.Fun, level) && Equal(a.Arg, b.Arg, level)
	}
	return false
}
