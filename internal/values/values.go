// Package values defines the weak-head normal form values produced by the
// normalizer: the second of two parallel term representations, the other
// being internal/ast's named surface terms.
package values

import "github.com/pi-calculus/pi/internal/ast"

// Value is a term in weak-head normal form.
type Value interface {
	isValue()
}

// Universe is the sort 𝒰.
type Universe struct{}

// Nat is the type ℕ.
type Nat struct{}

// Zero is the constructor 0 : ℕ.
type Zero struct{}

// Succ is the successor of a value already known to be a natural number.
type Succ struct {
	Pred Value
}

// Lam is a closed-over, un-applied λ-abstraction.
type Lam struct {
	Closure Closure
}

// Pi is a dependent function space; ArgType is already a value, RetType is
// a closure applied to the argument value to get the return type.
type Pi struct {
	ArgName string // for display only; irrelevant to equality/evaluation
	ArgType Value
	RetType Closure
}

// Neutral is an irreducible term headed by a free variable.
type Neutral interface {
	isNeutral()
}

// NVar is a free variable, identified by its de Bruijn level.
type NVar struct {
	Level int
	// Name is the name this level was introduced under, for display.
	// Levels introduced purely for quoting carry a generated "_<level>".
	Name string
}

// NApp is a neutral applied to a value argument.
type NApp struct {
	Fun Neutral
	Arg Value
}

// NeutralValue wraps a Neutral as a Value.
type NeutralValue struct {
	Neutral Neutral
}

func (Universe) isValue()     {}
func (Nat) isValue()          {}
func (Zero) isValue()         {}
func (Succ) isValue()         {}
func (Lam) isValue()          {}
func (Pi) isValue()           {}
func (NeutralValue) isValue() {}

func (NVar) isNeutral() {}
func (NApp) isNeutral() {}

// Closure pairs an unevaluated body with the environment that supplies its
// free variables. The environment is captured by value (a fresh map copy
// on every extension) and never mutated after capture, so closures never
// form cycles. Keyed by name rather than de Bruijn index: the
// parser yields named binders and this interpreter keeps them named all
// the way through evaluation, converting to levels only at Quote time, as
// the named-environment style this interpreter keeps throughout.
type Closure struct {
	Env  map[string]Value
	Arg  string
	Body ast.Term
}
