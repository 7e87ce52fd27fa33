// Package ast defines the surface syntax produced by the parser: named
// terms with no de Bruijn indices yet, plus the three REPL statement forms.
package ast

import "fmt"

// Term is a surface-syntax node. Binders carry names; internal/eval keeps
// them named and only assigns de Bruijn levels when quoting a value back.
type Term interface {
	isTerm()
	fmt.Stringer
}

// Var is a free or (at this stage) still-named bound identifier.
type Var struct {
	Name string
}

// Num is an unsigned literal, shorthand for Succ^n Zero.
type Num struct {
	N int
}

// Zero is the constructor 0 of ℕ.
type Zero struct{}

// Succ is the successor of a natural number term.
type Succ struct {
	Term Term
}

// Nat is the type ℕ.
type Nat struct{}

// Universe is the sort 𝒰.
type Universe struct{}

// Lambda is an un-annotated λ-abstraction.
type Lambda struct {
	Arg  string
	Body Term
}

// App is function application, left-associative at the surface.
type App struct {
	Fun Term
	Arg Term
}

// Pi is a dependent function space. ArgName is empty for a non-dependent
// arrow A -> B.
type Pi struct {
	ArgName string
	ArgType Term
	RetType Term
}

// Binding is one (name, type) pair inside a Forall's binder list.
type Binding struct {
	Name string
	Type Term
}

// Forall is sugar for a right-nested chain of Pi, desugared in the type
// checker before anything else looks at it.
type Forall struct {
	Bindings []Binding
	Body     Term
}

// Annot is an explicit type ascription e :: T.
type Annot struct {
	Term Term
	Type Term
}

func (Var) isTerm()      {}
func (Num) isTerm()      {}
func (Zero) isTerm()     {}
func (Succ) isTerm()     {}
func (Nat) isTerm()      {}
func (Universe) isTerm() {}
func (Lambda) isTerm()   {}
func (App) isTerm()      {}
func (Pi) isTerm()       {}
func (Forall) isTerm()   {}
func (Annot) isTerm()    {}

func (v Var) String() string  { return v.Name }
func (n Num) String() string  { return fmt.Sprintf("%d", n.N) }
func (Zero) String() string   { return "0" }
func (s Succ) String() string { return "S(" + s.Term.String() + ")" }
func (Nat) String() string    { return "ℕ" }
func (Universe) String() string {
	return "𝒰"
}
// String renders a λ without its bound name, matching the REPL's printed
// form: bound variables are only visible via the "_<index>"
// names that appear inside Body once a value has been quoted.
func (l Lambda) String() string { return "λ . " + l.Body.String() }
func (a App) String() string    { return a.Fun.String() + " " + parenIfNeeded(a.Arg) }

// String renders a Π uniformly as "∀ A . B", whether or not it is
// dependent (e.g. `ℕ -> ℕ` prints as `∀ ℕ . ℕ`).
func (p Pi) String() string {
	return "∀ " + p.ArgType.String() + " . " + p.RetType.String()
}
func (f Forall) String() string {
	s := "∀"
	for _, b := range f.Bindings {
		s += " (" + b.Name + " : " + b.Type.String() + ")"
	}
	return s + " . " + f.Body.String()
}
func (a Annot) String() string { return a.Term.String() + " :: " + a.Type.String() }

// Desugar rewrites a Forall into its right-nested Pi chain, since Forall
// is sugar that gets desugared during elaboration rather than checked
// directly.
func (f Forall) Desugar() Term {
	body := f.Body
	for i := len(f.Bindings) - 1; i >= 0; i-- {
		b := f.Bindings[i]
		body = Pi{ArgName: b.Name, ArgType: b.Type, RetType: body}
	}
	return body
}

func parenIfNeeded(t Term) string {
	switch t.(type) {
	case App, Lambda, Pi, Forall, Annot:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}

// Statement is one top-level REPL form.
type Statement interface {
	isStatement()
}

// Declare is `def <name> :: <type>;`.
type Declare struct {
	Name string
	Type Term
}

// Let is `let <name> := <term>;`.
type Let struct {
	Name string
	Term Term
}

// Eval is `eval <term>;`.
type Eval struct {
	Term Term
}

// Show is `show;`, printing every context entry.
type Show struct{}

// Exit is the `exit` command that tears down the REPL session.
type Exit struct{}

func (Declare) isStatement() {}
func (Let) isStatement()     {}
func (Eval) isStatement()    {}
func (Show) isStatement()    {}
func (Exit) isStatement()    {}
