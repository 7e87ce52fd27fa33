// Package errs collects the distinguishable error kinds the checker,
// evaluator, and context can report. Each is a plain value implementing
// error; none of that code panics on a user-facing mistake.
package errs

import "fmt"

// UnboundVariable is returned when a name has no context entry.
type UnboundVariable struct {
	Name string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("Unbound variable: %s", e.Name)
}

// Redeclaration is returned when a name is already bound in the context.
type Redeclaration struct {
	Name string
}

func (e *Redeclaration) Error() string {
	return fmt.Sprintf("%s is already declared", e.Name)
}

// TypeMismatch is returned when a term is checked against a type other
// than the one it infers.
type TypeMismatch struct {
	Expected string
	Found    string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("Type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// ExpectedFunctionType is returned when an application's head, or a
// λ checked against a non-Π, does not have Π type.
type ExpectedFunctionType struct {
	Found string
}

func (e *ExpectedFunctionType) Error() string {
	return fmt.Sprintf("Expected a function type, found %s", e.Found)
}

// NotAFunction is returned when evaluation applies a non-λ, non-neutral
// value. Type-checked terms should never hit this; it is a runtime guard.
type NotAFunction struct {
	Found string
}

func (e *NotAFunction) Error() string {
	return fmt.Sprintf("not a function: %s", e.Found)
}

// ExpectedUniverse is returned when a term required to be a type (by
// appearing in type position) infers something other than 𝒰.
type ExpectedUniverse struct {
	Found string
}

func (e *ExpectedUniverse) Error() string {
	return fmt.Sprintf("Expected 𝒰, found %s", e.Found)
}

// CannotInferLambda is returned when an un-annotated λ appears where the
// bidirectional checker needs to infer (rather than check) its type.
type CannotInferLambda struct{}

func (e *CannotInferLambda) Error() string {
	return "cannot infer the type of an un-annotated lambda; try `:: T`"
}

// ParseError wraps a message surfaced verbatim from the parser.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}
