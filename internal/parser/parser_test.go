package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/parser"
)

func TestParseDeclare(t *testing.T) {
	stmt, err := parser.ParseStatement("def a :: Nat -> Nat;")
	require.NoError(t, err)
	decl, ok := stmt.(ast.Declare)
	require.True(t, ok)
	assert.Equal(t, "a", decl.Name)
	assert.Equal(t, ast.Pi{ArgType: ast.Nat{}, RetType: ast.Nat{}}, decl.Type)
}

func TestParseLetWithAnnotation(t *testing.T) {
	stmt, err := parser.ParseStatement(`let id := \ x -> x :: Nat -> Nat;`)
	require.NoError(t, err)
	let, ok := stmt.(ast.Let)
	require.True(t, ok)
	annot, ok := let.Term.(ast.Annot)
	require.True(t, ok)
	assert.Equal(t, ast.Lambda{Arg: "x", Body: ast.Var{Name: "x"}}, annot.Term)
	assert.Equal(t, ast.Pi{ArgType: ast.Nat{}, RetType: ast.Nat{}}, annot.Type)
}

func TestParseEvalApplication(t *testing.T) {
	stmt, err := parser.ParseStatement("eval id 1;")
	require.NoError(t, err)
	ev, ok := stmt.(ast.Eval)
	require.True(t, ok)
	assert.Equal(t, ast.App{Fun: ast.Var{Name: "id"}, Arg: ast.Num{N: 1}}, ev.Term)
}

func TestParseForallBindings(t *testing.T) {
	stmt, err := parser.ParseStatement("eval forall (a : U). a -> a;")
	require.NoError(t, err)
	ev, ok := stmt.(ast.Eval)
	require.True(t, ok)
	fa, ok := ev.Term.(ast.Forall)
	require.True(t, ok)
	require.Len(t, fa.Bindings, 1)
	assert.Equal(t, "a", fa.Bindings[0].Name)
	assert.Equal(t, ast.Universe{}, fa.Bindings[0].Type)
	assert.Equal(t, ast.Pi{ArgType: ast.Var{Name: "a"}, RetType: ast.Var{Name: "a"}}, fa.Body)
}

func TestParseShowAndExit(t *testing.T) {
	stmt, err := parser.ParseStatement("show;")
	require.NoError(t, err)
	assert.Equal(t, ast.Show{}, stmt)

	stmt, err = parser.ParseStatement("exit")
	require.NoError(t, err)
	assert.Equal(t, ast.Exit{}, stmt)
}

func TestParseMissingSemicolonErrors(t *testing.T) {
	_, err := parser.ParseStatement("def a :: Nat -> Nat")
	assert.Error(t, err)
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	stmt, err := parser.ParseStatement("eval f a b;")
	require.NoError(t, err)
	ev := stmt.(ast.Eval)
	assert.Equal(t,
		ast.App{
			Fun: ast.App{Fun: ast.Var{Name: "f"}, Arg: ast.Var{Name: "a"}},
			Arg: ast.Var{Name: "b"},
		},
		ev.Term,
	)
}
