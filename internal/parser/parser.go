// Package parser is a hand-rolled recursive-descent parser over the token
// list produced by internal/lexer, in a "consume tokens, return what's
// left" style: every parseX takes the remaining tokens and returns
// (node, remaining tokens, error) instead of calling a fatal errExit,
// since the REPL must recover from a bad statement and keep going.
package parser

import (
	"fmt"
	"strconv"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/errs"
	"github.com/pi-calculus/pi/internal/lexer"
)

// ParseStatement tokenizes and parses one ';'-terminated statement (or the
// bare `exit` / `show;` commands). Any tokens left over after the statement
// are reported as a ParseError.
func ParseStatement(src string) (ast.Statement, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	stmt, rest, err := parseStatement(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &errs.ParseError{Message: fmt.Sprintf("unexpected trailing tokens: %v", rest)}
	}
	return stmt, nil
}

func parseStatement(toks []string) (ast.Statement, []string, error) {
	if len(toks) == 0 {
		return nil, nil, &errs.ParseError{Message: "unexpected end of input"}
	}
	head, toks := toks[0], toks[1:]
	switch head {
	case "exit":
		toks, _ = expectOptional(";", toks)
		return ast.Exit{}, toks, nil

	case "show":
		toks, err := expect(";", toks)
		return ast.Show{}, toks, err

	case "def":
		name, toks, err := parseIdent(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect("::", toks)
		if err != nil {
			return nil, nil, err
		}
		ty, toks, err := parseExpr(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect(";", toks)
		return ast.Declare{Name: name, Type: ty}, toks, err

	case "let":
		name, toks, err := parseIdent(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect(":=", toks)
		if err != nil {
			return nil, nil, err
		}
		term, toks, err := parseExpr(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect(";", toks)
		return ast.Let{Name: name, Term: term}, toks, err

	case "eval":
		term, toks, err := parseExpr(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect(";", toks)
		return ast.Eval{Term: term}, toks, err
	}
	return nil, nil, &errs.ParseError{Message: fmt.Sprintf("unexpected token %q, expected a statement", head)}
}

// parseExpr parses a full expression: annotation binds loosest, then
// arrow/Π, then application, then atoms.
func parseExpr(toks []string) (ast.Term, []string, error) {
	t, toks, err := parseArrow(toks)
	if err != nil {
		return nil, nil, err
	}
	if peek(toks) == "::" {
		toks = toks[1:]
		ty, rest, err := parseArrow(toks)
		if err != nil {
			return nil, nil, err
		}
		return ast.Annot{Term: t, Type: ty}, rest, nil
	}
	return t, toks, nil
}

// parseArrow parses A -> B, right-associative, and forall/∀ binder chains.
func parseArrow(toks []string) (ast.Term, []string, error) {
	if peek(toks) == "forall" || peek(toks) == "∀" {
		return parseForall(toks[1:])
	}
	lhs, toks, err := parseApp(toks)
	if err != nil {
		return nil, nil, err
	}
	if peek(toks) == "->" {
		toks = toks[1:]
		rhs, rest, err := parseArrow(toks)
		if err != nil {
			return nil, nil, err
		}
		return ast.Pi{ArgType: lhs, RetType: rhs}, rest, nil
	}
	return lhs, toks, nil
}

// parseForall parses the comma-separated "(name : type)" bindings that
// follow forall/∀, up to the "." that introduces the body.
func parseForall(toks []string) (ast.Term, []string, error) {
	var bindings []ast.Binding
	for {
		toks2, err := expect("(", toks)
		if err != nil {
			return nil, nil, err
		}
		name, toks3, err := parseIdent(toks2)
		if err != nil {
			return nil, nil, err
		}
		toks4, err := expect(":", toks3)
		if err != nil {
			return nil, nil, err
		}
		ty, toks5, err := parseArrow(toks4)
		if err != nil {
			return nil, nil, err
		}
		toks6, err := expect(")", toks5)
		if err != nil {
			return nil, nil, err
		}
		bindings = append(bindings, ast.Binding{Name: name, Type: ty})
		toks = toks6
		if peek(toks) == "," {
			toks = toks[1:]
			continue
		}
		break
	}
	toks, err := expect(".", toks)
	if err != nil {
		return nil, nil, err
	}
	body, rest, err := parseArrow(toks)
	if err != nil {
		return nil, nil, err
	}
	return ast.Forall{Bindings: bindings, Body: body}, rest, nil
}

// parseApp parses left-associative application of juxtaposed atoms.
func parseApp(toks []string) (ast.Term, []string, error) {
	fn, toks, err := parseAtom(toks)
	if err != nil {
		return nil, nil, err
	}
	for startsAtom(peek(toks)) {
		arg, rest, err := parseAtom(toks)
		if err != nil {
			return nil, nil, err
		}
		fn, toks = ast.App{Fun: fn, Arg: arg}, rest
	}
	return fn, toks, nil
}

func startsAtom(t string) bool {
	switch t {
	case "", ")", "->", "::", ",", ".", ";", ":=", ":":
		return false
	}
	return true
}

func parseAtom(toks []string) (ast.Term, []string, error) {
	if len(toks) == 0 {
		return nil, nil, &errs.ParseError{Message: "unexpected end of input"}
	}
	head, toks := toks[0], toks[1:]
	switch head {
	case "(":
		t, rest, err := parseExpr(toks)
		if err != nil {
			return nil, nil, err
		}
		rest, err = expect(")", rest)
		return t, rest, err

	case "λ", "\\":
		name, toks, err := parseIdent(toks)
		if err != nil {
			return nil, nil, err
		}
		toks, err = expect("->", toks)
		if err != nil {
			return nil, nil, err
		}
		body, rest, err := parseArrow(toks)
		if err != nil {
			return nil, nil, err
		}
		return ast.Lambda{Arg: name, Body: body}, rest, nil

	case "forall", "∀":
		return parseForall(toks)

	case "Nat", "ℕ":
		return ast.Nat{}, toks, nil

	case "Type", "U", "𝒰":
		return ast.Universe{}, toks, nil

	case "0", "O":
		return ast.Zero{}, toks, nil

	case "Succ", "S":
		arg, rest, err := parseAtom(toks)
		if err != nil {
			return nil, nil, err
		}
		return ast.Succ{Term: arg}, rest, nil
	}

	if n, err := strconv.Atoi(head); err == nil {
		return ast.Num{N: n}, toks, nil
	}
	if err := validIdent(head); err != nil {
		return nil, nil, err
	}
	return ast.Var{Name: head}, toks, nil
}

func parseIdent(toks []string) (string, []string, error) {
	if len(toks) == 0 {
		return "", nil, &errs.ParseError{Message: "expected an identifier, got end of input"}
	}
	head, toks := toks[0], toks[1:]
	if err := validIdent(head); err != nil {
		return "", nil, err
	}
	return head, toks, nil
}

func validIdent(t string) error {
	switch t {
	case "(", ")", "->", "::", ":=", ":", ",", ".", ";", "\\", "λ", "∀", "forall", "let", "def", "eval", "show", "exit":
		return &errs.ParseError{Message: fmt.Sprintf("expected an identifier, got %q", t)}
	}
	return nil
}

func expect(tok string, toks []string) ([]string, error) {
	if len(toks) == 0 {
		return nil, &errs.ParseError{Message: fmt.Sprintf("expected %q, got end of input", tok)}
	}
	if toks[0] != tok {
		return nil, &errs.ParseError{Message: fmt.Sprintf("expected %q, got %q", tok, toks[0])}
	}
	return toks[1:], nil
}

func expectOptional(tok string, toks []string) ([]string, bool) {
	if len(toks) > 0 && toks[0] == tok {
		return toks[1:], true
	}
	return toks, false
}

func peek(toks []string) string {
	if len(toks) == 0 {
		return ""
	}
	return toks[0]
}
