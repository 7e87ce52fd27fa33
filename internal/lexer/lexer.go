// Package lexer tokenizes REPL input into the word-list the parser
// consumes: split on whitespace, then peel punctuation off with repeated
// strings.Cut, validating what is left over.
package lexer

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/pi-calculus/pi/internal/errs"
)

// puncts lists every punctuation token, longest first so "->" is peeled
// off before a lone "-" ever could be (it never is — "-" alone is not a
// valid token in this grammar, only "->").
var puncts = []string{"->", "::", ":=", ":", "(", ")", ",", ";", ".", "\\"}

// Tokenize splits s into a flat list of word and punctuation tokens.
func Tokenize(s string) ([]string, error) {
	toks := strings.Fields(s)
	for _, p := range puncts {
		toks = sep(toks, p)
	}
	for _, t := range toks {
		if err := validate(t); err != nil {
			return nil, err
		}
	}
	return toks, nil
}

// sep splits every token on sep, keeping sep itself as its own token.
// A token that is already a whole punctuation token (e.g. "::" peeled off
// by an earlier, longer separator) is kept intact.
func sep(toks []string, sepStr string) []string {
	return lo.FlatMap(toks, func(s string, _ int) (ret []string) {
		if isPunct(s) {
			return []string{s}
		}
		for {
			before, after, found := strings.Cut(s, sepStr)
			if before != "" {
				ret = append(ret, before)
			}
			s = after
			if !found {
				break
			}
			ret = append(ret, sepStr)
		}
		return ret
	})
}

func isPunct(t string) bool {
	switch t {
	case "->", "::", ":=", ":", "(", ")", ",", ";", ".", "\\", "λ", "∀", "ℕ", "𝒰":
		return true
	}
	return false
}

// validate rejects tokens containing characters that can never start a
// legal identifier, keyword, numeral or the punctuation/unicode forms of
// this grammar allows.
func validate(t string) error {
	if isPunct(t) {
		return nil
	}
	for _, r := range t {
		ok := r == '_' || r == '\'' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !ok {
			return &errs.ParseError{Message: fmt.Sprintf("unexpected token %q", t)}
		}
	}
	return nil
}
