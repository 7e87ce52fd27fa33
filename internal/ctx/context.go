// Package ctx holds the REPL's persistent context: the ordered sequence of
// assumptions and definitions.
package ctx

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/pi-calculus/pi/internal/errs"
	"github.com/pi-calculus/pi/internal/values"
)

// Entry is one context binding: an assumption (Def == nil) or a definition.
type Entry struct {
	Name string
	Type values.Value
	Def  values.Value // nil for a bare assumption
}

// Context is the ordered, append-only-during-statement-processing list of
// entries. The zero value is an empty context.
type Context struct {
	entries []Entry
}

// New returns an empty context.
func New() *Context {
	return &Context{}
}

// Len returns the number of entries, which doubles as the next free de
// Bruijn level: entries and λ-introduced binders share one level space.
func (c *Context) Len() int {
	return len(c.entries)
}

// Lookup finds an entry by name, preferring the most recently pushed entry
// so a λ-bound argument correctly shadows an outer context name of the
// same name while it is in scope.
func (c *Context) Lookup(name string) (Entry, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Name == name {
			return c.entries[i], true
		}
	}
	return Entry{}, false
}

// contains reports whether name is already bound at the top level.
func (c *Context) contains(name string) bool {
	return slices.IndexFunc(c.entries, func(e Entry) bool { return e.Name == name }) >= 0
}

// Declare adds a bare assumption `name :: typ`. Fails if name is already
// bound.
func (c *Context) Declare(name string, typ values.Value) error {
	if c.contains(name) {
		return &errs.Redeclaration{Name: name}
	}
	c.entries = append(c.entries, Entry{Name: name, Type: typ})
	return nil
}

// Define adds a definition `name := val : typ`. Same uniqueness rule as
// Declare.
func (c *Context) Define(name string, typ, val values.Value) error {
	if c.contains(name) {
		return &errs.Redeclaration{Name: name}
	}
	c.entries = append(c.entries, Entry{Name: name, Type: typ, Def: val})
	return nil
}

// Names returns the bound names in declaration order.
func (c *Context) Names() []string {
	return lo.Map(c.entries, func(e Entry, _ int) string { return e.Name })
}

// Entries returns a read-only view of the context in declaration order.
func (c *Context) Entries() []Entry {
	return c.entries
}

// Env returns the named environment backing this context, suitable for
// internal/eval.Eval: a definition's value if present, otherwise a neutral
// variable at this entry's level (its index in declaration order).
func (c *Context) Env() map[string]values.Value {
	env := make(map[string]values.Value, len(c.entries))
	for i, e := range c.entries {
		if e.Def != nil {
			env[e.Name] = e.Def
			continue
		}
		env[e.Name] = values.NeutralValue{Neutral: values.NVar{Level: i, Name: e.Name}}
	}
	return env
}

// Names for quoting: the display name of every entry's level, in order.
// Used as the seed for internal/eval.Quote so that a free variable from the
// context prints back using its declared name rather than a generated
// "_<level>" (e.g. `eval a;` prints back as `a`).
func (c *Context) LevelNames() []string {
	return c.Names()
}

// WithAssumption pushes a fresh assumption, runs fn, and pops it on every
// exit path including a panic or error return. It is
// used by the type checker when it must extend ctx to check an expression
// under a binder, without polluting the REPL-visible context.
func (c *Context) WithAssumption(name string, typ values.Value, fn func() error) error {
	c.entries = append(c.entries, Entry{Name: name, Type: typ})
	defer func() {
		c.entries = c.entries[:len(c.entries)-1]
	}()
	return fn()
}

// Clone returns a deep-enough copy so appends to the returned context never
// affect c.
func (c *Context) Clone() *Context {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return &Context{entries: cp}
}
