// Package persist saves and restores a ctx.Context across REPL runs using
// go.etcd.io/bbolt, the embedded key-value store karma.run depends on
// (as github.com/coreos/bbolt) for its own storage layer. This is the one
// component of this interpreter with a notion of durable state; it runs
// once at startup/shutdown and never touches the purely synchronous
// evaluation path.
package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"go.etcd.io/bbolt"

	"github.com/pi-calculus/pi/internal/ast"
	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/values"
)

var bucketName = []byte("context")

func init() {
	gob.Register(ast.Var{})
	gob.Register(ast.Num{})
	gob.Register(ast.Zero{})
	gob.Register(ast.Succ{})
	gob.Register(ast.Nat{})
	gob.Register(ast.Universe{})
	gob.Register(ast.Lambda{})
	gob.Register(ast.App{})
	gob.Register(ast.Pi{})
	gob.Register(ast.Forall{})
	gob.Register(ast.Annot{})

	gob.Register(values.Universe{})
	gob.Register(values.Nat{})
	gob.Register(values.Zero{})
	gob.Register(values.Succ{})
	gob.Register(values.Lam{})
	gob.Register(values.Pi{})
	gob.Register(values.NeutralValue{})
	gob.Register(values.NVar{})
	gob.Register(values.NApp{})
}

// record is the gob-encoded form of one ctx.Entry. Def is left as the
// interface's nil zero value for a bare assumption; gob omits a
// zero-valued field on encode and leaves it unset on decode, so no extra
// bookkeeping is needed to distinguish an assumption from a definition.
type record struct {
	Name string
	Type values.Value
	Def  values.Value
}

// Save persists every entry of c, in declaration order, to a bbolt
// database at path, overwriting whatever was there before.
func Save(path string, c *ctx.Context) error {
	db, err := bbolt.Open(path, 0o644, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketName)
		if err != nil {
			return err
		}
		for i, e := range c.Entries() {
			var buf bytes.Buffer
			rec := record{Name: e.Name, Type: e.Type, Def: e.Def}
			if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
				return err
			}
			key := fmt.Sprintf("%06d:%s", i, e.Name)
			if err := b.Put([]byte(key), buf.Bytes()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load restores a context from a bbolt database at path. A missing file
// is not an error: it yields a fresh, empty context, so `-load` can name a
// path that will simply be created on the matching `-save`.
func Load(path string) (*ctx.Context, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ctx.New(), nil
	}

	db, err := bbolt.Open(path, 0o644, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	c := ctx.New()
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var rec record
			if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&rec); err != nil {
				return err
			}
			if rec.Def != nil {
				return c.Define(rec.Name, rec.Type, rec.Def)
			}
			return c.Declare(rec.Name, rec.Type)
		})
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
