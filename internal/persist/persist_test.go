package persist_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/persist"
	"github.com/pi-calculus/pi/internal/values"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.db")

	c := ctx.New()
	require.NoError(t, c.Declare("a", values.Nat{}))
	require.NoError(t, c.Define("b", values.Nat{}, values.Succ{Pred: values.Zero{}}))

	require.NoError(t, persist.Save(path, c))

	restored, err := persist.Load(path)
	require.NoError(t, err)

	a, ok := restored.Lookup("a")
	require.True(t, ok)
	assert.Nil(t, a.Def)
	assert.Equal(t, values.Nat{}, a.Type)

	b, ok := restored.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, values.Succ{Pred: values.Zero{}}, b.Def)
}

func TestLoadMissingFileYieldsEmptyContext(t *testing.T) {
	c, err := persist.Load(filepath.Join(t.TempDir(), "missing.db"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
