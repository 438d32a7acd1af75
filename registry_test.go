package sieve

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "sieve/entity"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)              {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func newRegistry(t *testing.T, filters ...Filter) *Registry {
	t.Helper()
	reg := NewRegistry(nopLogger{})
	for _, flt := range filters {
		require.NoError(t, reg.Register(flt))
	}
	return reg
}

func TestRegistry_Register(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), tagDescriptor("red"))

	assert.Equal(t, []string{"kind", "tag"}, reg.Names())

	flt, ok := reg.Get("tag")
	require.True(t, ok)
	assert.Equal(t, "tag", flt.Name())

	_, ok = reg.Get("size")
	assert.False(t, ok)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue))

	err := reg.Register(kindDescriptor(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	reg := newRegistry(t)

	err := reg.Register(New(Definition[int]{TranslationKey: "size"}))
	require.Error(t, err)
}

func TestRegistry_Catalogue(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), tagDescriptor("red", "blue"))

	index, err := reg.Catalogue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, mediaCatalogue, Lookup[int](index, "kind"))
	assert.Len(t, Lookup[string](index, "tag"), 2)
	assert.Empty(t, Lookup[string](index, "kind"), "narrowing to the wrong type reads empty")
}

func TestRegistry_CatalogueError(t *testing.T) {
	boom := errors.New("index offline")
	broken := New(Definition[int]{
		Name: "broken",
		Options: func(_ context.Context) ([]Option[int], error) {
			return nil, boom
		},
	})
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), broken)

	index, err := reg.Catalogue(context.Background())
	require.Error(t, err)
	assert.Nil(t, index)
	assert.Equal(t, boom, errors.Cause(err))
	assert.Contains(t, err.Error(), "broken")
}

func TestRegistry_Query(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), tagDescriptor("red"))

	search := NewSearch()
	search.Toggle("kind", 1)
	search.Toggle("kind", 2)
	search.Toggle("tag", "red")
	search.SetMode("tag", NotIn)
	search.Toggle("unknown", 3)

	got := reg.Query(context.Background(), search)

	assert.Equal(t, nt.Filter{
		Op: nt.And,
		Children: []nt.Filter{
			{Op: nt.In, Field: "object.kind", Value: []any{1, 2}},
			{Op: nt.NotIn, Field: "tag", Value: []any{"red"}},
		},
	}, got)
}

func TestRegistry_QueryEmpty(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue))

	got := reg.Query(context.Background(), NewSearch())
	assert.True(t, got.IsZero())
}

func TestRegistry_Matches(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), tagDescriptor("red"))

	search := NewSearch()
	search.Toggle("kind", 2)
	search.Toggle("tag", "red")
	search.SetMode("tag", NotIn)

	assert.True(t, reg.Matches(search, nt.Record{"object": map[string]any{"kind": 2}, "tag": "blue"}))
	assert.True(t, reg.Matches(search, nt.Record{"object": map[string]any{"kind": 2}}))
	assert.False(t, reg.Matches(search, nt.Record{"object": map[string]any{"kind": 2}, "tag": "red"}))
	assert.False(t, reg.Matches(search, nt.Record{"object": map[string]any{"kind": 1}}))
	assert.True(t, reg.Matches(NewSearch(), nt.Record{}))
}

func TestRegistry_Summary(t *testing.T) {
	reg := newRegistry(t, kindDescriptor(mediaCatalogue), tagDescriptor("red"))
	index, err := reg.Catalogue(context.Background())
	require.NoError(t, err)

	search := NewSearch()
	search.Toggle("kind", 2)
	search.Toggle("kind", 5)
	search.Toggle("kind", 1)
	search.Toggle("tag", "gone")

	assert.Equal(t, []string{"kind in Video, Image"}, reg.Summary(search, index))
}
