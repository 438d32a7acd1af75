package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "sieve/entity"
)

func kind(k int) nt.Record {
	return nt.Fragment("object.kind", k)
}

func TestBuild_Empty(t *testing.T) {
	assert.True(t, Build().IsZero())
	assert.True(t, Build(Clause{}).IsZero())
}

func TestBuild_SingleClauseMergesValues(t *testing.T) {
	got := Build(Clause{Fragments: []nt.Record{kind(1), kind(2), kind(1)}})

	assert.Equal(t, nt.Filter{Op: nt.In, Field: "object.kind", Value: []any{1, 2}}, got)
}

func TestBuild_NegatedClause(t *testing.T) {
	got := Build(Clause{Negate: true, Fragments: []nt.Record{kind(3)}})

	assert.Equal(t, nt.Filter{Op: nt.NotIn, Field: "object.kind", Value: []any{3}}, got)
}

func TestBuild_ManyClausesAnd(t *testing.T) {
	got := Build(
		Clause{Fragments: []nt.Record{kind(1)}},
		Clause{Negate: true, Fragments: []nt.Record{nt.Fragment("path.extension", "png")}},
	)

	assert.Equal(t, nt.Filter{
		Op: nt.And,
		Children: []nt.Filter{
			{Op: nt.In, Field: "object.kind", Value: []any{1}},
			{Op: nt.NotIn, Field: "path.extension", Value: []any{"png"}},
		},
	}, got)
}

func TestBuild_MultiLeafFragment(t *testing.T) {
	frag := nt.Record{"object": map[string]any{"kind": 1, "hidden": false}}

	got := Build(Clause{Fragments: []nt.Record{frag}})

	assert.Equal(t, nt.Filter{
		Op: nt.And,
		Children: []nt.Filter{
			{Op: nt.In, Field: "object.hidden", Value: []any{false}},
			{Op: nt.In, Field: "object.kind", Value: []any{1}},
		},
	}, got)
}

func TestBuild_ListLeaves(t *testing.T) {
	tags := func(tt ...any) nt.Record {
		return nt.Record{"object": map[string]any{"tags": tt}}
	}

	got := Build(Clause{Fragments: []nt.Record{tags(1), tags(2), tags(1)}})

	assert.Equal(t, nt.Filter{
		Op:    nt.In,
		Field: "object.tags",
		Value: []any{[]any{1}, []any{2}},
	}, got)

	assert.True(t, Match(got, tags(2)))
	assert.False(t, Match(got, tags(3)))
}

func TestMatch(t *testing.T) {
	image := nt.Record{
		"name":   "cat.png",
		"size":   float64(2048),
		"object": map[string]any{"kind": float64(5)},
	}

	cases := []struct {
		name string
		flt  nt.Filter
		want bool
	}{
		{"zero", nt.Filter{}, true},
		{"in json number", nt.Filter{Op: nt.In, Field: "object.kind", Value: []any{5, 7}}, true},
		{"in miss", nt.Filter{Op: nt.In, Field: "object.kind", Value: []any{7}}, false},
		{"in absent", nt.Filter{Op: nt.In, Field: "path.extension", Value: []any{"png"}}, false},
		{"not in hit", nt.Filter{Op: nt.NotIn, Field: "object.kind", Value: []any{5}}, false},
		{"not in absent", nt.Filter{Op: nt.NotIn, Field: "path.extension", Value: []any{"png"}}, true},
		{"in bad value", nt.Filter{Op: nt.In, Field: "object.kind", Value: 5}, false},
		{"eq", nt.Filter{Op: nt.Eq, Field: "name", Value: "cat.png"}, true},
		{"ne", nt.Filter{Op: nt.Ne, Field: "name", Value: "cat.png"}, false},
		{"eq absent", nt.Filter{Op: nt.Eq, Field: "owner", Value: "me"}, false},
		{"contains", nt.Filter{Op: nt.Contains, Field: "name", Value: "cat"}, true},
		{"gt", nt.Filter{Op: nt.Gt, Field: "size", Value: 1024}, true},
		{"lte", nt.Filter{Op: nt.Lte, Field: "size", Value: 1024}, false},
		{"gte string", nt.Filter{Op: nt.Gte, Field: "name", Value: "b"}, true},
		{"not", nt.Filter{Op: nt.Not, Children: []nt.Filter{{Op: nt.Eq, Field: "name", Value: "dog.png"}}}, true},
		{"or", nt.Filter{Op: nt.Or, Children: []nt.Filter{
			{Op: nt.Eq, Field: "name", Value: "dog.png"},
			{Op: nt.In, Field: "object.kind", Value: []any{5}},
		}}, true},
		{"and", nt.Filter{Op: nt.And, Children: []nt.Filter{
			{Op: nt.Eq, Field: "name", Value: "cat.png"},
			{Op: nt.In, Field: "object.kind", Value: []any{6}},
		}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.flt, image))
		})
	}
}
