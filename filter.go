package sieve

import (
	"context"

	tea "charm.land/bubbletea/v2"

	nt "sieve/entity"
)

// Filter is the value type independent surface of a Descriptor, as held by
// a Registry.
type Filter interface {
	Name() string
	TranslationKey() string
	Icon() Icon
	Conditions() []Mode
	// Load fetches the catalogue and returns it as []Option[V].
	Load(ctx context.Context) (catalogue any, err error)
	// Labels reconciles raw values and returns the matched option names.
	Labels(raw []any, index OptionsIndex) []string
	// Fragments builds the partial records for raw values holding a V.
	Fragments(raw []any) []nt.Record
	// RenderIndex renders the option list from the filter's indexed catalogue.
	RenderIndex(index OptionsIndex, search *Search) tea.Model
	// Matches reports whether rec satisfies the condition.
	Matches(cond Condition, rec nt.Record) bool
}

var _ Filter = (*Descriptor[int])(nil)

func (dsc *Descriptor[V]) Load(ctx context.Context) (catalogue any, err error) {

	options, err := dsc.Options(ctx).Wait(ctx)
	if err != nil {
		return
	}
	catalogue = options
	return
}

func (dsc *Descriptor[V]) Labels(raw []any, index OptionsIndex) (labels []string) {

	for _, sel := range dsc.ArgsToFilterOptions(narrow[V](raw), index) {
		labels = append(labels, sel.Name)
	}
	return
}

func (dsc *Descriptor[V]) Fragments(raw []any) []nt.Record {

	var frags []nt.Record
	for _, val := range narrow[V](raw) {
		frag := dsc.Create(val)
		if frag == nil {
			continue
		}
		frags = append(frags, frag)
	}
	return frags
}

func (dsc *Descriptor[V]) RenderIndex(index OptionsIndex, search *Search) tea.Model {
	return dsc.Render(Lookup[V](index, dsc.Name()), search)
}

// Matches checks rec in memory, an absent attribute matches only not in.
func (dsc *Descriptor[V]) Matches(cond Condition, rec nt.Record) bool {

	val, ok := dsc.Extract(rec)
	found := false
	if ok {
		for _, want := range narrow[V](cond.Values) {
			if want == val {
				found = true
				break
			}
		}
	}

	if cond.Mode == NotIn {
		return !found
	}
	return found
}
