// Package sieve builds search filter descriptors.
//
// A Descriptor describes one filterable record attribute: how to read it
// from a record, how to build a query fragment for it, and where its
// selectable options come from. Descriptors are registered in a Registry,
// which hands them out type-erased as Filter to the rendering and query
// building layers.
package sieve

import (
	"context"

	tea "charm.land/bubbletea/v2"

	nt "sieve/entity"
	"sieve/picker"
)

// Icon is an opaque rendering handle supplied by the caller.
type Icon string

// Option is one selectable value of a filter's catalogue.
type Option[V comparable] struct {
	Name  string
	Value V
	Icon  Icon
}

// Selected is a chosen value merged with its option metadata.
// Type is the name of the filter it was chosen from.
type Selected[V comparable] struct {
	Option[V]
	Type string
}

// Definition carries the construction inputs of a Descriptor.
type Definition[V comparable] struct {
	Name           string
	TranslationKey string
	Icon           Icon

	// Extract reads the attribute from a record, false when absent.
	Extract func(rec nt.Record) (V, bool)
	// Create builds the partial record representing value.
	Create func(value V) nt.Record
	// Options fetches the catalogue, possibly slowly.
	Options func(ctx context.Context) ([]Option[V], error)

	// ArgsToFilterOptions overrides reconciliation, optional.
	ArgsToFilterOptions func(values []V, index OptionsIndex) []Selected[V]
	// Render overrides the option list, optional.
	Render func(dsc *Descriptor[V], options []Option[V], search *Search) tea.Model
}

// Descriptor describes one filterable attribute.
// It is immutable once built by New.
type Descriptor[V comparable] struct {
	def Definition[V]
}

// New builds a Descriptor.  Callbacks are not validated.
func New[V comparable](def Definition[V]) *Descriptor[V] {
	return &Descriptor[V]{def: def}
}

// Name is the display label and registry key.
func (dsc *Descriptor[V]) Name() string {
	return dsc.def.Name
}

// TranslationKey is the locale independent key for Name.
func (dsc *Descriptor[V]) TranslationKey() string {
	return dsc.def.TranslationKey
}

// Icon returns the filter's icon.
func (dsc *Descriptor[V]) Icon() Icon {
	return dsc.def.Icon
}

// Conditions returns the condition modes supported by the filter.
func (dsc *Descriptor[V]) Conditions() []Mode {
	return []Mode{In, NotIn}
}

// Extract reads the filter's value from rec.
func (dsc *Descriptor[V]) Extract(rec nt.Record) (val V, ok bool) {
	if dsc.def.Extract == nil || rec == nil {
		return
	}
	return dsc.def.Extract(rec)
}

// Create builds the partial record for value, nil when the descriptor has no
// Create.
func (dsc *Descriptor[V]) Create(value V) nt.Record {
	if dsc.def.Create == nil {
		return nil
	}
	return dsc.def.Create(value)
}

// Options starts a fresh catalogue fetch.
func (dsc *Descriptor[V]) Options(ctx context.Context) *Pending[V] {
	return fetch(ctx, dsc.def.Name, dsc.def.Options)
}

// ArgsToFilterOptions maps selected values to their catalogue options,
// dropping values no longer in the catalogue.
func (dsc *Descriptor[V]) ArgsToFilterOptions(values []V, index OptionsIndex) []Selected[V] {
	if dsc.def.ArgsToFilterOptions != nil {
		return dsc.def.ArgsToFilterOptions(values, index)
	}
	return Reconcile(dsc.def.Name, values, Lookup[V](index, dsc.def.Name))
}

// Render produces the option list UI for the filter.
func (dsc *Descriptor[V]) Render(options []Option[V], search *Search) tea.Model {
	if dsc.def.Render != nil {
		return dsc.def.Render(dsc, options, search)
	}
	return OptionList(dsc, options, search)
}

// OptionList is the default renderer, a picker over the catalogue with the
// search's active values checked.
func OptionList[V comparable](dsc *Descriptor[V], options []Option[V], search *Search) tea.Model {

	items := make([]picker.Item, len(options))
	for i, opt := range options {
		items[i] = picker.Item{
			Label:   opt.Name,
			Icon:    string(opt.Icon),
			Value:   opt.Value,
			Checked: search.Has(dsc.Name(), opt.Value),
		}
	}

	negate := false
	cond, ok := search.Active(dsc.Name())
	if ok {
		negate = cond.Mode == NotIn
	}

	return picker.New(dsc.Name(), string(dsc.Icon()), items, negate)
}
