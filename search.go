package sieve

import "slices"

// Mode is how a condition treats its values.
type Mode int

const (
	In Mode = iota
	NotIn
)

func (mode Mode) String() string {
	if mode == NotIn {
		return "not in"
	}
	return "in"
}

// Condition is the active selection of one filter.
type Condition struct {
	Mode   Mode
	Values []any
}

// Search is the search context shared by the filter bar: the active
// conditions, in the order they were first used.
type Search struct {
	order []string
	conds map[string]Condition
}

func NewSearch() *Search {
	return &Search{conds: map[string]Condition{}}
}

// Toggle adds value to the named filter's condition, or removes it when
// already there.  A condition left without values is cleared.
func (srch *Search) Toggle(name string, value any) {

	cond, ok := srch.conds[name]
	if !ok {
		srch.order = append(srch.order, name)
	}

	idx := slices.Index(cond.Values, value)
	if idx >= 0 {
		cond.Values = slices.Delete(slices.Clone(cond.Values), idx, idx+1)
	} else {
		cond.Values = append(slices.Clone(cond.Values), value)
	}

	if len(cond.Values) == 0 {
		srch.Clear(name)
		return
	}
	srch.conds[name] = cond
}

// SetMode switches the named filter between in and not in.
func (srch *Search) SetMode(name string, mode Mode) {

	cond, ok := srch.conds[name]
	if !ok {
		return
	}
	cond.Mode = mode
	srch.conds[name] = cond
}

// Clear drops the named filter's condition.
func (srch *Search) Clear(name string) {

	delete(srch.conds, name)
	srch.order = slices.DeleteFunc(srch.order, func(n string) bool {
		return n == name
	})
}

// Active returns the named filter's condition.
func (srch *Search) Active(name string) (cond Condition, ok bool) {
	if srch == nil {
		return
	}

	cond, ok = srch.conds[name]
	cond.Values = slices.Clone(cond.Values)
	return
}

// Has reports whether value is selected for the named filter.
func (srch *Search) Has(name string, value any) bool {
	if srch == nil {
		return false
	}
	return slices.Contains(srch.conds[name].Values, value)
}

// Names lists filters with an active condition.
func (srch *Search) Names() []string {
	if srch == nil {
		return nil
	}
	return slices.Clone(srch.order)
}
