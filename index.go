package sieve

// OptionsIndex holds resolved catalogues by filter name.
// Each entry is the []Option[V] of the filter registered under that name.
type OptionsIndex map[string]any

// Lookup narrows the catalogue stored under name.
// A missing or differently typed catalogue reads as empty.
func Lookup[V comparable](index OptionsIndex, name string) []Option[V] {

	options, ok := index[name].([]Option[V])
	if !ok {
		return nil
	}
	return options
}

// Reconcile matches values against the catalogue in input order,
// tagging each match with typ.  Unmatched values are dropped.
func Reconcile[V comparable](typ string, values []V, catalogue []Option[V]) []Selected[V] {

	byValue := make(map[V]Option[V], len(catalogue))
	for _, opt := range catalogue {
		if _, ok := byValue[opt.Value]; !ok {
			byValue[opt.Value] = opt
		}
	}

	selected := []Selected[V]{}
	for _, val := range values {
		opt, ok := byValue[val]
		if !ok {
			continue
		}
		selected = append(selected, Selected[V]{Option: opt, Type: typ})
	}

	return selected
}

// narrow keeps the raw values that hold a V.
func narrow[V comparable](raw []any) []V {

	values := make([]V, 0, len(raw))
	for _, r := range raw {
		val, ok := r.(V)
		if ok {
			values = append(values, val)
		}
	}
	return values
}
