package entity

import (
	"sort"
	"strings"
)

// Record is a domain record, or a partial fragment of one, as nested maps.
type Record map[string]any

// Lookup walks a dotted path such as "object.kind".
func (rec Record) Lookup(path string) (val any, ok bool) {

	var cur any = map[string]any(rec)
	for _, key := range strings.Split(path, ".") {
		m, isMap := asMap(cur)
		if !isMap {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// Fragment builds a partial record holding val at a dotted path.
func Fragment(path string, val any) Record {

	keys := strings.Split(path, ".")

	var cur any = val
	for i := len(keys) - 1; i > 0; i-- {
		cur = map[string]any{keys[i]: cur}
	}

	return Record{keys[0]: cur}
}

// Leaf is a single path/value pair of a flattened record.
type Leaf struct {
	Path  string
	Value any
}

// Leaves flattens a record into its path/value pairs, sorted by path.
func (rec Record) Leaves() (leaves []Leaf) {

	collect("", map[string]any(rec), &leaves)
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].Path < leaves[j].Path
	})
	return
}

// unexported

func collect(prefix string, m map[string]any, leaves *[]Leaf) {

	for key, val := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		child, ok := asMap(val)
		if ok {
			collect(path, child, leaves)
			continue
		}
		*leaves = append(*leaves, Leaf{Path: path, Value: val})
	}
}

func asMap(val any) (map[string]any, bool) {

	switch m := val.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}
