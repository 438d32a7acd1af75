// Package query merges partial record fragments into composite filters and
// evaluates filters against records in memory.
package query

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	nt "sieve/entity"
)

// Clause is one active filter condition: the fragments of its chosen values,
// negated for not in.
type Clause struct {
	Negate    bool
	Fragments []nt.Record
}

// Build combines clauses into a single filter.
// Values sharing a path within a clause merge into one set filter, and
// clauses are and'ed together.
func Build(clauses ...Clause) nt.Filter {

	var filters []nt.Filter
	for _, clause := range clauses {
		filters = append(filters, build(clause)...)
	}

	return combine(filters)
}

// Match evaluates flt against rec.
func Match(flt nt.Filter, rec nt.Record) bool {

	switch flt.Op {
	case nt.And:
		for _, child := range flt.Children {
			if !Match(child, rec) {
				return false
			}
		}
		return true
	case nt.Or:
		for _, child := range flt.Children {
			if Match(child, rec) {
				return true
			}
		}
		return false
	case nt.Not:
		if len(flt.Children) == 0 {
			return true
		}
		return !Match(flt.Children[0], rec)
	}

	val, ok := rec.Lookup(flt.Field)

	switch flt.Op {
	case nt.In:
		return ok && contains(flt.Value, val)
	case nt.NotIn:
		return !ok || !contains(flt.Value, val)
	}

	if !ok {
		return false
	}

	switch flt.Op {
	case nt.Eq:
		return equal(val, flt.Value)
	case nt.Ne:
		return !equal(val, flt.Value)
	case nt.Contains:
		return strings.Contains(fmt.Sprintf("%v", val), fmt.Sprintf("%v", flt.Value))
	case nt.Gt, nt.Gte, nt.Lt, nt.Lte:
		return compare(flt.Op, val, flt.Value)
	}

	return false
}

// unexported

func build(clause Clause) []nt.Filter {

	var paths []string
	values := map[string][]any{}

	for _, frag := range clause.Fragments {
		for _, leaf := range frag.Leaves() {
			if _, ok := values[leaf.Path]; !ok {
				paths = append(paths, leaf.Path)
			}
			if !slices.ContainsFunc(values[leaf.Path], func(seen any) bool { return equal(seen, leaf.Value) }) {
				values[leaf.Path] = append(values[leaf.Path], leaf.Value)
			}
		}
	}

	op := nt.In
	if clause.Negate {
		op = nt.NotIn
	}

	filters := make([]nt.Filter, len(paths))
	for i, path := range paths {
		filters[i] = nt.Filter{
			Op:    op,
			Field: path,
			Value: values[path],
		}
	}
	return filters
}

func combine(filters []nt.Filter) nt.Filter {

	switch len(filters) {
	case 0:
		return nt.Filter{}
	case 1:
		return filters[0]
	}

	return nt.Filter{
		Op:       nt.And,
		Children: filters,
	}
}

func contains(set, val any) bool {

	members, ok := set.([]any)
	if !ok {
		return false
	}
	for _, member := range members {
		if equal(member, val) {
			return true
		}
	}
	return false
}

// equal compares numbers by value regardless of their Go type, since records
// decoded from json carry float64 where filters carry int.  Lists and maps
// compare deeply.
func equal(a, b any) bool {

	fa, aNum := number(a)
	fb, bNum := number(b)
	if aNum && bNum {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func compare(op nt.FilterOp, a, b any) bool {

	fa, aNum := number(a)
	fb, bNum := number(b)
	if !aNum || !bNum {
		sa, sb := fmt.Sprintf("%v", a), fmt.Sprintf("%v", b)
		fa, fb = float64(strings.Compare(sa, sb)), 0
	}

	switch op {
	case nt.Gt:
		return fa > fb
	case nt.Gte:
		return fa >= fb
	case nt.Lt:
		return fa < fb
	case nt.Lte:
		return fa <= fb
	}
	return false
}

func number(val any) (float64, bool) {

	switch n := val.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
