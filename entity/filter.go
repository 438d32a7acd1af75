package entity

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Gt       // >
	Gte      // >=
	Lt       // <
	Lte      // <=
	Contains // substring match

	// Set operators, Value holds []any
	In
	NotIn
)

// Filter represents a composable predicate over records.
// Filters can be simple comparisons or logical combinations.
// The zero Filter matches everything.
type Filter struct {
	Op       FilterOp // Operation type
	Field    string   // Dotted record path for comparison (empty for logical ops)
	Value    any      // Comparison value (nil for logical ops)
	Children []Filter // Child filters for logical ops
}

// IsZero reports whether the filter is the empty, match-all filter.
func (f Filter) IsZero() bool {
	return f.Field == "" && len(f.Children) == 0 && f.Value == nil
}

var opNames = map[FilterOp]string{
	And:      "and",
	Or:       "or",
	Not:      "not",
	Eq:       "==",
	Ne:       "!=",
	Gt:       ">",
	Gte:      ">=",
	Lt:       "<",
	Lte:      "<=",
	Contains: "contains",
	In:       "in",
	NotIn:    "not in",
}

func (op FilterOp) String() string {
	name, ok := opNames[op]
	if !ok {
		return "unknown"
	}
	return name
}
