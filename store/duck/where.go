package duck

import (
	"strings"

	"github.com/pkg/errors"

	nt "sieve/entity"
)

// whereClause converts a filter to a parameterized WHERE clause
func whereClause(filter nt.Filter) (clause string, args []any, err error) {

	if filter.IsZero() {
		return
	}

	expr, args, err := filterExpr(filter)
	if err != nil || expr == "" {
		return
	}

	clause = "WHERE " + expr
	return
}

// filterExpr recursively builds filter expression (without WHERE prefix)
func filterExpr(f nt.Filter) (expr string, args []any, err error) {

	switch f.Op {
	case nt.And, nt.Or:
		return joinExpr(f)
	case nt.Not:
		if len(f.Children) == 0 {
			return
		}
		expr, args, err = filterExpr(f.Children[0])
		if err != nil || expr == "" {
			return
		}
		expr = "NOT (" + expr + ")"
		return
	}

	col, ok := columns[f.Field]
	if !ok {
		err = errors.Errorf("field is not filterable: %s", f.Field)
		return
	}

	switch f.Op {
	case nt.Eq:
		return col + " = ?", []any{f.Value}, nil
	case nt.Ne:
		return col + " != ?", []any{f.Value}, nil
	case nt.Gt:
		return col + " > ?", []any{f.Value}, nil
	case nt.Gte:
		return col + " >= ?", []any{f.Value}, nil
	case nt.Lt:
		return col + " < ?", []any{f.Value}, nil
	case nt.Lte:
		return col + " <= ?", []any{f.Value}, nil
	case nt.Contains:
		return col + " LIKE '%' || ? || '%'", []any{f.Value}, nil
	case nt.In, nt.NotIn:
		return setExpr(f.Op, col, f.Value)
	}

	err = errors.Errorf("unsupported filter op: %s", f.Op)
	return
}

func joinExpr(f nt.Filter) (expr string, args []any, err error) {

	join := " AND "
	if f.Op == nt.Or {
		join = " OR "
	}

	var clauses []string
	for _, child := range f.Children {
		var childExpr string
		var childArgs []any
		childExpr, childArgs, err = filterExpr(child)
		if err != nil {
			return
		}
		if childExpr == "" {
			continue
		}
		clauses = append(clauses, childExpr)
		args = append(args, childArgs...)
	}

	if len(clauses) == 0 {
		return
	}
	expr = "(" + strings.Join(clauses, join) + ")"
	return
}

// setExpr treats an absent value as outside any set
func setExpr(op nt.FilterOp, col string, value any) (expr string, args []any, err error) {

	values, ok := value.([]any)
	if !ok {
		err = errors.Errorf("set filter on %s needs []any, got %T", col, value)
		return
	}

	if len(values) == 0 {
		if op == nt.In {
			return "FALSE", nil, nil
		}
		return "TRUE", nil, nil
	}

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	if op == nt.In {
		expr = col + " IN (" + marks + ")"
	} else {
		expr = "(" + col + " IS NULL OR " + col + " NOT IN (" + marks + "))"
	}

	args = append(args, values...)
	return
}
