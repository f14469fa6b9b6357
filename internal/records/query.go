package records

import (
	"fmt"
	"strings"
)

// Filter is a single column comparison in a WHERE clause.
type Filter struct {
	Column string
	Op     string
	Value  any
}

func Eq(column string, value any) Filter  { return Filter{Column: column, Op: "=", Value: value} }
func Gte(column string, value any) Filter { return Filter{Column: column, Op: ">=", Value: value} }
func Lte(column string, value any) Filter { return Filter{Column: column, Op: "<=", Value: value} }

// Query narrows a List call. The zero value lists every row in insertion order.
type Query struct {
	Filters []Filter
	OrderBy string
}

// Assignment sets one column in a bulk update.
type Assignment struct {
	Column string
	Value  any
}

// where renders the filters starting at placeholder $start.
func where(filters []Filter, start int) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}
	parts := make([]string, len(filters))
	args := make([]any, len(filters))
	for i, f := range filters {
		parts[i] = fmt.Sprintf("%s %s $%d", f.Column, f.Op, start+i)
		args[i] = f.Value
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}

func setClause(columns []string, touch string) string {
	parts := make([]string, 0, len(columns)+1)
	for i, c := range columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", c, i+1))
	}
	if touch != "" {
		parts = append(parts, touch+" = NOW()")
	}
	return strings.Join(parts, ", ")
}
