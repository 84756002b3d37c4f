package repository

import (
	"fmt"
	"strings"
)

// clause is one predicate with the parameters it binds. The expr uses
// %s markers that Build replaces with numbered placeholders.
type clause struct {
	expr   string
	params []interface{}
}

// searchQuery assembles a statement from an ordered list of optional
// predicates. WHERE and HAVING chains are tracked separately so a
// post-aggregation filter never leaks into the row-stage chain.
// Parameters are numbered once, at Build time, in the order clauses
// were added: WHERE chain, then HAVING chain, then LIMIT.
type searchQuery struct {
	selectFrom string
	where      []clause
	having     []clause
	groupBy    string
	orderBy    string
	limit      interface{}
}

func (q *searchQuery) Where(expr string, params ...interface{}) {
	q.where = append(q.where, clause{expr: expr, params: params})
}

func (q *searchQuery) Having(expr string, params ...interface{}) {
	q.having = append(q.having, clause{expr: expr, params: params})
}

// Build renders the statement and the positional parameter list in
// one pass. The first predicate of a chain opens with its keyword,
// the rest join with AND.
func (q *searchQuery) Build() (string, []interface{}) {
	var params []interface{}

	number := func(c clause) string {
		placeholders := make([]interface{}, len(c.params))
		for i, p := range c.params {
			params = append(params, p)
			placeholders[i] = fmt.Sprintf("$%d", len(params))
		}
		return fmt.Sprintf(c.expr, placeholders...)
	}

	var b strings.Builder
	b.WriteString(q.selectFrom)
	for i, c := range q.where {
		if i == 0 {
			b.WriteString("\nWHERE ")
		} else {
			b.WriteString("\n  AND ")
		}
		b.WriteString(number(c))
	}
	if q.groupBy != "" {
		b.WriteString("\nGROUP BY " + q.groupBy)
	}
	for i, c := range q.having {
		if i == 0 {
			b.WriteString("\nHAVING ")
		} else {
			b.WriteString("\n  AND ")
		}
		b.WriteString(number(c))
	}
	if q.orderBy != "" {
		b.WriteString("\nORDER BY " + q.orderBy)
	}
	if q.limit != nil {
		params = append(params, q.limit)
		b.WriteString(fmt.Sprintf("\nLIMIT $%d", len(params)))
	}
	return b.String(), params
}
