package pgqb

import (
	"strings"
)

type (
	// JoinKind is the type of a Join.
	JoinKind int

	// Join is a table joined to a SELECT statement. On is used as is.
	Join struct {
		Kind  JoinKind
		Table string
		On    string
	}

	// Order is an ORDER BY item.
	Order struct {
		Column string
		Desc   bool
	}

	withQuery struct {
		name  string
		query string
	}

	sqlWith struct {
		withQueries []withQuery
	}

	sqlConditions struct {
		conditions []string
	}

	sqlReturning struct {
		returning []string
	}
)

const (
	InnerJoin JoinKind = iota
	LeftJoin
	LeftOuterJoin
)

func (k JoinKind) String() string {
	switch k {
	case LeftJoin:
		return "LEFT JOIN"
	case LeftOuterJoin:
		return "LEFT OUTER JOIN"
	}
	return "INNER JOIN"
}

func (j Join) String() string {
	return j.Kind.String() + " " + j.Table + " ON " + j.On
}

// Asc sorts by column in ascending order.
func Asc(column string) Order {
	return Order{Column: column}
}

// Desc sorts by column in descending order.
func Desc(column string) Order {
	return Order{Column: column, Desc: true}
}

func (o Order) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// AddWith adds "name AS (query)" to the WITH clause.
func (s *sqlWith) AddWith(name, query string) {
	s.withQueries = append(s.withQueries, withQuery{name, query})
}

func (s sqlWith) with() string {
	if len(s.withQueries) == 0 {
		return ""
	}
	items := make([]string, 0, len(s.withQueries))
	for _, q := range s.withQueries {
		items = append(items, q.name+" AS ("+q.query+")")
	}
	return "WITH " + strings.Join(items, ", ") + " "
}

// AddWhere adds condition to the WHERE clause. Conditions are joined with
// AND.
func (s *sqlConditions) AddWhere(condition string) {
	s.conditions = append(s.conditions, condition)
}

func (s sqlConditions) where() string {
	return conditionsToStr(s.conditions, " WHERE ")
}

// AddReturning adds fields to the RETURNING clause.
func (s *sqlReturning) AddReturning(fields ...string) {
	s.returning = append(s.returning, fields...)
}

func (s sqlReturning) returningClause() string {
	return listToStr(s.returning, " RETURNING ")
}

func conditionsToStr(conds []string, prefix string) string {
	if len(conds) == 0 {
		return ""
	}
	return prefix + strings.Join(conds, " AND ")
}

func listToStr(items []string, prefix string) string {
	if len(items) == 0 {
		return ""
	}
	return prefix + strings.Join(items, ", ")
}
