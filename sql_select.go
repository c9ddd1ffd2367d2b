package pgqb

import (
	"strings"
)

type (
	// SelectSQL is a SELECT statement builder. Create instances using
	// Table.Select or NewSelect.
	SelectSQL struct {
		*SQL
		sqlWith
		sqlConditions
		columns []string
		joins   []Join
		groups  []string
		havings []string
		orders  []Order
		limit   int
		offset  int
	}
)

// Select creates a SELECT statement retrieving columns, or all columns if none
// is given.
//
//	pgqb.NewTable("users").Select("id", "name").WhereEq("id", 1).String()
//	// SELECT id, name FROM users WHERE id = $1
func (t Table) Select(columns ...string) *SelectSQL {
	s := &SelectSQL{
		SQL: t.NewSQL(""),
	}
	s.SQL.main = s
	return s.Select(columns...)
}

// Adds columns to SELECT statement.
func (s *SelectSQL) Select(columns ...string) *SelectSQL {
	s.columns = append(s.columns, columns...)
	return s
}

// Adds condition to SELECT statement. Every "?" in condition is replaced with
// the positional parameter of the next value.
//
//	s.Where("age > ? AND age < ?", 18, 28) // WHERE age > $1 AND age < $2
func (s *SelectSQL) Where(condition string, values ...interface{}) *SelectSQL {
	WhereFragment(s, condition, values...)
	return s
}

// Adds condition to SELECT statement as is.
func (s *SelectSQL) WhereRaw(condition string) *SelectSQL {
	s.AddWhere(condition)
	return s
}

// Adds "field = $N" condition to SELECT statement.
func (s *SelectSQL) WhereEq(field string, value interface{}) *SelectSQL {
	WhereEq(s, field, value)
	return s
}

// Adds "field <> $N" condition to SELECT statement.
func (s *SelectSQL) WhereNe(field string, value interface{}) *SelectSQL {
	WhereNe(s, field, value)
	return s
}

// AddJoin adds join to SELECT statement.
func (s *SelectSQL) AddJoin(join Join) {
	s.joins = append(s.joins, join)
}

// Adds joins to SELECT statement.
func (s *SelectSQL) Join(joins ...Join) *SelectSQL {
	for _, join := range joins {
		s.AddJoin(join)
	}
	return s
}

// Adds INNER JOIN to SELECT statement.
func (s *SelectSQL) InnerJoin(table, on string) *SelectSQL {
	s.AddJoin(Join{Kind: InnerJoin, Table: table, On: on})
	return s
}

// Adds LEFT JOIN to SELECT statement.
func (s *SelectSQL) LeftJoin(table, on string) *SelectSQL {
	s.AddJoin(Join{Kind: LeftJoin, Table: table, On: on})
	return s
}

// Adds LEFT OUTER JOIN to SELECT statement.
func (s *SelectSQL) LeftOuterJoin(table, on string) *SelectSQL {
	s.AddJoin(Join{Kind: LeftOuterJoin, Table: table, On: on})
	return s
}

// AddGroupBy adds expression to GROUP BY.
func (s *SelectSQL) AddGroupBy(expression string) {
	s.groups = append(s.groups, expression)
}

// Adds GROUP BY to SELECT statement.
func (s *SelectSQL) GroupBy(expressions ...string) *SelectSQL {
	for _, expression := range expressions {
		s.AddGroupBy(expression)
	}
	return s
}

// Adds HAVING to SELECT statement. Every "?" in condition is replaced with
// the positional parameter of the next value.
func (s *SelectSQL) Having(condition string, values ...interface{}) *SelectSQL {
	s.havings = append(s.havings, s.params.Expand(condition, values...))
	return s
}

// AddOrderBy adds order to ORDER BY.
func (s *SelectSQL) AddOrderBy(order Order) {
	s.orders = append(s.orders, order)
}

// Adds ORDER BY to SELECT statement.
//
//	s.OrderBy(pgqb.Asc("id"), pgqb.Desc("name")) // ORDER BY id ASC, name DESC
func (s *SelectSQL) OrderBy(orders ...Order) *SelectSQL {
	for _, order := range orders {
		s.AddOrderBy(order)
	}
	return s
}

// SetLimit binds count to the LIMIT clause. Calling it again replaces the
// value, the positional parameter stays the same.
func (s *SelectSQL) SetLimit(count int64) {
	s.limit = s.bind(s.limit, count)
}

// Adds LIMIT to SELECT statement.
func (s *SelectSQL) Limit(count int64) *SelectSQL {
	s.SetLimit(count)
	return s
}

// SetOffset binds start to the OFFSET clause. Calling it again replaces the
// value, the positional parameter stays the same.
func (s *SelectSQL) SetOffset(start int64) {
	s.offset = s.bind(s.offset, start)
}

func (s *SelectSQL) bind(index int, value interface{}) int {
	if index == 0 {
		return s.AddParam(value)
	}
	s.params.Replace(index, value)
	return index
}

// Adds OFFSET to SELECT statement.
func (s *SelectSQL) Offset(start int64) *SelectSQL {
	s.SetOffset(start)
	return s
}

// Adds WITH to SELECT statement. The query is used as is.
func (s *SelectSQL) With(name, query string) *SelectSQL {
	s.AddWith(name, query)
	return s
}

// Adds WITH from another SELECT statement to SELECT statement. The values of
// the other statement are taken and its positional parameters are
// renumbered to follow the ones already in this statement.
//
//	recent := pgqb.NewSelect("posts", "user_id").Where("created_at > ?", since)
//	pgqb.NewSelect("users").WithSelect("recent", recent).WhereEq("status", 1)
//	// WITH recent AS (SELECT user_id FROM posts WHERE created_at > $1)
//	// SELECT * FROM users WHERE status = $2
func (s *SelectSQL) WithSelect(name string, sql *SelectSQL) *SelectSQL {
	query, values := sql.StringValues()
	query = renumberPlaceholders(query, s.params.Len())
	for _, value := range values {
		s.AddParam(value)
	}
	s.AddWith(name, query)
	return s
}

// Perform operations on the chain.
func (s *SelectSQL) Tap(funcs ...func(*SelectSQL) *SelectSQL) *SelectSQL {
	for i := range funcs {
		s = funcs[i](s)
	}
	return s
}

func (s *SelectSQL) String() string {
	sql := s.with()
	if len(s.columns) > 0 {
		sql += "SELECT " + strings.Join(s.columns, ", ")
	} else {
		sql += "SELECT *"
	}
	sql += " FROM " + s.table.name
	for _, join := range s.joins {
		sql += " " + join.String()
	}
	sql += s.where()
	sql += listToStr(s.groups, " GROUP BY ")
	sql += conditionsToStr(s.havings, " HAVING ")
	if len(s.orders) > 0 {
		orders := make([]string, 0, len(s.orders))
		for _, order := range s.orders {
			orders = append(orders, order.String())
		}
		sql += " ORDER BY " + strings.Join(orders, ", ")
	}
	if s.limit > 0 {
		sql += " LIMIT " + placeholder(s.limit)
	}
	if s.offset > 0 {
		sql += " OFFSET " + placeholder(s.offset)
	}
	return sql
}
