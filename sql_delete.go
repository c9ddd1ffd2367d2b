package pgqb

type (
	// DeleteSQL is a DELETE statement builder. Create instances using
	// Table.Delete or NewDelete.
	DeleteSQL struct {
		*SQL
		sqlConditions
		sqlReturning
		using []string
	}
)

// Delete builds a DELETE statement.
//
//	var ids []int
//	pgqb.NewTable("reports", conn).Delete().Returning("id").MustQuery(...)
func (t Table) Delete() *DeleteSQL {
	s := &DeleteSQL{
		SQL: t.NewSQL(""),
	}
	s.SQL.main = s
	return s
}

// Adds condition to DELETE FROM statement. Every "?" in condition is replaced
// with the positional parameter of the next value.
func (s *DeleteSQL) Where(condition string, values ...interface{}) *DeleteSQL {
	WhereFragment(s, condition, values...)
	return s
}

// Adds condition to DELETE FROM statement as is.
func (s *DeleteSQL) WhereRaw(condition string) *DeleteSQL {
	s.AddWhere(condition)
	return s
}

// Adds "field = $N" condition to DELETE FROM statement.
func (s *DeleteSQL) WhereEq(field string, value interface{}) *DeleteSQL {
	WhereEq(s, field, value)
	return s
}

// Adds "field <> $N" condition to DELETE FROM statement.
func (s *DeleteSQL) WhereNe(field string, value interface{}) *DeleteSQL {
	WhereNe(s, field, value)
	return s
}

// Adds USING clause to DELETE FROM statement.
func (s *DeleteSQL) Using(list ...string) *DeleteSQL {
	s.using = append(s.using, list...)
	return s
}

// Adds RETURNING clause to DELETE FROM statement.
func (s *DeleteSQL) Returning(fields ...string) *DeleteSQL {
	s.AddReturning(fields...)
	return s
}

// Perform operations on the chain.
func (s *DeleteSQL) Tap(funcs ...func(*DeleteSQL) *DeleteSQL) *DeleteSQL {
	for i := range funcs {
		s = funcs[i](s)
	}
	return s
}

func (s *DeleteSQL) String() string {
	sql := "DELETE FROM " + s.table.name
	sql += listToStr(s.using, " USING ")
	sql += s.where()
	sql += s.returningClause()
	return sql
}
