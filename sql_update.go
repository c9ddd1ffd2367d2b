package pgqb

type (
	// UpdateSQL is an UPDATE statement builder. Create instances using
	// Table.Update or NewUpdate.
	UpdateSQL struct {
		*SQL
		sqlWith
		sqlConditions
		sqlReturning
		sets []string
		from []string
	}
)

// Update builds an UPDATE statement, optionally with field name and value
// pairs.
//
//	var rowsAffected int
//	users.Update("name", "Bob").WhereEq("id", 1).MustExecute(&rowsAffected)
//	// UPDATE users SET name = $1 WHERE id = $2
func (t Table) Update(fieldValuePairs ...interface{}) *UpdateSQL {
	s := &UpdateSQL{
		SQL: t.NewSQL(""),
	}
	s.SQL.main = s
	eachPair(fieldValuePairs, func(field string, value interface{}) {
		s.Set(field, value)
	})
	return s
}

// AddSet adds "field = expression" to the SET clause.
func (s *UpdateSQL) AddSet(field, expression string) {
	s.sets = append(s.sets, field+" = "+expression)
}

// Adds "field = $N" to UPDATE statement.
func (s *UpdateSQL) Set(field string, value interface{}) *UpdateSQL {
	Set(s, field, value)
	return s
}

// Adds "field = expression" to UPDATE statement, expression is used as is.
//
//	s.SetComputed("updated_at", "NOW()")
func (s *UpdateSQL) SetComputed(field, expression string) *UpdateSQL {
	SetComputed(s, field, expression)
	return s
}

// Adds "field = fragment" to UPDATE statement. Every "?" in fragment is
// replaced with the positional parameter of the next value.
//
//	s.SetFragment("views", "views + ?", 1) // SET views = views + $1
func (s *UpdateSQL) SetFragment(field, fragment string, values ...interface{}) *UpdateSQL {
	s.AddSet(field, s.params.Expand(fragment, values...))
	return s
}

// AddFrom adds item to the FROM clause.
func (s *UpdateSQL) AddFrom(item string) {
	s.from = append(s.from, item)
}

// Adds FROM items to UPDATE statement.
func (s *UpdateSQL) From(items ...string) *UpdateSQL {
	for _, item := range items {
		s.AddFrom(item)
	}
	return s
}

// Adds RETURNING clause to UPDATE statement. The clause is rendered before
// WHERE, which PostgreSQL does not accept, so use it only on statements
// without conditions.
func (s *UpdateSQL) Returning(fields ...string) *UpdateSQL {
	s.AddReturning(fields...)
	return s
}

// Adds WITH to UPDATE statement. The query is used as is.
func (s *UpdateSQL) With(name, query string) *UpdateSQL {
	s.AddWith(name, query)
	return s
}

// Adds condition to UPDATE statement. Every "?" in condition is replaced with
// the positional parameter of the next value.
func (s *UpdateSQL) Where(condition string, values ...interface{}) *UpdateSQL {
	WhereFragment(s, condition, values...)
	return s
}

// Adds condition to UPDATE statement as is.
func (s *UpdateSQL) WhereRaw(condition string) *UpdateSQL {
	s.AddWhere(condition)
	return s
}

// Adds "field = $N" condition to UPDATE statement.
func (s *UpdateSQL) WhereEq(field string, value interface{}) *UpdateSQL {
	WhereEq(s, field, value)
	return s
}

// Adds "field <> $N" condition to UPDATE statement.
func (s *UpdateSQL) WhereNe(field string, value interface{}) *UpdateSQL {
	WhereNe(s, field, value)
	return s
}

// Perform operations on the chain.
func (s *UpdateSQL) Tap(funcs ...func(*UpdateSQL) *UpdateSQL) *UpdateSQL {
	for i := range funcs {
		s = funcs[i](s)
	}
	return s
}

func (s *UpdateSQL) String() string {
	sql := s.with() + "UPDATE " + s.table.name
	sql += listToStr(s.sets, " SET ")
	sql += listToStr(s.from, " FROM ")
	sql += s.returningClause()
	sql += s.where()
	return sql
}
