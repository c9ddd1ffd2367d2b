package pgqb

import (
	"strings"
)

type (
	// InsertSQL represents an INSERT statement builder. Create instances using
	// Table.Insert or NewInsert.
	InsertSQL struct {
		*SQL
		sqlWith
		sqlConditions
		sqlReturning
		sqlConflict
		fields []string
		values []string
	}
)

// Insert creates an INSERT statement, optionally with field name and value
// pairs.
//
//	users.Insert("name", "Alice", "email", "alice@example.com").MustExecute()
//	// INSERT INTO users (name, email) VALUES ($1, $2)
func (t Table) Insert(fieldValuePairs ...interface{}) *InsertSQL {
	s := &InsertSQL{
		SQL: t.NewSQL(""),
	}
	s.SQL.main = s
	eachPair(fieldValuePairs, func(field string, value interface{}) {
		s.Set(field, value)
	})
	return s
}

// AddField adds field to the field list.
func (s *InsertSQL) AddField(field string) {
	s.fields = append(s.fields, field)
}

// Adds fields to the field list of INSERT statement.
func (s *InsertSQL) Field(fields ...string) *InsertSQL {
	for _, field := range fields {
		s.AddField(field)
	}
	return s
}

// AddValue adds expression to the VALUES clause as is.
func (s *InsertSQL) AddValue(expression string) {
	s.values = append(s.values, expression)
}

// Adds positional parameters bound to values to the VALUES clause.
func (s *InsertSQL) Value(values ...interface{}) *InsertSQL {
	for _, value := range values {
		Value(s, value)
	}
	return s
}

// Adds fragment to the VALUES clause. Every "?" in fragment is replaced with
// the positional parameter of the next value.
//
//	s.Field("location").ValueFragment("ST_MakePoint(?, ?)", 1.5, 2.5)
//	// INSERT INTO places (location) VALUES (ST_MakePoint($1, $2))
func (s *InsertSQL) ValueFragment(fragment string, values ...interface{}) *InsertSQL {
	ValueFragment(s, fragment, values...)
	return s
}

// Adds the positional parameter bound to value, wrapped in functions, to the
// VALUES clause. See Params.WrapValue.
//
//	s.Field("digest").ValueWithFunctions("secret", []string{"md5", "left"}, []string{"", "8"})
//	// INSERT INTO users (digest) VALUES (left(md5($1), 8))
func (s *InsertSQL) ValueWithFunctions(value interface{}, functions []string, args []string) *InsertSQL {
	ValueWithFunctions(s, value, functions, args)
	return s
}

// Adds field to the field list and the positional parameter bound to value to
// the VALUES clause.
func (s *InsertSQL) Set(field string, value interface{}) *InsertSQL {
	s.AddField(field)
	Value(s, value)
	return s
}

// Adds RETURNING clause to INSERT statement.
func (s *InsertSQL) Returning(fields ...string) *InsertSQL {
	s.AddReturning(fields...)
	return s
}

// OnConflict adds ON CONFLICT (target) clause to INSERT statement. Given
// fields are updated with the values of the row proposed for insertion (DO
// UPDATE SET field = EXCLUDED.field), if none is given conflicting rows are
// skipped (DO NOTHING). Only the last call takes effect.
func (s *InsertSQL) OnConflict(target string, updateFields ...string) *InsertSQL {
	s.SetOnConflict(target, updateFields)
	return s
}

// OnConflictUpdateAll is like OnConflict but updates every field of the
// field list except the given ones.
func (s *InsertSQL) OnConflictUpdateAll(target string, except ...string) *InsertSQL {
	s.SetOnConflict(target, nil)
	s.updateAll = true
	s.updateAllExcept = append(s.updateAllExcept, except...)
	return s
}

// Adds WITH to INSERT statement. The query is used as is.
func (s *InsertSQL) With(name, query string) *InsertSQL {
	s.AddWith(name, query)
	return s
}

// Adds condition to INSERT statement, appended after every other clause.
// PostgreSQL rejects INSERT statements with a WHERE clause, Where is only
// kept for compatibility.
func (s *InsertSQL) Where(condition string, values ...interface{}) *InsertSQL {
	WhereFragment(s, condition, values...)
	return s
}

// Adds "field = $N" condition to INSERT statement. See Where.
func (s *InsertSQL) WhereEq(field string, value interface{}) *InsertSQL {
	WhereEq(s, field, value)
	return s
}

// Adds "field <> $N" condition to INSERT statement. See Where.
func (s *InsertSQL) WhereNe(field string, value interface{}) *InsertSQL {
	WhereNe(s, field, value)
	return s
}

// Perform operations on the chain.
func (s *InsertSQL) Tap(funcs ...func(*InsertSQL) *InsertSQL) *InsertSQL {
	for i := range funcs {
		s = funcs[i](s)
	}
	return s
}

func (s *InsertSQL) String() string {
	sql := s.with() + "INSERT INTO " + s.table.name
	if len(s.fields) > 0 {
		sql += " (" + strings.Join(s.fields, ", ") + ")"
	}
	if len(s.values) > 0 {
		sql += " VALUES (" + strings.Join(s.values, ", ") + ")"
	}
	sql += s.onConflict(s.fields)
	sql += s.returningClause()
	sql += s.where()
	return sql
}
