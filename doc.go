// Package pgqb builds PostgreSQL statements and collects the values of their
// positional parameters.
//
// # Overview
//
// SELECT, INSERT, UPDATE and DELETE statements are built incrementally with
// fluent methods. Every method taking a value binds it to the next
// positional parameter ($1, $2, ...) and writes the placeholder into the
// statement, so the rendered SQL and its values always match:
//
//	s := pgqb.NewUpdate("publishers").WhereEq("k", 42).Set("id", 5)
//	sql, args := s.StringValues()
//	// sql:  UPDATE publishers SET id = $2 WHERE k = $1
//	// args: [42 5]
//
// Placeholders are numbered in call order, clauses are always rendered in
// the order PostgreSQL expects them, whatever the call order. Clauses that
// were never used are left out:
//
//	pgqb.NewSelect("users").String() // SELECT * FROM users
//
// # Fragments
//
// Methods like Where, Having, ValueFragment and SetFragment accept SQL
// fragments with "?" markers. Each marker is replaced with the placeholder of
// the next value:
//
//	pgqb.NewSelect("users").Where("age > ? AND age < ?", 18, 28)
//	// SELECT * FROM users WHERE age > $1 AND age < $2
//
// A marker without value is bound to MissingParam (NULL) instead of failing.
// Use WhereRaw when a condition contains a literal "?", for example the jsonb
// operator.
//
// # Upsert
//
//	pgqb.NewInsert("users").Set("id", 1).Set("name", "Alice").
//		OnConflict("id", "name")
//	// INSERT INTO users (id, name) VALUES ($1, $2)
//	// ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
//
// OnConflict without update fields renders DO NOTHING.
//
// # Clause interfaces
//
// Each statement implements the clause interfaces it supports (WhereClause,
// LimitClause, SetClause, ValuesClause, ...). Helpers like WhereEq, Set and
// Value work with any builder implementing the interface they need.
//
// # Execution
//
// The values are taken out of the builder by StringValues, which must be
// called once, right before the statement is executed. Statements created
// from a Table with a github.com/gopsql/db connection can be executed
// directly:
//
//	users := pgqb.NewTable("users", conn, logger.StandardLogger)
//	var id int
//	users.Insert("name", "Alice").Returning("id").MustQueryRow(&id)
//	users.Update("name", "Bob").WhereEq("id", id).MustExecute()
//	users.Delete().WhereEq("id", id).MustExecute()
//
// Any driver supported by github.com/gopsql/db can be used:
//   - github.com/lib/pq via github.com/gopsql/pq
//   - github.com/jackc/pgx via github.com/gopsql/pgx
//   - github.com/go-pg/pg via github.com/gopsql/gopg
package pgqb
