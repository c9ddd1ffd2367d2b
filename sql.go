package pgqb

import (
	"context"
	"strings"

	"github.com/gopsql/db"
	"github.com/pkg/errors"
)

var (
	ErrNoConnection = errors.New("no connection")
)

type (
	// SQL is the state shared by all statements: the table it belongs to
	// and the values of its positional parameters. It can also hold a raw
	// statement, see Table.NewSQL.
	SQL struct {
		main interface {
			String() string
		}
		table  *Table
		sql    string
		params Params
	}
)

// NewSQL creates a raw statement. The statement must already use positional
// parameters $1, $2 and so on, values are bound to them in order.
//
//	var name string
//	pgqb.NewTable("", conn).NewSQL("SELECT current_database()").MustQueryRow(&name)
func (t Table) NewSQL(sql string, values ...interface{}) *SQL {
	s := &SQL{
		table: &t,
		sql:   strings.TrimSpace(sql),
	}
	for _, value := range values {
		s.params.Push(value)
	}
	return s
}

// AddParam binds value to the next positional parameter and returns its
// number.
func (s *SQL) AddParam(value interface{}) int {
	return s.params.Push(value)
}

// Perform operations on the chain.
func (s *SQL) Tap(funcs ...func(*SQL) *SQL) *SQL {
	for i := range funcs {
		s = funcs[i](s)
	}
	return s
}

func (s *SQL) String() string {
	if s.main != nil {
		return s.main.String()
	}
	return s.sql
}

// StringValues returns the statement and the values of its positional
// parameters, the Nth value for $N. The values are taken out of the
// statement, so StringValues (and Execute, Query, QueryRow which call it)
// can be used only once per statement.
func (s *SQL) StringValues() (string, []interface{}) {
	sql := s.String()
	return sql, s.params.Take()
}

// MustQuery is like Query but panics if query operation fails.
func (s *SQL) MustQuery(each func(db.Scannable) error) {
	if err := s.Query(each); err != nil {
		panic(err)
	}
}

// Query executes the statement and calls each for every returned row.
//
//	var ids []int
//	pgqb.NewTable("users", conn).Select("id").Query(func(row db.Scannable) error {
//		var id int
//		if err := row.Scan(&id); err != nil {
//			return err
//		}
//		ids = append(ids, id)
//		return nil
//	})
func (s *SQL) Query(each func(db.Scannable) error) error {
	return s.QueryCtxTx(context.Background(), nil, each)
}

// MustQueryCtxTx is like QueryCtxTx but panics if query operation fails.
func (s *SQL) MustQueryCtxTx(ctx context.Context, tx db.Tx, each func(db.Scannable) error) {
	if err := s.QueryCtxTx(ctx, tx, each); err != nil {
		panic(err)
	}
}

// QueryCtxTx is like Query but executes the statement in the transaction if
// tx is not nil.
func (s *SQL) QueryCtxTx(ctx context.Context, tx db.Tx, each func(db.Scannable) error) error {
	sqlQuery, values, err := s.prepare(tx)
	if err != nil || sqlQuery == "" {
		return err
	}
	var rows db.Rows
	if tx != nil {
		rows, err = tx.QueryContext(ctx, sqlQuery, values...)
	} else {
		rows, err = s.table.connection.Query(sqlQuery, values...)
	}
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := each(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// MustQueryRow is like QueryRow but panics if query row operation fails.
func (s *SQL) MustQueryRow(dest ...interface{}) {
	if err := s.QueryRow(dest...); err != nil {
		panic(err)
	}
}

// QueryRow gets results from the first row, and put values of each column to
// corresponding dest.
//
//	var id int
//	pgqb.NewTable("users", conn).Insert("name", "Alice").Returning("id").MustQueryRow(&id)
func (s *SQL) QueryRow(dest ...interface{}) error {
	return s.QueryRowCtxTx(context.Background(), nil, dest...)
}

// MustQueryRowCtxTx is like QueryRowCtxTx but panics if query row operation
// fails.
func (s *SQL) MustQueryRowCtxTx(ctx context.Context, tx db.Tx, dest ...interface{}) {
	if err := s.QueryRowCtxTx(ctx, tx, dest...); err != nil {
		panic(err)
	}
}

// QueryRowCtxTx is like QueryRow but executes the statement in the
// transaction if tx is not nil.
func (s *SQL) QueryRowCtxTx(ctx context.Context, tx db.Tx, dest ...interface{}) error {
	sqlQuery, values, err := s.prepare(tx)
	if err != nil || sqlQuery == "" {
		return err
	}
	if tx != nil {
		return tx.QueryRowContext(ctx, sqlQuery, values...).Scan(dest...)
	}
	return s.table.connection.QueryRow(sqlQuery, values...).Scan(dest...)
}

// MustExecute is like Execute but panics if execute operation fails.
func (s *SQL) MustExecute(dest ...interface{}) {
	if err := s.Execute(dest...); err != nil {
		panic(err)
	}
}

// Execute executes a statement without returning any rows. You can get number
// of rows affected by providing pointer of int or int64 to the optional dest.
//
//	var rowsAffected int
//	pgqb.NewTable("users", conn).Delete().WhereEq("id", 1).MustExecute(&rowsAffected)
func (s *SQL) Execute(dest ...interface{}) error {
	return s.ExecuteCtxTx(context.Background(), nil, dest...)
}

// MustExecuteCtxTx is like ExecuteCtxTx but panics if execute operation fails.
func (s *SQL) MustExecuteCtxTx(ctx context.Context, tx db.Tx, dest ...interface{}) {
	if err := s.ExecuteCtxTx(ctx, tx, dest...); err != nil {
		panic(err)
	}
}

// ExecuteCtxTx is like Execute but executes the statement in the transaction
// if tx is not nil.
func (s *SQL) ExecuteCtxTx(ctx context.Context, tx db.Tx, dest ...interface{}) error {
	sqlQuery, values, err := s.prepare(tx)
	if err != nil || sqlQuery == "" {
		return err
	}
	if tx != nil {
		return returnRowsAffected(dest)(tx.ExecContext(ctx, sqlQuery, values...))
	}
	return returnRowsAffected(dest)(s.table.connection.Exec(sqlQuery, values...))
}

// prepare takes the statement and its values for one driver call.
func (s *SQL) prepare(tx db.Tx) (string, []interface{}, error) {
	if tx == nil && s.table.connection == nil {
		return "", nil, ErrNoConnection
	}
	sqlQuery, values := s.StringValues()
	if sqlQuery == "" {
		return "", nil, nil
	}
	if c, ok := s.table.connection.(db.ConvertParameters); ok {
		sqlQuery, values = c.ConvertParameters(sqlQuery, values)
	}
	s.table.log(sqlQuery, values)
	return sqlQuery, values, nil
}

func returnRowsAffected(dest []interface{}) func(db.Result, error) error {
	return func(result db.Result, err error) error {
		if err != nil {
			return err
		}
		if len(dest) == 0 {
			return nil
		}
		ra, err := result.RowsAffected()
		if err != nil {
			return err
		}
		switch x := dest[0].(type) {
		case *int:
			*x = int(ra)
		case *int64:
			*x = ra
		}
		return nil
	}
}
