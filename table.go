package pgqb

import (
	"github.com/gopsql/db"
	"github.com/gopsql/logger"
)

type (
	// Table is the target of the statements it creates. It also holds the
	// database connection and the logger used when the statements are
	// executed.
	Table struct {
		name       string
		connection db.DB
		logger     logger.Logger
	}
)

// DefaultLogger is the logger of tables created by NewTable when no logger
// is passed in the options. Default is nil, which logs nothing.
var DefaultLogger logger.Logger = nil

// NewTable creates a Table by its name. For available options, see
// SetOptions().
//
//	users := pgqb.NewTable("users", conn, logger.StandardLogger)
func NewTable(name string, options ...interface{}) (t *Table) {
	t = &Table{
		name:   name,
		logger: DefaultLogger,
	}
	t.SetOptions(options...)
	return
}

// NewSelect creates a SELECT statement on a table without a connection.
func NewSelect(table string, columns ...string) *SelectSQL {
	return NewTable(table).Select(columns...)
}

// NewInsert creates an INSERT statement on a table without a connection.
func NewInsert(table string) *InsertSQL {
	return NewTable(table).Insert()
}

// NewUpdate creates an UPDATE statement on a table without a connection.
func NewUpdate(table string) *UpdateSQL {
	return NewTable(table).Update()
}

// NewDelete creates a DELETE statement on a table without a connection.
func NewDelete(table string) *DeleteSQL {
	return NewTable(table).Delete()
}

func (t Table) String() string {
	return `table "` + t.name + `"`
}

// Name of the table.
func (t Table) Name() string {
	return t.name
}

// Clone returns a copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		name:       t.name,
		connection: t.connection,
		logger:     t.logger,
	}
}

// Quiet returns a copy of the table without logger.
func (t *Table) Quiet() *Table {
	return t.Clone().SetLogger(nil)
}

// SetOptions sets database connection (see SetConnection()) and/or logger (see
// SetLogger()).
func (t *Table) SetOptions(options ...interface{}) *Table {
	for _, option := range options {
		switch o := option.(type) {
		case db.DB:
			t.SetConnection(o)
		case logger.Logger:
			t.SetLogger(o)
		}
	}
	return t
}

// Return database connection for the table.
func (t *Table) Connection() db.DB {
	return t.connection
}

// Set a database connection for the table. ErrNoConnection is returned when
// executing statements of a table without connection.
func (t *Table) SetConnection(db db.DB) *Table {
	t.connection = db
	return t
}

// Set the logger for the table. Use logger.StandardLogger if you want to use
// Go's built-in standard logging package. By default, no logger is used, so
// the SQL statements are not printed to the console.
func (t *Table) SetLogger(logger logger.Logger) *Table {
	t.logger = logger
	return t
}

func (t Table) log(sql string, args []interface{}) {
	if t.logger == nil {
		return
	}
	if len(args) == 0 {
		t.logger.Debug(sql)
		return
	}
	t.logger.Debug(sql, args)
}
