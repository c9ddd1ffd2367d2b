package pgqb

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	m := NewTable("users")

	tests := []struct {
		name     string
		build    func() *InsertSQL
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "empty",
			build:   func() *InsertSQL { return m.Insert() },
			wantSQL: "INSERT INTO users",
		},
		{
			name:     "field value pairs",
			build:    func() *InsertSQL { return m.Insert("name", "Alice", "age", 30) },
			wantSQL:  "INSERT INTO users (name, age) VALUES ($1, $2)",
			wantArgs: []interface{}{"Alice", 30},
		},
		{
			name:     "odd pairs ignore trailing field",
			build:    func() *InsertSQL { return m.Insert("name", "Alice", "age") },
			wantSQL:  "INSERT INTO users (name) VALUES ($1)",
			wantArgs: []interface{}{"Alice"},
		},
		{
			name:     "non string field ignored",
			build:    func() *InsertSQL { return m.Insert(1, "x", "name", "Alice") },
			wantSQL:  "INSERT INTO users (name) VALUES ($1)",
			wantArgs: []interface{}{"Alice"},
		},
		{
			name: "fields and values added separately",
			build: func() *InsertSQL {
				return m.Insert().Field("name", "age").Value("Bob", 25)
			},
			wantSQL:  "INSERT INTO users (name, age) VALUES ($1, $2)",
			wantArgs: []interface{}{"Bob", 25},
		},
		{
			name:     "field then value",
			build:    func() *InsertSQL { return NewInsert("publishers").Field("id").Value(5) },
			wantSQL:  "INSERT INTO publishers (id) VALUES ($1)",
			wantArgs: []interface{}{5},
		},
		{
			name: "value fragment",
			build: func() *InsertSQL {
				return m.Insert().Field("location").ValueFragment("ST_MakePoint(?, ?)", 1.5, 2.5)
			},
			wantSQL:  "INSERT INTO users (location) VALUES (ST_MakePoint($1, $2))",
			wantArgs: []interface{}{1.5, 2.5},
		},
		{
			name: "value with functions",
			build: func() *InsertSQL {
				return m.Insert().Field("name", "password").
					Value("Alice").
					ValueWithFunctions("secret", []string{"md5", "left"}, []string{"", "8"})
			},
			wantSQL:  "INSERT INTO users (name, password) VALUES ($1, left(md5($2), 8))",
			wantArgs: []interface{}{"Alice", "secret"},
		},
		{
			name:     "returning",
			build:    func() *InsertSQL { return m.Insert("name", "Alice").Returning("id", "created_at") },
			wantSQL:  "INSERT INTO users (name) VALUES ($1) RETURNING id, created_at",
			wantArgs: []interface{}{"Alice"},
		},
		{
			name: "with",
			build: func() *InsertSQL {
				return m.Insert("name", "Alice").With("defaults", "SELECT 1")
			},
			wantSQL:  "WITH defaults AS (SELECT 1) INSERT INTO users (name) VALUES ($1)",
			wantArgs: []interface{}{"Alice"},
		},
		{
			name: "heterogeneous values",
			build: func() *InsertSQL {
				return m.Insert("price", decimal.RequireFromString("9.99"), "tags", []string{"a", "b"}, "deleted_at", nil)
			},
			wantSQL:  "INSERT INTO users (price, tags, deleted_at) VALUES ($1, $2, $3)",
			wantArgs: []interface{}{decimal.RequireFromString("9.99"), []string{"a", "b"}, nil},
		},
		{
			name: "standalone",
			build: func() *InsertSQL {
				return NewInsert("publishers").Set("name", "Acme")
			},
			wantSQL:  "INSERT INTO publishers (name) VALUES ($1)",
			wantArgs: []interface{}{"Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := tt.build().StringValues()
			if gotSQL != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", gotSQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("Args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestInsertOnConflict(t *testing.T) {
	t.Parallel()
	m := NewTable("users")

	tests := []struct {
		name    string
		build   func() *InsertSQL
		wantSQL string
	}{
		{
			name: "do nothing",
			build: func() *InsertSQL {
				return m.Insert("id", 1, "name", "Alice").OnConflict("id")
			},
			wantSQL: "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		},
		{
			name: "do update",
			build: func() *InsertSQL {
				return m.Insert("id", 1, "name", "Alice", "email", "a@b.c").OnConflict("id", "name", "email")
			},
			wantSQL: "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email",
		},
		{
			name: "composite target",
			build: func() *InsertSQL {
				return m.Insert("a", 1, "b", 2, "c", 3).OnConflict("a, b", "c")
			},
			wantSQL: "INSERT INTO users (a, b, c) VALUES ($1, $2, $3) ON CONFLICT (a, b) DO UPDATE SET c = EXCLUDED.c",
		},
		{
			name: "before returning",
			build: func() *InsertSQL {
				return m.Insert("id", 1).Returning("id").OnConflict("id")
			},
			wantSQL: "INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING RETURNING id",
		},
		{
			name: "last call wins",
			build: func() *InsertSQL {
				return m.Insert("id", 1, "name", "Alice").OnConflict("id", "name").OnConflict("name")
			},
			wantSQL: "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		},
		{
			name: "empty target",
			build: func() *InsertSQL {
				return m.Insert("id", 1).OnConflict("", "id")
			},
			wantSQL: "INSERT INTO users (id) VALUES ($1)",
		},
		{
			name: "update all",
			build: func() *InsertSQL {
				return m.Insert("id", 1, "name", "Alice", "email", "a@b.c").OnConflictUpdateAll("id", "id")
			},
			wantSQL: "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email",
		},
		{
			name: "update all fields added later",
			build: func() *InsertSQL {
				return m.Insert().OnConflictUpdateAll("id", "id").Set("id", 1).Set("name", "Alice")
			},
			wantSQL: "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		},
		{
			name: "update all replaced by on conflict",
			build: func() *InsertSQL {
				return m.Insert("id", 1, "name", "Alice").OnConflictUpdateAll("id").OnConflict("id")
			},
			wantSQL: "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().String()
			if got != tt.wantSQL {
				t.Errorf("String() = %q, want %q", got, tt.wantSQL)
			}
		})
	}
}

// PostgreSQL does not accept WHERE in INSERT statements. The clause is still
// rendered last so that existing callers see the same text.
func TestInsertWhere(t *testing.T) {
	t.Parallel()
	sql, args := NewInsert("users").
		Set("name", "Alice").
		Returning("id").
		WhereEq("org_id", 7).
		WhereNe("name", "root").
		StringValues()
	wantSQL := "INSERT INTO users (name) VALUES ($1) RETURNING id WHERE org_id = $2 AND name <> $3"
	if sql != wantSQL {
		t.Errorf("SQL = %q, want %q", sql, wantSQL)
	}
	wantArgs := []interface{}{"Alice", 7, "root"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("Args = %v, want %v", args, wantArgs)
	}
}

func TestInsertTap(t *testing.T) {
	t.Parallel()
	timestamps := func(s *InsertSQL) *InsertSQL {
		s.AddField("created_at")
		s.AddValue("NOW()")
		return s
	}
	got := NewInsert("users").Set("name", "Alice").Tap(timestamps).String()
	want := "INSERT INTO users (name, created_at) VALUES ($1, NOW())"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
