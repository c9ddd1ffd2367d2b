package pgqb

import (
	"testing"
)

func TestOnConflictClause(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		target string
		update []string
		want   string
	}{
		{"empty target", "", []string{"name"}, ""},
		{"do nothing", "id", nil, " ON CONFLICT (id) DO NOTHING"},
		{"single field", "id", []string{"name"}, " ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"},
		{
			"multiple fields", "email", []string{"name", "age"},
			" ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, age = EXCLUDED.age",
		},
		{"constraint expression", "lower(email)", nil, " ON CONFLICT (lower(email)) DO NOTHING"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onConflictClause(tt.target, tt.update); got != tt.want {
				t.Errorf("onConflictClause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetOnConflictThroughInterface(t *testing.T) {
	t.Parallel()
	var b OnConflictClause = NewInsert("users").Set("id", 1).Set("name", "x")
	b.SetOnConflict("id", []string{"name"})
	want := "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetOnConflictCopiesFields(t *testing.T) {
	t.Parallel()
	fields := []string{"name"}
	s := NewInsert("users").Set("id", 1).Set("name", "x")
	s.SetOnConflict("id", fields)
	fields[0] = "id"
	want := "INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
