package pgqb

type (
	// Builder is implemented by every statement builder.
	Builder interface {
		// AddParam binds value to the next positional parameter and
		// returns its number.
		AddParam(value interface{}) int

		// String renders the statement. It can be called any number of
		// times.
		String() string

		// StringValues renders the statement and takes its values. It
		// must be called only once, right before the statement is
		// executed.
		StringValues() (string, []interface{})
	}

	// WhereClause is a Builder with a WHERE clause.
	WhereClause interface {
		Builder
		AddWhere(condition string)
	}

	// LimitClause is a Builder with a LIMIT clause.
	LimitClause interface {
		Builder
		SetLimit(count int64)
	}

	// OffsetClause is a Builder with an OFFSET clause.
	OffsetClause interface {
		Builder
		SetOffset(start int64)
	}

	// JoinClause is a Builder that can join other tables.
	JoinClause interface {
		Builder
		AddJoin(join Join)
	}

	// GroupByClause is a Builder with a GROUP BY clause.
	GroupByClause interface {
		Builder
		AddGroupBy(expression string)
	}

	// OrderByClause is a Builder with an ORDER BY clause.
	OrderByClause interface {
		Builder
		AddOrderBy(order Order)
	}

	// SetClause is a Builder with a SET clause.
	SetClause interface {
		Builder
		AddSet(field, expression string)
	}

	// ValuesClause is a Builder with a field list and a VALUES clause.
	ValuesClause interface {
		Builder
		AddField(field string)
		AddValue(expression string)
	}

	// ReturningClause is a Builder with a RETURNING clause.
	ReturningClause interface {
		Builder
		AddReturning(fields ...string)
	}

	// OnConflictClause is a Builder with an ON CONFLICT clause.
	OnConflictClause interface {
		Builder
		SetOnConflict(target string, updateFields []string)
	}

	// WithClause is a Builder that can be prefixed with common table
	// expressions.
	WithClause interface {
		Builder
		AddWith(name, query string)
	}

	// FromClause is a Builder with additional FROM items.
	FromClause interface {
		Builder
		AddFrom(item string)
	}
)

var (
	_ WhereClause   = (*SelectSQL)(nil)
	_ LimitClause   = (*SelectSQL)(nil)
	_ OffsetClause  = (*SelectSQL)(nil)
	_ JoinClause    = (*SelectSQL)(nil)
	_ GroupByClause = (*SelectSQL)(nil)
	_ OrderByClause = (*SelectSQL)(nil)
	_ WithClause    = (*SelectSQL)(nil)

	_ WhereClause      = (*InsertSQL)(nil)
	_ ValuesClause     = (*InsertSQL)(nil)
	_ ReturningClause  = (*InsertSQL)(nil)
	_ OnConflictClause = (*InsertSQL)(nil)
	_ WithClause       = (*InsertSQL)(nil)

	_ WhereClause     = (*UpdateSQL)(nil)
	_ SetClause       = (*UpdateSQL)(nil)
	_ ReturningClause = (*UpdateSQL)(nil)
	_ WithClause      = (*UpdateSQL)(nil)
	_ FromClause      = (*UpdateSQL)(nil)

	_ WhereClause     = (*DeleteSQL)(nil)
	_ ReturningClause = (*DeleteSQL)(nil)
)

// WhereEq adds the condition "field = $N" with value bound to $N.
func WhereEq(b WhereClause, field string, value interface{}) {
	b.AddWhere(field + " = " + placeholder(b.AddParam(value)))
}

// WhereNe adds the condition "field <> $N" with value bound to $N.
func WhereNe(b WhereClause, field string, value interface{}) {
	b.AddWhere(field + " <> " + placeholder(b.AddParam(value)))
}

// WhereFragment adds condition after replacing its "?" markers with
// positional parameters bound to values.
//
//	WhereFragment(b, "age > ? AND age < ?", 18, 28) // age > $1 AND age < $2
func WhereFragment(b WhereClause, condition string, values ...interface{}) {
	b.AddWhere(expandFragment(condition, values, b.AddParam))
}

// Set adds "field = $N" to the SET clause with value bound to $N.
func Set(b SetClause, field string, value interface{}) {
	b.AddSet(field, placeholder(b.AddParam(value)))
}

// SetComputed adds "field = expression" to the SET clause. The expression is
// used as is.
func SetComputed(b SetClause, field, expression string) {
	b.AddSet(field, expression)
}

// Value adds a positional parameter bound to value to the VALUES clause.
func Value(b ValuesClause, value interface{}) {
	b.AddValue(placeholder(b.AddParam(value)))
}

// ValueFragment adds fragment to the VALUES clause after replacing its "?"
// markers with positional parameters bound to values.
//
//	ValueFragment(b, "ST_MakePoint(?, ?)", 1.5, 2.5) // ST_MakePoint($1, $2)
func ValueFragment(b ValuesClause, fragment string, values ...interface{}) {
	b.AddValue(expandFragment(fragment, values, b.AddParam))
}

// ValueWithFunctions adds a positional parameter bound to value, wrapped in
// functions, to the VALUES clause. See Params.WrapValue.
func ValueWithFunctions(b ValuesClause, value interface{}, functions []string, args []string) {
	b.AddValue(wrapFunctions(placeholder(b.AddParam(value)), functions, args))
}
