package pgqb

import (
	"github.com/pkg/errors"
)

// CheckPlaceholders returns an error unless the highest positional parameter
// used in sql is $N where N is the number of args. Useful in tests to make
// sure a statement and its values are consistent.
//
//	sql, args := s.StringValues()
//	if err := pgqb.CheckPlaceholders(sql, args); err != nil {
//		t.Error(err)
//	}
func CheckPlaceholders(sql string, args []interface{}) error {
	if max := maxPlaceholder(sql); max != len(args) {
		return errors.Errorf("statement uses %d positional parameters, %d values given: %s", max, len(args), sql)
	}
	return nil
}

// Call fn for every (string, value) pair of in. Pairs whose first element is
// not a string are ignored, as is a trailing element without value.
func eachPair(in []interface{}, fn func(string, interface{})) {
	for i := 0; i+1 < len(in); i += 2 {
		field, ok := in[i].(string)
		if !ok || field == "" {
			continue
		}
		fn(field, in[i+1])
	}
}
