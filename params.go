package pgqb

import (
	"database/sql/driver"

	"github.com/pkg/errors"
)

type (
	// Params holds the values bound to the positional parameters of one
	// statement. The Nth pushed value is bound to $N. A Params is consumed by
	// Take and cannot be used afterwards.
	Params struct {
		values   []interface{}
		consumed bool
	}

	missingParam struct{}
)

var (
	// ErrParamsConsumed is the panic value of Push or Take on a Params
	// whose values have already been taken.
	ErrParamsConsumed = errors.New("params already taken")

	// MissingParam is bound to every "?" marker of a fragment that has no
	// corresponding value. It is sent to the database as NULL.
	MissingParam driver.Valuer = missingParam{}
)

func (missingParam) Value() (driver.Value, error) {
	return nil, nil
}

func (missingParam) String() string {
	return "<missing>"
}

// Push adds value to the end of the list and returns its 1-based position,
// which is the number to use in the $N placeholder.
func (p *Params) Push(value interface{}) int {
	if p.consumed {
		panic(ErrParamsConsumed)
	}
	p.values = append(p.values, value)
	return len(p.values)
}

// Replace binds value to the existing position index instead of pushing it.
func (p *Params) Replace(index int, value interface{}) {
	if p.consumed {
		panic(ErrParamsConsumed)
	}
	p.values[index-1] = value
}

// Len returns the number of values pushed so far.
func (p *Params) Len() int {
	return len(p.values)
}

// Take hands the values over to the caller in push order, without copying.
// The values stay reachable for as long as the caller keeps the returned
// slice, so it can be passed straight to the driver call.
func (p *Params) Take() []interface{} {
	if p.consumed {
		panic(ErrParamsConsumed)
	}
	values := p.values
	p.values = nil
	p.consumed = true
	return values
}

// Expand replaces every "?" in fragment with the placeholder of the next
// value, pushing the values in order. Markers without a value are bound to
// MissingParam, values without a marker are dropped.
//
//	var p Params
//	p.Expand("lower(?) = lower(?)", "a", "b") // lower($1) = lower($2)
func (p *Params) Expand(fragment string, values ...interface{}) string {
	return expandFragment(fragment, values, p.Push)
}

// WrapValue pushes value and wraps its placeholder in the functions, the
// first function being the innermost call. The function at position i gets
// args[i] as its last argument, unless args[i] is missing or empty.
//
//	var p Params
//	p.WrapValue("x", []string{"lower", "left"}, []string{"", "3"}) // left(lower($1), 3)
func (p *Params) WrapValue(value interface{}, functions []string, args []string) string {
	return wrapFunctions(placeholder(p.Push(value)), functions, args)
}
