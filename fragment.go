package pgqb

import (
	"regexp"
	"strconv"
	"strings"
)

const marker = '?'

var placeholderRegexp = regexp.MustCompile(`\$(\d+)`)

func placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

// expandFragment numbers the markers of fragment from left to right. push is
// called once per marker and returns the index of the pushed value.
func expandFragment(fragment string, values []interface{}, push func(interface{}) int) string {
	if strings.IndexByte(fragment, marker) == -1 {
		return fragment
	}
	var out strings.Builder
	out.Grow(len(fragment) + 8)
	next := 0
	for i := 0; i < len(fragment); i++ {
		c := fragment[i]
		if c != marker {
			out.WriteByte(c)
			continue
		}
		var value interface{} = MissingParam
		if next < len(values) {
			value = values[next]
		}
		next++
		out.WriteString(placeholder(push(value)))
	}
	return out.String()
}

func wrapFunctions(expr string, functions []string, args []string) string {
	for i, function := range functions {
		if i < len(args) && args[i] != "" {
			expr = function + "(" + expr + ", " + args[i] + ")"
		} else {
			expr = function + "(" + expr + ")"
		}
	}
	return expr
}

// renumberPlaceholders adds offset to every $N in sql.
func renumberPlaceholders(sql string, offset int) string {
	if offset == 0 {
		return sql
	}
	return placeholderRegexp.ReplaceAllStringFunc(sql, func(s string) string {
		num, err := strconv.Atoi(s[1:])
		if err != nil { // this should not happen
			panic(err)
		}
		return placeholder(num + offset)
	})
}

// maxPlaceholder returns the highest N of all $N in sql, 0 if there is none.
func maxPlaceholder(sql string) (max int) {
	for _, m := range placeholderRegexp.FindAllStringSubmatch(sql, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return
}
