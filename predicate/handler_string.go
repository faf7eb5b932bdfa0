package predicate

import (
	"reflect"
	"strings"

	"github.com/queryfilter-go/queryfilter/filter"
)

// stringHandler covers StartsWith and EndsWith.
//
// Matching is ordinal case-insensitive. Non-string properties are
// compared through their canonical string form, so numbers, dates,
// uuids and named types all participate. A null search literal acts
// as the empty string and matches every non-null property; a null
// property never matches. Only the first comparison literal is used,
// extras are ignored.
type stringHandler struct{}

func (stringHandler) name() string { return "string" }

func (stringHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpStartsWith || op == filter.OpEndsWith
}

func (h stringHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	var search string
	if v, ok := c.Values.First(); ok && !v.IsNull() {
		search = strings.ToLower(v.Text())
	}
	prefix := c.Operator == filter.OpStartsWith
	return func(root reflect.Value) bool {
		v, ok := leaf.value(root)
		if !ok {
			return false
		}
		v, ok = derefValue(v)
		if !ok {
			return false
		}
		s := strings.ToLower(stringify(v))
		if prefix {
			return strings.HasPrefix(s, search)
		}
		return strings.HasSuffix(s, search)
	}, nil
}
