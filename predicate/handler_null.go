package predicate

import (
	"reflect"

	"github.com/queryfilter-go/queryfilter/filter"
)

// nullHandler covers IsNull and IsNotNull.
//
// Pointer-wrapped values are null when the pointer is nil; slices and
// maps when nil; plain value types never. An empty string is a value,
// not null. A nil intermediate on a nested path makes the missing
// leaf vacuously null: IsNull matches, IsNotNull does not.
type nullHandler struct{}

func (nullHandler) name() string { return "null" }

func (nullHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpIsNull || op == filter.OpIsNotNull
}

func (h nullHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	want := c.Operator == filter.OpIsNull
	return func(root reflect.Value) bool {
		v, ok := leaf.value(root)
		null := !ok || isNilValue(v)
		return null == want
	}, nil
}
