package predicate

import (
	"reflect"
	"strings"

	"github.com/queryfilter-go/queryfilter/filter"
)

// containsHandler covers Contains and NotContains.
//
// Three target shapes, decided at compile time from the leaf type:
//
//   - string: case-insensitive substring test. A null property makes
//     Contains false and NotContains true; an empty search literal
//     matches every non-null string, the empty string included.
//   - slice or array (strings excepted): element membership using the
//     element type's equality after coercing the literal. A nil or
//     empty collection makes Contains false and NotContains true.
//   - any other scalar: the property's canonical string form takes
//     the substring test, so "42" is found inside int(42).
//
// Only the first comparison literal is consulted. A literal that
// cannot be coerced to the collection's element type degrades the
// fragment to always-true, same as an unresolvable path.
type containsHandler struct{}

func (containsHandler) name() string { return "contains" }

func (containsHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpContains || op == filter.OpNotContains
}

func (h containsHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	negate := c.Operator == filter.OpNotContains

	if k := leaf.elem.Kind(); (k == reflect.Slice || k == reflect.Array) && leaf.elem.Elem().Kind() != reflect.Uint8 {
		return h.buildCollection(leaf, c, negate)
	}
	return h.buildSubstring(leaf, c, negate), nil
}

func (containsHandler) buildSubstring(leaf *leafRef, c filter.Criterion, negate bool) evaluator {
	var search string
	if v, ok := c.Values.First(); ok && !v.IsNull() {
		search = strings.ToLower(v.Text())
	}
	return func(root reflect.Value) bool {
		v, ok := leaf.value(root)
		if ok {
			v, ok = derefValue(v)
		}
		if !ok {
			// Null property: contains nothing.
			return negate
		}
		found := strings.Contains(strings.ToLower(stringify(v)), search)
		return found != negate
	}
}

func (containsHandler) buildCollection(leaf *leafRef, c filter.Criterion, negate bool) (evaluator, error) {
	elemType := derefType(leaf.elem.Elem())

	v, ok := c.Values.First()
	if !ok {
		v = filter.Null()
	}

	var match func(el reflect.Value) bool
	if v.IsNull() {
		match = func(el reflect.Value) bool { return isNilValue(el) }
	} else {
		coerced, err := coerceValue(v, elemType)
		if err != nil {
			return constTrue, nil
		}
		target := coerced.Interface()
		match = func(el reflect.Value) bool {
			el, ok := derefValue(el)
			if !ok {
				return false
			}
			return reflect.DeepEqual(el.Interface(), target)
		}
	}

	return func(root reflect.Value) bool {
		v, ok := leaf.value(root)
		if ok {
			v, ok = derefValue(v)
		}
		if !ok || v.Len() == 0 {
			return negate
		}
		for i := 0; i < v.Len(); i++ {
			if match(v.Index(i)) {
				return !negate
			}
		}
		return negate
	}, nil
}
