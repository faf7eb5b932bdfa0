package predicate

import (
	"reflect"

	"github.com/queryfilter-go/queryfilter/filter"
)

// equalityHandler covers EqualTo and NotEqualTo.
//
// The first literal is coerced to the leaf type; a string literal
// against a named type carrying a String method also matches by name,
// case-insensitively. A null literal matches a nil leaf. Nil
// intermediates follow the comparison family's policy and evaluate
// against the leaf type's zero value. An uncoercible literal
// degrades to always-true.
type equalityHandler struct{}

func (equalityHandler) name() string { return "equality" }

func (equalityHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpEqual || op == filter.OpNotEqual
}

func (h equalityHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	negate := c.Operator == filter.OpNotEqual

	lit, ok := c.Values.First()
	if !ok {
		lit = filter.Null()
	}

	if lit.IsNull() {
		return func(root reflect.Value) bool {
			v, present := leaf.value(root)
			null := !present || isNilValue(v)
			return null != negate
		}, nil
	}

	// Probe coercion once at compile time so a literal that can never
	// convert degrades instead of failing per element.
	if _, err := coerceValue(lit, leaf.elem); err != nil {
		if !(lit.Kind() == filter.KindString && implementsStringer(leaf.elem)) {
			return constTrue, nil
		}
	}

	elem := leaf.elem
	return func(root reflect.Value) bool {
		v, present := leaf.value(root)
		if present {
			v, present = derefValue(v)
		}
		if !present {
			v = reflect.Zero(elem)
		}
		equal, err := valueEquals(v, lit)
		if err != nil {
			return true
		}
		return equal != negate
	}, nil
}

func implementsStringer(t reflect.Type) bool {
	return t.Implements(stringerType) || reflect.PointerTo(t).Implements(stringerType)
}
