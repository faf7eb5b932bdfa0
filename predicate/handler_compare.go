package predicate

import (
	"reflect"

	"github.com/queryfilter-go/queryfilter/filter"
)

// comparisonHandler covers the ordering operators GreaterThan,
// GreaterThanOrEqualTo, LessThan and LessThanOrEqualTo.
//
// The first comparison literal is coerced to the leaf type; extras
// are ignored. When the literal is missing or will not coerce, the
// fragment degrades to always-true, the same leniency applied to an
// unresolvable path.
//
// Null handling differs from the string-oriented families on
// purpose: a nil intermediate or nil leaf pointer does not
// short-circuit, the comparison runs against the leaf type's zero
// value instead. A numeric leaf behind a nil pointer therefore
// compares as 0.
type comparisonHandler struct{}

func (comparisonHandler) name() string { return "comparison" }

func (comparisonHandler) canHandle(op filter.Operator) bool {
	switch op {
	case filter.OpGreaterThan, filter.OpGreaterOrEqual, filter.OpLessThan, filter.OpLessOrEqual:
		return true
	}
	return false
}

func (h comparisonHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	lit, ok := c.Values.First()
	if !ok || lit.IsNull() {
		return constTrue, nil
	}
	target, err := coerceValue(lit, leaf.elem)
	if err != nil {
		return constTrue, nil
	}
	if _, ok := compareValues(reflect.Zero(leaf.elem), target); !ok {
		// Leaf type has no ordering.
		return constTrue, nil
	}

	op := c.Operator
	elem := leaf.elem
	return func(root reflect.Value) bool {
		v, present := leaf.value(root)
		if present {
			v, present = derefValue(v)
		}
		if !present {
			v = reflect.Zero(elem)
		}
		cmp, ok := compareValues(v, target)
		if !ok {
			return true
		}
		switch op {
		case filter.OpGreaterThan:
			return cmp > 0
		case filter.OpGreaterOrEqual:
			return cmp >= 0
		case filter.OpLessThan:
			return cmp < 0
		default:
			return cmp <= 0
		}
	}, nil
}
