package predicate

import (
	"reflect"

	"github.com/queryfilter-go/queryfilter/filter"
)

// rangeHandler covers Between and NotBetween.
//
// Bounds are exclusive: Between(low, high) is
// value > low AND value < high, and NotBetween is its complement
// value < low OR value > high. Boundary values satisfy neither.
// Reversed bounds are not swapped; Between then never matches and
// NotBetween always does, a direct consequence of the formula.
//
// Because criterion literals live in a deduplicated set, equal bounds
// collapse to a single value: Between(10,10) leaves one literal and
// the fragment is always-false. Fewer than two literals always
// compile to always-false rather than an error. With two or more
// literals present, a null bound or a bound that will not coerce to
// the leaf type is a configuration error and fails compilation.
type rangeHandler struct{}

func (rangeHandler) name() string { return "range" }

func (rangeHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpBetween || op == filter.OpNotBetween
}

func (h rangeHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	vals := c.Values.Values()
	if len(vals) < 2 {
		return constFalse, nil
	}
	lowLit, highLit := vals[0], vals[1]
	if lowLit.IsNull() || highLit.IsNull() {
		return nil, &BoundError{Operator: c.Operator}
	}
	low, err := coerceValue(lowLit, leaf.elem)
	if err != nil {
		return nil, &ConversionError{Operator: c.Operator, Literal: lowLit.Text(), Target: leaf.elem.String()}
	}
	high, err := coerceValue(highLit, leaf.elem)
	if err != nil {
		return nil, &ConversionError{Operator: c.Operator, Literal: highLit.Text(), Target: leaf.elem.String()}
	}
	if _, ok := compareValues(low, high); !ok {
		return nil, &ConversionError{Operator: c.Operator, Literal: lowLit.Text(), Target: leaf.elem.String()}
	}

	inside := c.Operator == filter.OpBetween
	elem := leaf.elem
	return func(root reflect.Value) bool {
		v, present := leaf.value(root)
		if present {
			v, present = derefValue(v)
		}
		if !present {
			v = reflect.Zero(elem)
		}
		cmpLow, _ := compareValues(v, low)
		cmpHigh, _ := compareValues(v, high)
		if inside {
			return cmpLow > 0 && cmpHigh < 0
		}
		return cmpLow < 0 || cmpHigh > 0
	}, nil
}
