package predicate

import (
	"reflect"

	"github.com/queryfilter-go/queryfilter/filter"
)

// membershipHandler covers In and NotIn.
//
// The fragment is a disjunction of equality tests across the full
// deduplicated literal set, each literal coerced to the leaf type.
// String literals match named types by their printed name, which is
// how enum values are written in query strings. A null literal
// matches a nil leaf, so null can be listed explicitly. An empty
// literal set means In matches nothing and NotIn matches everything.
// A literal that neither coerces nor names a String-able type is a
// configuration error.
type membershipHandler struct{}

func (membershipHandler) name() string { return "membership" }

func (membershipHandler) canHandle(op filter.Operator) bool {
	return op == filter.OpIn || op == filter.OpNotIn
}

func (h membershipHandler) build(leaf *leafRef, c filter.Criterion) (evaluator, error) {
	if !h.canHandle(c.Operator) {
		return nil, &UnsupportedOperatorError{Handler: h.name(), Operator: c.Operator}
	}
	negate := c.Operator == filter.OpNotIn

	vals := c.Values.Values()
	if len(vals) == 0 {
		if negate {
			return constTrue, nil
		}
		return constFalse, nil
	}

	var matchNull bool
	lits := make([]filter.Value, 0, len(vals))
	for _, v := range vals {
		if v.IsNull() {
			matchNull = true
			continue
		}
		if _, err := coerceValue(v, leaf.elem); err != nil {
			if v.Kind() == filter.KindString && implementsStringer(leaf.elem) {
				lits = append(lits, v)
				continue
			}
			return nil, &ConversionError{Operator: c.Operator, Literal: v.Text(), Target: leaf.elem.String()}
		}
		lits = append(lits, v)
	}

	return func(root reflect.Value) bool {
		v, present := leaf.value(root)
		null := !present || isNilValue(v)
		if null {
			return matchNull != negate
		}
		v, _ = derefValue(v)
		for _, lit := range lits {
			if equal, err := valueEquals(v, lit); err == nil && equal {
				return !negate
			}
		}
		return negate
	}, nil
}
