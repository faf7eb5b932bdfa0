package predicate

import (
	"fmt"

	"github.com/queryfilter-go/queryfilter/filter"
)

// UnsupportedOperatorError signals a dispatch failure: either no
// registered handler claims the operator, or a handler was asked to
// build an operator outside its declared family. This is a setup bug
// on the caller's side, not a per-request condition.
type UnsupportedOperatorError struct {
	// Handler is the family that rejected the operator, empty when no
	// family claimed it at all.
	Handler  string
	Operator filter.Operator
}

func (e *UnsupportedOperatorError) Error() string {
	if e.Handler == "" {
		return fmt.Sprintf("predicate: no handler supports operator %q", e.Operator)
	}
	return fmt.Sprintf("predicate: %s handler does not support operator %q", e.Handler, e.Operator)
}

// BoundError signals a range criterion whose resolved bounds include
// null. A half-specified range has no sensible default, so this is a
// fatal configuration error rather than a fail-open case.
type BoundError struct {
	Operator filter.Operator
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("predicate: operator %q requires non-null bounds", e.Operator)
}

// ConversionError signals a range or membership literal that cannot
// be converted to the target property's type. The permissive
// always-true degrade applies to the comparison family only; these
// two families fail loudly.
type ConversionError struct {
	Operator filter.Operator
	Literal  string
	Target   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("predicate: operator %q cannot convert %q to %s", e.Operator, e.Literal, e.Target)
}
