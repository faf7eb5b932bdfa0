// Package predicate compiles filter criteria into boolean predicates
// over an arbitrary element type.
//
// Dispatch is closed: a fixed, ordered registry of operator families
// (null, string, contains, comparison, equality, range, membership)
// is walked per criterion and the first family claiming the operator
// builds the fragment. Fragments from one criterion set are combined
// with logical AND.
//
// The compiler is deliberately fail-open for per-request input: a
// blank or unresolvable property path compiles to an always-true
// fragment, so an unknown filter matches everything instead of
// failing the request. Setup mistakes are not forgiven the same way:
// unclaimed operators, null range bounds, and unconvertible range or
// membership literals come back as errors.
package predicate

import (
	"reflect"

	"github.com/rs/zerolog/log"

	"github.com/queryfilter-go/queryfilter/filter"
	"github.com/queryfilter-go/queryfilter/internal/fieldpath"
)

// Predicate is a compiled filter over element type T. Predicates hold
// no mutable state and are safe for concurrent use.
type Predicate[T any] func(T) bool

// evaluator is the untyped predicate fragment handlers produce.
type evaluator func(root reflect.Value) bool

func constTrue(reflect.Value) bool  { return true }
func constFalse(reflect.Value) bool { return false }

// leafRef couples a resolved access path with its static leaf type.
type leafRef struct {
	path *fieldpath.Path
	// elem is the leaf type with pointer layers stripped; coercion
	// and comparison always target this type.
	elem reflect.Type
}

func (l *leafRef) value(root reflect.Value) (reflect.Value, bool) {
	return l.path.Value(root)
}

// handler is one operator family. Implementations are stateless and
// shared across compilations.
type handler interface {
	name() string
	canHandle(op filter.Operator) bool
	build(leaf *leafRef, c filter.Criterion) (evaluator, error)
}

// Family names one of the closed operator families, in support of
// assembling partial registries (primarily for tests and embedders
// that want to forbid an operator class outright).
type Family int

const (
	FamilyNull Family = iota
	FamilyString
	FamilyContains
	FamilyComparison
	FamilyEquality
	FamilyRange
	FamilyMembership
)

func familyHandler(f Family) handler {
	switch f {
	case FamilyNull:
		return nullHandler{}
	case FamilyString:
		return stringHandler{}
	case FamilyContains:
		return containsHandler{}
	case FamilyComparison:
		return comparisonHandler{}
	case FamilyEquality:
		return equalityHandler{}
	case FamilyRange:
		return rangeHandler{}
	case FamilyMembership:
		return membershipHandler{}
	}
	return nil
}

// defaultFamilies is the documented registration order. Families are
// disjoint, so order does not change which family wins; it fixes the
// walk all the same.
var defaultFamilies = []Family{
	FamilyNull,
	FamilyString,
	FamilyContains,
	FamilyComparison,
	FamilyEquality,
	FamilyRange,
	FamilyMembership,
}

// Compiler dispatches criteria to a fixed handler registry. The zero
// registry is empty; use NewCompiler for the full default set. A
// Compiler is immutable after construction and safe to share.
type Compiler struct {
	handlers []handler
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithFamilies restricts the registry to the given families, walked
// in the given order.
func WithFamilies(fams ...Family) Option {
	return func(c *Compiler) {
		c.handlers = c.handlers[:0]
		for _, f := range fams {
			if h := familyHandler(f); h != nil {
				c.handlers = append(c.handlers, h)
			}
		}
	}
}

// NewCompiler builds a compiler carrying all families in the default
// order unless options say otherwise.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, f := range defaultFamilies {
		c.handlers = append(c.handlers, familyHandler(f))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCompiler = NewCompiler()

// CompileCriterion compiles one criterion against element type t.
// Handler dispatch happens before path resolution, so an unclaimed
// operator errors even when the path would have been discarded.
func (c *Compiler) CompileCriterion(t reflect.Type, crit filter.Criterion) (func(reflect.Value) bool, error) {
	var h handler
	for _, cand := range c.handlers {
		if cand.canHandle(crit.Operator) {
			h = cand
			break
		}
	}
	if h == nil {
		return nil, &UnsupportedOperatorError{Operator: crit.Operator}
	}

	path, ok := fieldpath.Resolve(derefType(t), crit.Path)
	if !ok {
		log.Debug().
			Str("field", crit.FieldName).
			Str("path", crit.Path).
			Str("operator", crit.Operator.String()).
			Msg("filter path did not resolve, criterion ignored")
		return constTrue, nil
	}

	leaf := &leafRef{path: path, elem: derefType(path.Leaf())}
	return h.build(leaf, crit)
}

// CompileSet compiles every criterion in the set and combines the
// fragments with logical AND. An empty set compiles to always-true.
func (c *Compiler) CompileSet(t reflect.Type, set filter.CriterionSet) (func(reflect.Value) bool, error) {
	if set.Empty() {
		return constTrue, nil
	}
	evals := make([]evaluator, 0, set.Len())
	for _, crit := range set.Criteria {
		ev, err := c.CompileCriterion(t, crit)
		if err != nil {
			return nil, err
		}
		evals = append(evals, ev)
	}
	return func(root reflect.Value) bool {
		for _, ev := range evals {
			if !ev(root) {
				return false
			}
		}
		return true
	}, nil
}

// CompileWith compiles a criterion set into a typed predicate using
// the given compiler.
func CompileWith[T any](c *Compiler, set filter.CriterionSet) (Predicate[T], error) {
	eval, err := c.CompileSet(reflect.TypeFor[T](), set)
	if err != nil {
		return nil, err
	}
	return func(x T) bool { return eval(reflect.ValueOf(x)) }, nil
}

// Compile compiles a criterion set against T using the default
// registry.
func Compile[T any](set filter.CriterionSet) (Predicate[T], error) {
	return CompileWith[T](defaultCompiler, set)
}

// CompileCriterion compiles a single criterion against T using the
// default registry.
func CompileCriterion[T any](crit filter.Criterion) (Predicate[T], error) {
	eval, err := defaultCompiler.CompileCriterion(reflect.TypeFor[T](), crit)
	if err != nil {
		return nil, err
	}
	return func(x T) bool { return eval(reflect.ValueOf(x)) }, nil
}

// Filter applies a compiled criterion set to a slice, returning the
// elements the predicate keeps.
func Filter[T any](set filter.CriterionSet, items []T) ([]T, error) {
	pred, err := Compile[T](set)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out, nil
}
