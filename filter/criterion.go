package filter

// Criterion is one parsed filter condition: a display name, a dotted
// property path into the element type, the comparison operator, and
// the deduplicated comparison literals. Criteria are built once (by
// the parser or directly by calling code) and never mutated.
type Criterion struct {
	// FieldName is the caller-facing name, kept for diagnostics and
	// round-tripping. Evaluation only ever uses Path.
	FieldName string
	// Path is the dotted access path, e.g. "Nested.Code". A blank
	// path is legal and compiles to an always-true fragment.
	Path string
	// Operator is the comparison to apply. OpNone never dispatches.
	Operator Operator
	// Values holds the comparison literals, deduplicated in order.
	Values ValueSet
}

// NewCriterion builds a criterion from already-typed literals.
func NewCriterion(fieldName, path string, op Operator, vals ...Value) Criterion {
	return Criterion{
		FieldName: fieldName,
		Path:      path,
		Operator:  op,
		Values:    NewValueSet(vals...),
	}
}

// CriterionSet is a named, insertion-ordered collection of criteria
// parsed from one filter expression. Duplicate criteria are kept;
// only literals inside a single criterion are deduplicated. A set is
// built per request and discarded with it.
type CriterionSet struct {
	// Root is the logical query-string key the set was parsed from,
	// conventionally "filter". The binding layer correlates sets in
	// the request-local store by this name.
	Root     string
	Criteria []Criterion
}

// NewCriterionSet builds a set under the given root name.
func NewCriterionSet(root string, criteria ...Criterion) CriterionSet {
	return CriterionSet{Root: root, Criteria: criteria}
}

// Empty reports whether the set holds no criteria.
func (s CriterionSet) Empty() bool { return len(s.Criteria) == 0 }

// Len reports the number of criteria.
func (s CriterionSet) Len() int { return len(s.Criteria) }
