package filter

import "strings"

// Operator identifies one comparison in the filter mini-language.
// The set is closed: parsing only ever produces one of the constants
// below, and the predicate compiler rejects anything else.
type Operator string

const (
	// OpNone is the zero value. A criterion carrying it is never
	// dispatched to a handler.
	OpNone Operator = ""

	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "neq"
	OpGreaterThan    Operator = "gt"
	OpGreaterOrEqual Operator = "gte"
	OpLessThan       Operator = "lt"
	OpLessOrEqual    Operator = "lte"
	OpContains       Operator = "contains"
	OpNotContains    Operator = "ncontains"
	OpStartsWith     Operator = "startswith"
	OpEndsWith       Operator = "endswith"
	OpIn             Operator = "in"
	OpNotIn          Operator = "nin"
	OpBetween        Operator = "between"
	OpNotBetween     Operator = "nbetween"
	OpIsNull         Operator = "isnull"
	OpIsNotNull      Operator = "isnotnull"
)

// operatorAliases maps every accepted query-string token (lower-cased)
// onto its canonical operator. Canonical tokens are included so that
// round-tripping a serialized criterion parses back unchanged.
var operatorAliases = map[string]Operator{
	"eq":          OpEqual,
	"equals":      OpEqual,
	"neq":         OpNotEqual,
	"ne":          OpNotEqual,
	"notequals":   OpNotEqual,
	"gt":          OpGreaterThan,
	"gte":         OpGreaterOrEqual,
	"ge":          OpGreaterOrEqual,
	"lt":          OpLessThan,
	"lte":         OpLessOrEqual,
	"le":          OpLessOrEqual,
	"contains":    OpContains,
	"like":        OpContains,
	"ncontains":   OpNotContains,
	"notcontains": OpNotContains,
	"nlike":       OpNotContains,
	"startswith":  OpStartsWith,
	"endswith":    OpEndsWith,
	"in":          OpIn,
	"nin":         OpNotIn,
	"notin":       OpNotIn,
	"between":     OpBetween,
	"nbetween":    OpNotBetween,
	"notbetween":  OpNotBetween,
	"isnull":      OpIsNull,
	"isnotnull":   OpIsNotNull,
	"notnull":     OpIsNotNull,
}

// ParseOperator resolves a mini-language token to its operator.
// Matching is case-insensitive. The second result is false for tokens
// outside the alias table; OpNone is never returned as a valid match.
func ParseOperator(token string) (Operator, bool) {
	op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(token))]
	return op, ok
}

// Valid reports whether op is one of the closed constants, excluding
// OpNone.
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpNotEqual,
		OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual,
		OpContains, OpNotContains, OpStartsWith, OpEndsWith,
		OpIn, OpNotIn, OpBetween, OpNotBetween,
		OpIsNull, OpIsNotNull:
		return true
	}
	return false
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return string(op)
}
