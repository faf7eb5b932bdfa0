package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInput is returned when the raw filter text is empty or
// whitespace. Callers treat it as "no filter applied", never as a
// request failure.
var ErrNoInput = errors.New("filter: no input")

// UnknownOperatorError reports a token in operator position that is
// outside the alias table.
type UnknownOperatorError struct {
	Token string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("filter: unknown operator token %q", e.Token)
}

// MalformedCriterionError reports a fragment that cannot be read as
// field:operator[:values] and cannot continue a preceding criterion's
// value list.
type MalformedCriterionError struct {
	Fragment string
}

func (e *MalformedCriterionError) Error() string {
	return fmt.Sprintf("filter: malformed criterion %q", e.Fragment)
}

// CriteriaParser converts one raw query-string fragment into a
// criterion set. Custom implementations can be injected into the
// binding layer; failures there are contained, not propagated.
type CriteriaParser interface {
	Parse(root, raw string) (CriterionSet, error)
}

// Parser is the default mini-language parser.
//
// Grammar: criteria are joined by commas, each written as
// field:operator:value[,value...]. The operator token is matched
// case-insensitively against the alias table. Comma-separated chunks
// after a criterion that carry no colon extend that criterion's value
// list, which is how multi-value operators (in, between) are written.
// Timestamp values contain colons of their own; a chunk whose
// operator position does not hold a known token but which reads as a
// timestamp literal is likewise treated as a continuation value.
//
// Parsing is a pure function of its input and never panics; all
// failures come back as error values.
type Parser struct{}

// NewParser returns the default parser.
func NewParser() *Parser { return &Parser{} }

// Parse reads raw into a criterion set named root. Blank input yields
// ErrNoInput with an empty, root-named set, so callers can use the
// set regardless of the verdict.
func (p *Parser) Parse(root, raw string) (CriterionSet, error) {
	set := NewCriterionSet(root)
	if strings.TrimSpace(raw) == "" {
		return set, ErrNoInput
	}

	var cur *Criterion
	for _, chunk := range strings.Split(raw, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		if cur != nil && isContinuation(chunk) {
			cur.Values.Add(ParseLiteral(chunk))
			continue
		}

		parts := strings.SplitN(chunk, ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			return NewCriterionSet(root), &MalformedCriterionError{Fragment: chunk}
		}
		op, ok := ParseOperator(parts[1])
		if !ok {
			return NewCriterionSet(root), &UnknownOperatorError{Token: parts[1]}
		}

		field := strings.TrimSpace(parts[0])
		c := Criterion{FieldName: field, Path: field, Operator: op}
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			c.Values.Add(ParseLiteral(parts[2]))
		}
		set.Criteria = append(set.Criteria, c)
		cur = &set.Criteria[len(set.Criteria)-1]
	}
	return set, nil
}

// isContinuation decides whether a chunk extends the current value
// list rather than opening a new criterion.
func isContinuation(chunk string) bool {
	if !strings.Contains(chunk, ":") {
		return true
	}
	parts := strings.SplitN(chunk, ":", 3)
	if len(parts) >= 2 {
		if _, ok := ParseOperator(parts[1]); ok {
			return false
		}
	}
	// Colons without an operator token: a timestamp value.
	return ParseLiteral(chunk).Kind() == KindTime
}
