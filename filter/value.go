package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the literal kinds a comparison value can carry.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindTime
	KindUUID
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	}
	return "unknown"
}

// Value is one comparison literal: a small tagged union over the kinds
// the mini-language can express. The zero value is the null literal.
type Value struct {
	kind     Kind
	str      string
	num      float64
	integer  int64
	integral bool
	boolean  bool
	ts       time.Time
	id       uuid.UUID
}

// Null returns the null literal.
func Null() Value { return Value{kind: KindNull} }

// String wraps a string literal.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int wraps an integer literal.
func Int(i int64) Value {
	return Value{kind: KindNumber, integer: i, num: float64(i), integral: true}
}

// Float wraps a floating-point literal.
func Float(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool wraps a boolean literal.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Time wraps a timestamp literal.
func Time(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// UUID wraps a uuid literal.
func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, id: u} }

// timeLayouts are the accepted textual timestamp forms, most specific
// first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseLiteral types a raw mini-language token. The token "null"
// (case-insensitive) becomes the null literal; otherwise boolean,
// number, timestamp and uuid forms are tried in that order, and
// anything left is kept as a string.
func ParseLiteral(raw string) Value {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time(t)
		}
	}
	if u, err := uuid.Parse(s); err == nil {
		return UUID(u)
	}
	return String(s)
}

// Kind reports the literal kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null literal.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Float64 returns the numeric payload as a float.
func (v Value) Float64() float64 { return v.num }

// Int64 returns the numeric payload as an integer. The second result
// is false when the literal was not written in integral form.
func (v Value) Int64() (int64, bool) { return v.integer, v.integral }

// Boolean returns the boolean payload.
func (v Value) Boolean() bool { return v.boolean }

// Timestamp returns the time payload.
func (v Value) Timestamp() time.Time { return v.ts }

// ID returns the uuid payload.
func (v Value) ID() uuid.UUID { return v.id }

// Text renders the literal in its canonical textual form, the form a
// scalar property is compared against in the string-oriented handlers.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.str
	case KindNumber:
		if v.integral {
			return strconv.FormatInt(v.integer, 10)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	case KindUUID:
		return v.id.String()
	}
	return ""
}

// Equal reports literal equality: same kind, same payload. Integral
// and fractional numbers compare by their float form, so Int(10) and
// Float(10) are equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.boolean == o.boolean
	case KindTime:
		return v.ts.Equal(o.ts)
	case KindUUID:
		return v.id == o.id
	}
	return false
}

// ValueSet is an ordered, deduplicated collection of comparison
// literals. Insertion order is preserved; adding a literal equal to an
// existing one is a no-op. The set semantic is deliberate and has a
// documented consequence for Between bounds: Between(10,10) collapses
// to a single value and therefore never matches.
type ValueSet struct {
	items []Value
}

// NewValueSet builds a set from vals, deduplicating in order.
func NewValueSet(vals ...Value) ValueSet {
	var s ValueSet
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add appends v unless an equal literal is already present.
func (s *ValueSet) Add(v Value) {
	for _, e := range s.items {
		if e.Equal(v) {
			return
		}
	}
	s.items = append(s.items, v)
}

// Len reports the number of distinct literals.
func (s ValueSet) Len() int { return len(s.items) }

// Values returns the literals in insertion order. The returned slice
// must not be mutated.
func (s ValueSet) Values() []Value { return s.items }

// First returns the first literal, if any.
func (s ValueSet) First() (Value, bool) {
	if len(s.items) == 0 {
		return Value{}, false
	}
	return s.items[0], true
}
