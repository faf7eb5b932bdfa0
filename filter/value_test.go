package filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Kind
	}{
		{name: "null keyword", raw: "null", expected: KindNull},
		{name: "null keyword upper", raw: "NULL", expected: KindNull},
		{name: "true", raw: "true", expected: KindBool},
		{name: "false", raw: "false", expected: KindBool},
		{name: "integer", raw: "42", expected: KindNumber},
		{name: "negative integer", raw: "-7", expected: KindNumber},
		{name: "float", raw: "3.25", expected: KindNumber},
		{name: "date only", raw: "2026-01-15", expected: KindTime},
		{name: "rfc3339", raw: "2026-01-15T10:30:00Z", expected: KindTime},
		{name: "local timestamp", raw: "2026-01-15T10:30:00", expected: KindTime},
		{name: "uuid", raw: "550e8400-e29b-41d4-a716-446655440000", expected: KindUUID},
		{name: "plain string", raw: "john", expected: KindString},
		{name: "almost a number", raw: "42abc", expected: KindString},
		{name: "whitespace trimmed", raw: "  7  ", expected: KindNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLiteral(tt.raw).Kind())
		})
	}
}

func TestParseLiteral_Payloads(t *testing.T) {
	i, integral := ParseLiteral("42").Int64()
	require.True(t, integral)
	assert.Equal(t, int64(42), i)

	assert.InDelta(t, 3.25, ParseLiteral("3.25").Float64(), 1e-9)
	assert.True(t, ParseLiteral("true").Boolean())

	ts := ParseLiteral("2026-01-15").Timestamp()
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), ts)

	u := ParseLiteral("550e8400-e29b-41d4-a716-446655440000").ID()
	assert.Equal(t, uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), u)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(10).Equal(Int(10)))
	assert.True(t, Int(10).Equal(Float(10)), "integral and fractional forms of the same number are one literal")
	assert.False(t, Int(10).Equal(Int(11)))
	assert.False(t, String("10").Equal(Int(10)), "kinds do not cross-match")
	assert.True(t, Null().Equal(Null()))

	cet := time.FixedZone("CET", 3600)
	utc := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Time(utc).Equal(Time(utc.In(cet))), "time equality ignores location")
}

func TestValueSet_Dedupe(t *testing.T) {
	s := NewValueSet(Int(10), Int(20), Int(10), String("a"), String("a"))
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []Value{Int(10), Int(20), String("a")}, s.Values())
}

// Supplying equal Between bounds collapses them to one literal. The
// range handler then compiles to always-false; the collapse itself
// happens here.
func TestValueSet_BoundCollapse(t *testing.T) {
	s := NewValueSet(Int(10), Int(10))
	assert.Equal(t, 1, s.Len())
}

func TestValueSet_First(t *testing.T) {
	var empty ValueSet
	_, ok := empty.First()
	assert.False(t, ok)

	s := NewValueSet(String("x"), String("y"))
	v, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, "x", v.Str())
}
