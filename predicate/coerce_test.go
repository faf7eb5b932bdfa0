package predicate

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryfilter-go/queryfilter/filter"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		value    filter.Value
		target   reflect.Type
		expected any
		wantErr  bool
	}{
		{name: "string to int", value: filter.String("10"), target: reflect.TypeOf(0), expected: 10},
		{name: "number to float", value: filter.Int(10), target: reflect.TypeOf(0.0), expected: 10.0},
		{name: "fractional to int fails", value: filter.Float(10.5), target: reflect.TypeOf(0), wantErr: true},
		{name: "negative to uint fails", value: filter.Int(-1), target: reflect.TypeOf(uint(0)), wantErr: true},
		{name: "int overflow", value: filter.Int(300), target: reflect.TypeOf(int8(0)), wantErr: true},
		{name: "string to bool", value: filter.String("true"), target: reflect.TypeOf(false), expected: true},
		{name: "number keeps named type", value: filter.Int(1), target: reflect.TypeOf(StatusActive), expected: StatusActive},
		{name: "null never coerces", value: filter.Null(), target: reflect.TypeOf(""), wantErr: true},
		{name: "word to int fails", value: filter.String("abc"), target: reflect.TypeOf(0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceValue(tt.value, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.Interface())
		})
	}
}

func TestCoerceValue_Time(t *testing.T) {
	target := reflect.TypeOf(time.Time{})

	got, err := coerceValue(filter.String("2026-01-15T10:30:00Z"), target)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC), got.Interface())

	_, err = coerceValue(filter.Bool(true), target)
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "42", stringify(reflect.ValueOf(42)))
	assert.Equal(t, "2.5", stringify(reflect.ValueOf(2.5)))
	assert.Equal(t, "true", stringify(reflect.ValueOf(true)))
	assert.Equal(t, "Active", stringify(reflect.ValueOf(StatusActive)), "named types print their name")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", stringify(reflect.ValueOf(sampleRef)))
}
