package predicate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/queryfilter-go/queryfilter/filter"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	uuidType     = reflect.TypeOf(uuid.UUID{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// coerceValue converts a comparison literal to the concrete (pointer-
// stripped) leaf type, so typed comparisons operate on like values.
// "10" against an int property becomes int(10); an ISO string against
// a time.Time property becomes the parsed timestamp.
func coerceValue(v filter.Value, t reflect.Type) (reflect.Value, error) {
	if v.IsNull() {
		return reflect.Value{}, fmt.Errorf("cannot coerce null to %s", t)
	}

	switch t {
	case timeType:
		switch v.Kind() {
		case filter.KindTime:
			return reflect.ValueOf(v.Timestamp()), nil
		case filter.KindString:
			ts, err := cast.ToTimeE(v.Str())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(ts), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot coerce %s to time.Time", v.Kind())
	case uuidType:
		switch v.Kind() {
		case filter.KindUUID:
			return reflect.ValueOf(v.ID()), nil
		case filter.KindString:
			u, err := uuid.Parse(v.Str())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(u), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot coerce %s to uuid.UUID", v.Kind())
	}

	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(v.Text()).Convert(t), nil
	case reflect.Bool:
		switch v.Kind() {
		case filter.KindBool:
			return reflect.ValueOf(v.Boolean()).Convert(t), nil
		case filter.KindString:
			b, err := cast.ToBoolE(v.Str())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(b).Convert(t), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := literalInt(v)
		if err != nil {
			return reflect.Value{}, err
		}
		if reflect.Zero(t).OverflowInt(i) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", i, t)
		}
		return reflect.ValueOf(i).Convert(t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := literalInt(v)
		if err != nil {
			return reflect.Value{}, err
		}
		if i < 0 || reflect.Zero(t).OverflowUint(uint64(i)) {
			return reflect.Value{}, fmt.Errorf("%d out of range for %s", i, t)
		}
		return reflect.ValueOf(uint64(i)).Convert(t), nil
	case reflect.Float32, reflect.Float64:
		f, err := literalFloat(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot coerce %s to %s", v.Kind(), t)
}

func literalInt(v filter.Value) (int64, error) {
	switch v.Kind() {
	case filter.KindNumber:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		f := v.Float64()
		if f == float64(int64(f)) {
			return int64(f), nil
		}
		return 0, fmt.Errorf("%v is not integral", f)
	case filter.KindString:
		return cast.ToInt64E(strings.TrimSpace(v.Str()))
	case filter.KindBool:
		if v.Boolean() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot coerce %s to integer", v.Kind())
}

func literalFloat(v filter.Value) (float64, error) {
	switch v.Kind() {
	case filter.KindNumber:
		return v.Float64(), nil
	case filter.KindString:
		return cast.ToFloat64E(strings.TrimSpace(v.Str()))
	}
	return 0, fmt.Errorf("cannot coerce %s to float", v.Kind())
}

// isNilValue reports whether v holds a nil of a nilable kind. A plain
// empty string is a value, not nil.
func isNilValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// derefValue strips pointers and interfaces. The second result is
// false when a nil is met along the way.
func derefValue(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	return v, true
}

// derefType strips pointer layers from a static type.
func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// stringify renders a (dereferenced) property value in its canonical
// string form so non-string properties can participate in the
// string-oriented handlers.
func stringify(v reflect.Value) string {
	switch v.Type() {
	case timeType:
		return v.Interface().(time.Time).Format(time.RFC3339)
	case uuidType:
		return v.Interface().(uuid.UUID).String()
	}
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v.Interface())
}

// compareValues orders two values of the same dereferenced type.
// The second result is false for types with no defined ordering.
func compareValues(a, b reflect.Value) (int, bool) {
	if a.Type() == timeType {
		at, bt := a.Interface().(time.Time), b.Interface().(time.Time)
		switch {
		case at.Before(bt):
			return -1, true
		case at.After(bt):
			return 1, true
		}
		return 0, true
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpOrdered(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmpOrdered(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmpOrdered(a.Float(), b.Float()), true
	case reflect.String:
		return strings.Compare(a.String(), b.String()), true
	}
	return 0, false
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// valueEquals tests a dereferenced property value against a literal
// after coercion. Named types carrying a String method additionally
// match string literals by their printed name, case-insensitively,
// which is how enum-by-name comparison works here.
func valueEquals(leaf reflect.Value, v filter.Value) (bool, error) {
	coerced, err := coerceValue(v, leaf.Type())
	if err == nil {
		if leaf.Type() == timeType {
			return leaf.Interface().(time.Time).Equal(coerced.Interface().(time.Time)), nil
		}
		return reflect.DeepEqual(leaf.Interface(), coerced.Interface()), nil
	}
	if v.Kind() == filter.KindString && leaf.Type().Implements(stringerType) {
		name := leaf.Interface().(fmt.Stringer).String()
		return strings.EqualFold(name, v.Str()), nil
	}
	return false, err
}
