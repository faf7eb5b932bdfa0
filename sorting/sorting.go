// Package sorting parses sort descriptors out of query-string text
// and applies them to in-memory slices. It shares the filter layer's
// fail-open posture: descriptors that do not parse or do not resolve
// on the element type are discarded, never surfaced as request
// failures.
package sorting

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/queryfilter-go/queryfilter/internal/fieldpath"
)

// Direction orders a sort field.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Field is one parsed sort descriptor: a dotted property path and a
// direction.
type Field struct {
	Name      string
	Direction Direction
}

// Parse reads a comma-joined descriptor list of the form
// field[:asc|:desc], direction tokens case-insensitive and defaulting
// to ascending. Descriptors with an unknown direction token are
// discarded. Blank input yields no descriptors.
func Parse(raw string) []Field {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var fields []Field
	for _, chunk := range strings.Split(raw, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		name, dir, found := strings.Cut(chunk, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f := Field{Name: name}
		if found {
			switch strings.ToLower(strings.TrimSpace(dir)) {
			case "asc":
			case "desc":
				f.Direction = Descending
			default:
				log.Debug().Str("descriptor", chunk).Msg("unknown sort direction, descriptor ignored")
				continue
			}
		}
		fields = append(fields, f)
	}
	return fields
}

// Apply stable-sorts a copy of items by the given descriptors, first
// descriptor most significant. Descriptors that do not resolve on T
// are skipped. Absent values (nil pointer or nil intermediate) order
// after present ones under ascending sort.
func Apply[T any](fields []Field, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(fields) == 0 || len(out) < 2 {
		return out
	}

	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	type key struct {
		path *fieldpath.Path
		desc bool
	}
	var keys []key
	for _, f := range fields {
		p, ok := fieldpath.Resolve(t, f.Name)
		if !ok {
			log.Debug().Str("field", f.Name).Msg("sort field did not resolve, descriptor ignored")
			continue
		}
		keys = append(keys, key{path: p, desc: f.Direction == Descending})
	}
	if len(keys) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range keys {
			cmp := compareAt(k.path, reflect.ValueOf(out[i]), reflect.ValueOf(out[j]))
			if cmp == 0 {
				continue
			}
			if k.desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return out
}

// compareAt orders two elements by one resolved path. Missing values
// compare greater than present ones so they sink under ascending
// order.
func compareAt(p *fieldpath.Path, a, b reflect.Value) int {
	av, aok := leafAt(p, a)
	bv, bok := leafAt(p, b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return compareLeaf(av, bv)
}

func leafAt(p *fieldpath.Path, root reflect.Value) (reflect.Value, bool) {
	v, ok := p.Value(root)
	if !ok {
		return reflect.Value{}, false
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

var timeType = reflect.TypeOf(time.Time{})

func compareLeaf(a, b reflect.Value) int {
	if a.Type() != b.Type() {
		return 0
	}
	if a.Type() == timeType {
		at, bt := a.Interface().(time.Time), b.Interface().(time.Time)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case !a.Bool() && b.Bool():
			return -1
		case a.Bool() && !b.Bool():
			return 1
		}
		return 0
	}
	return 0
}

func cmp[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
