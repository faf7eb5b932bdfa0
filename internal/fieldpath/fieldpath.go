// Package fieldpath resolves dotted access paths ("Nested.Code") over
// struct types, with pointer dereferencing and null-safe navigation.
// It backs both predicate compilation and in-memory sorting.
package fieldpath

import (
	"reflect"
	"strings"
)

// Path is a resolved access path: a fixed chain of struct field
// indices leading from the root type to the leaf field. Resolution
// happens once per compilation; evaluation is a cheap index walk.
type Path struct {
	steps []int
	leaf  reflect.Type
}

// Resolve walks the dotted path over t, matching exported field names
// case-insensitively and looking through pointers at every hop. The
// second result is false when the path is blank or any segment does
// not name a field on the (possibly nested) type.
func Resolve(t reflect.Type, path string) (*Path, bool) {
	if strings.TrimSpace(path) == "" {
		return nil, false
	}
	p := &Path{}
	cur := t
	for _, seg := range strings.Split(path, ".") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, false
		}
		for cur.Kind() == reflect.Pointer {
			cur = cur.Elem()
		}
		if cur.Kind() != reflect.Struct {
			return nil, false
		}
		f, ok := findField(cur, seg)
		if !ok {
			return nil, false
		}
		p.steps = append(p.steps, f.Index[0])
		cur = f.Type
	}
	p.leaf = cur
	return p, true
}

// findField matches seg against the exported fields declared directly
// on t, exact name first and case-insensitive second. Promoted fields
// are not searched; embedded structs are addressed segment by segment.
func findField(t reflect.Type, seg string) (reflect.StructField, bool) {
	var fold reflect.StructField
	var foldOK bool
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Name == seg {
			return f, true
		}
		if !foldOK && strings.EqualFold(f.Name, seg) {
			fold, foldOK = f, true
		}
	}
	return fold, foldOK
}

// Leaf is the static type of the final field, pointers included.
func (p *Path) Leaf() reflect.Type { return p.leaf }

// Value walks the path over root. The second result is false when a
// nil pointer is met before the leaf field is reached; the leaf value
// itself may still be a nil pointer, slice, or map with ok true.
func (p *Path) Value(root reflect.Value) (reflect.Value, bool) {
	v := root
	for _, idx := range p.steps {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(idx)
	}
	return v, true
}
