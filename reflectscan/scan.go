package reflectscan

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/jonwraymond/goinspect/member"
)

// ErrInvalidValue is returned when Scan receives nil or a value the
// reflect package cannot introspect.
var ErrInvalidValue = errors.New("reflectscan: invalid value")

var reflectType = reflect.TypeOf((*reflect.Type)(nil)).Elem()

// Value is a scanned live value implementing member.Target.
type Value struct {
	val     reflect.Value
	members []member.Member
}

// Scan introspects v and returns it as an inspection target. Members
// are enumerated and classified once here; the result never re-probes
// the value.
func Scan(v any) (*Value, error) {
	if v == nil {
		return nil, ErrInvalidValue
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, ErrInvalidValue
	}
	return &Value{val: rv, members: enumerate(rv)}, nil
}

// Name returns "". Live values do not know their binding name; pass a
// hint through report.Options instead.
func (v *Value) Name() string { return "" }

// TypeName returns the value's full type string.
func (v *Value) TypeName() string { return v.val.Type().String() }

// Doc returns "". The reflect package exposes no documentation.
func (v *Value) Doc() string { return "" }

// IsContainer returns false: a live value is never module-like.
func (v *Value) IsContainer() bool { return false }

// Members returns a copy of the snapshot taken at Scan time.
func (v *Value) Members() []member.Member {
	return append([]member.Member(nil), v.members...)
}

// enumerate walks methods first, then the fields or string-keyed map
// entries behind any pointers and interfaces. Method names shadow
// field names on collision since the method set is the outer surface.
func enumerate(rv reflect.Value) []member.Member {
	var out []member.Member
	seen := make(map[string]bool)

	t := rv.Type()
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		out = append(out, member.Member{
			Name:     name,
			Kind:     member.KindCallable,
			TypeName: rv.Method(i).Type().String(),
		})
		seen[name] = true
	}

	elem := rv
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return out
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		et := elem.Type()
		for i := 0; i < et.NumField(); i++ {
			f := et.Field(i)
			if !f.IsExported() || seen[f.Name] {
				continue
			}
			out = append(out, classify(f.Name, elem.Field(i)))
			seen[f.Name] = true
		}
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			iter := elem.MapRange()
			for iter.Next() {
				name := iter.Key().String()
				if seen[name] {
					continue
				}
				out = append(out, classify(name, iter.Value()))
				seen[name] = true
			}
		}
	}
	return out
}

// classify assigns the member kind for one field or map entry. The
// declared type names the member; the dynamic type behind an interface
// decides the kind.
func classify(name string, v reflect.Value) member.Member {
	m := member.Member{Name: name, TypeName: v.Type().String()}

	dyn := v
	if dyn.Kind() == reflect.Interface && !dyn.IsNil() {
		dyn = dyn.Elem()
	}

	// A nil interface never reaches the type case: its static type
	// would satisfy Implements without any value behind it.
	switch {
	case dyn.Kind() != reflect.Interface && dyn.Type().Implements(reflectType):
		m.Kind = member.KindType
		m.Repr = fmt.Sprint(dyn.Interface())
	case dyn.Kind() == reflect.Func:
		m.Kind = member.KindCallable
		m.Repr = repr(dyn)
	default:
		m.Kind = member.KindData
		m.Repr = repr(dyn)
	}
	return m
}

// repr renders a deterministic textual representation where one
// exists. Address-bearing kinds get the opaque "<type 0xaddr>" form
// the report layer knows to truncate.
func repr(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("<%s %#x>", v.Type(), uintptr(v.Pointer()))
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		return "&" + repr(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return repr(v.Elem())
	}
	if !v.CanInterface() {
		return "<" + v.Type().String() + ">"
	}
	return fmt.Sprint(v.Interface())
}
