package show

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Fprint evaluates a semicolon-separated string of expressions against
// scope and writes one echoed line per clause to w. See the package
// documentation for the clause affixes. The first failing clause stops
// the run; earlier output stays written.
func Fprint(w io.Writer, scope Scope, input string) error {
	ev := NewEvaluator(scope)
	for _, clause := range strings.Split(input, ";") {
		clause = strings.TrimSpace(clause)

		unpack := strings.HasPrefix(clause, "*")
		if unpack {
			clause = clause[1:]
		}
		tail := " ➤ "
		if strings.HasSuffix(clause, "#") {
			tail = " ➤\n"
			clause = clause[:len(clause)-1]
		}
		clause = strings.TrimSpace(clause)

		if clause == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		val, err := ev.Eval(clause)
		if err != nil {
			return err
		}
		echo := clause
		if unpack {
			echo = "*" + clause
		}
		if _, err := io.WriteString(w, echo+tail); err != nil {
			return err
		}

		if unpack {
			items, err := unpackItems(val)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, items...); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, val); err != nil {
			return err
		}
	}
	return nil
}

// unpackItems flattens a slice or array into its elements and a map
// into its keys, sorted by their printed form so the output is stable.
func unpackItems(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = k.Interface()
		}
		sort.Slice(out, func(i, j int) bool {
			return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
		})
		return out, nil
	}
	return nil, fmt.Errorf("show: cannot unpack %T", v)
}
