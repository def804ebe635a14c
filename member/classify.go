package member

import (
	"errors"
	"sort"
	"strings"
)

// ErrNilTarget is returned when a nil Target reaches Classify.
var ErrNilTarget = errors.New("member: nil target")

// DefaultReserved hides names with the conventional private marker.
var DefaultReserved = Reserved("_")

// Reserved builds a predicate that reports whether a member name is
// reserved, meaning it starts with the given marker. An empty marker
// reserves nothing.
func Reserved(marker string) func(string) bool {
	return func(name string) bool {
		return marker != "" && strings.HasPrefix(name, marker)
	}
}

// Classified holds the four partitioned member lists, each sorted by
// name ascending, case-sensitive. The lists are pairwise disjoint and
// their union is exactly the filtered member set.
type Classified struct {
	Modules   []Member
	Types     []Member
	Data      []Member
	Callables []Member
}

// Total returns the number of members across all four lists.
func (c Classified) Total() int {
	return len(c.Modules) + len(c.Types) + len(c.Data) + len(c.Callables)
}

// Names lists the member names of all four buckets in render order:
// modules, types, data, callables.
func (c Classified) Names() []string {
	names := make([]string, 0, c.Total())
	for _, list := range [][]Member{c.Modules, c.Types, c.Data, c.Callables} {
		for _, m := range list {
			names = append(names, m.Name)
		}
	}
	return names
}

// Classify enumerates t's members, drops the ones the reserved
// predicate matches, and partitions the rest by kind. A nil predicate
// filters nothing. Unknown kind values land in Data, so classification
// itself cannot fail; only a nil target is an error.
func Classify(t Target, reserved func(string) bool) (Classified, error) {
	if t == nil {
		return Classified{}, ErrNilTarget
	}

	var c Classified
	for _, m := range t.Members() {
		if reserved != nil && reserved(m.Name) {
			continue
		}
		switch m.Kind {
		case KindModule:
			c.Modules = append(c.Modules, m)
		case KindType:
			c.Types = append(c.Types, m)
		case KindCallable:
			c.Callables = append(c.Callables, m)
		default:
			c.Data = append(c.Data, m)
		}
	}

	for _, list := range [][]Member{c.Modules, c.Types, c.Data, c.Callables} {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	return c, nil
}
