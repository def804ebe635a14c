package member

import "fmt"

// Kind identifies what a member is. Adapters assign it once during
// enumeration, in fixed priority order: a sub-container is KindModule
// even if it is also invokable, a type is KindType even if calling it
// constructs a value, anything invokable that is neither is
// KindCallable, and everything else is KindData.
type Kind int

const (
	// KindModule marks a member that is itself a container of members,
	// such as a sub-package.
	KindModule Kind = iota

	// KindType marks a member that names a type.
	KindType

	// KindCallable marks an invokable member: a function or method.
	KindCallable

	// KindData marks everything else: constants, variables, fields.
	KindData
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindType:
		return "type"
	case KindCallable:
		return "callable"
	case KindData:
		return "data"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Member is one named member of a Target. Names are unique within a
// single enumeration pass; the adapter guarantees that.
type Member struct {
	// Name is the member's identifier as the adapter exposes it.
	Name string

	// Kind is the classification the adapter assigned.
	Kind Kind

	// TypeName is the member's type, in the adapter's vocabulary.
	TypeName string

	// Doc is the member's raw documentation text, empty when absent.
	Doc string

	// Repr is a textual representation of the member's value. Data
	// members render it directly; other kinds may leave it empty.
	Repr string
}

// Target is the adapter interface every inspectable object satisfies.
// Implementations are read-only views: Members may be called any
// number of times and must enumerate the same set each time for an
// unchanged underlying object.
type Target interface {
	// Name returns the declared display name, or "" when the object
	// carries none. Callers substitute their own hint or a placeholder.
	Name() string

	// TypeName returns the runtime type name of the object itself.
	TypeName() string

	// Doc returns the object's own documentation text, "" when absent.
	Doc() string

	// IsContainer reports whether the object is module-like. It picks
	// the report's section labels: containers get CONSTANTS and
	// FUNCTIONS, plain objects get PROPERTIES and METHODS.
	IsContainer() bool

	// Members enumerates all named members, visible and reserved
	// alike. Filtering is the classifier's job.
	Members() []Member
}
