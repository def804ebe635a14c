package member

// Static is a hand-assembled Target for callers that already hold
// member data: fixtures, remote snapshots, or composed views. The zero
// value is a valid empty target.
type Static struct {
	// DisplayName is returned by Name. Leave empty for an anonymous
	// target.
	DisplayName string

	// RuntimeType is returned by TypeName.
	RuntimeType string

	// DocText is returned by Doc.
	DocText string

	// ModuleLike is returned by IsContainer.
	ModuleLike bool

	// Items holds the members to enumerate.
	Items []Member
}

func (s *Static) Name() string     { return s.DisplayName }
func (s *Static) TypeName() string { return s.RuntimeType }
func (s *Static) Doc() string      { return s.DocText }

// IsContainer reports the ModuleLike flag as given.
func (s *Static) IsContainer() bool { return s.ModuleLike }

// Members returns a copy of Items so callers cannot mutate the target
// through the slice.
func (s *Static) Members() []Member {
	return append([]Member(nil), s.Items...)
}
