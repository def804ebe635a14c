package search

import (
	"strings"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/member"
)

// SynopsisWidth bounds the one-line synopsis carried by summaries.
const SynopsisWidth = 120

// Doc is one searchable document: a member's identity plus the full
// text the ranking runs over.
type Doc struct {
	// ID uniquely identifies the document within one Search call.
	// FromTarget uses the member name.
	ID string

	// Text is the ranked content: name, kind, type and documentation.
	Text string

	// Summary is returned for matching documents.
	Summary Summary
}

// Summary is the search-facing view of a member.
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	TypeName string `json:"type_name,omitempty"`
	Synopsis string `json:"synopsis,omitempty"`
}

// FromTarget builds the searchable documents for every visible member
// of t, in report render order: modules, types, data, callables, each
// sorted by name. Documents are built fresh on every call; nothing is
// retained. A nil target yields nil.
func FromTarget(t member.Target, reserved func(string) bool) []Doc {
	c, err := member.Classify(t, reserved)
	if err != nil {
		return nil
	}

	docs := make([]Doc, 0, c.Total())
	for _, list := range [][]member.Member{c.Modules, c.Types, c.Data, c.Callables} {
		for _, m := range list {
			docs = append(docs, Doc{
				ID:   m.Name,
				Text: docText(m),
				Summary: Summary{
					ID:       m.Name,
					Name:     m.Name,
					Kind:     m.Kind.String(),
					TypeName: m.TypeName,
					Synopsis: docfmt.Summarize(m.Doc, docfmt.DetailLine, SynopsisWidth),
				},
			})
		}
	}
	return docs
}

func docText(m member.Member) string {
	parts := []string{m.Name, m.Kind.String(), m.TypeName, m.Doc}
	return strings.TrimSpace(strings.Join(parts, " "))
}
