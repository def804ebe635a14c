package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/member"
)

const (
	// EmptyName is used when neither the target nor the caller supplies
	// a display name.
	EmptyName = "<empty name>"

	// DefaultWidth is the report width used when Options.Width is zero.
	DefaultWidth = 96

	// headerReserve is subtracted from the width budget for the role
	// line to leave room for the "ROLE = " prefix.
	headerReserve = 8

	// entryReserve accounts for the separator between a member name and
	// its summary or value.
	entryReserve = 4
)

// Options controls how a report is built. The zero value renders a
// names-only report at the default width with underscore-prefixed
// members hidden.
type Options struct {
	// Detail is the verbosity level, see the docfmt package.
	Detail docfmt.DetailLevel

	// Width is the layout budget in runes. Zero means DefaultWidth;
	// negative values clamp to 1.
	Width int

	// NameHint names the target when the target cannot name itself.
	NameHint string

	// Reserved hides matching member names. Nil means
	// member.DefaultReserved.
	Reserved func(string) bool
}

// Header is the first two lines of a report.
type Header struct {
	Name     string
	TypeName string
	Role     string
}

// Section is one rendered member category.
type Section struct {
	Title string
	Body  string
}

// Report is a fully rendered inspection result. It holds no reference
// to the target it was built from.
type Report struct {
	Header   Header
	Sections []Section
}

// Build constructs the report for t. It returns member.ErrNilTarget
// for a nil target and docfmt.ErrInvalidDetail for a level outside
// 0..3; every other irregularity degrades to a placeholder.
func Build(t member.Target, opts Options) (*Report, error) {
	if t == nil {
		return nil, member.ErrNilTarget
	}
	if !opts.Detail.Valid() {
		return nil, fmt.Errorf("%w: %d", docfmt.ErrInvalidDetail, int(opts.Detail))
	}

	width := opts.Width
	switch {
	case width == 0:
		width = DefaultWidth
	case width < 0:
		width = 1
	}
	reserved := opts.Reserved
	if reserved == nil {
		reserved = member.DefaultReserved
	}

	name := t.Name()
	if name == "" {
		name = opts.NameHint
	}
	if name == "" {
		name = EmptyName
	}

	r := &Report{
		Header: Header{
			Name:     name,
			TypeName: t.TypeName(),
			Role:     roleLine(t.Doc(), width),
		},
	}

	c, err := member.Classify(t, reserved)
	if err != nil {
		return nil, err
	}

	dataTitle, callTitle := "PROPERTIES", "METHODS"
	if t.IsContainer() {
		dataTitle, callTitle = "CONSTANTS", "FUNCTIONS"
	}

	// Module and type members never show documentation; their section
	// title points the reader at a follow-up inspection instead.
	prompt := fmt.Sprintf("use 'inspect(%s.xxx)' to get additional info for each inner", name)
	r.add("MODULES : "+prompt+" module", foldNames(c.Modules, width))
	r.add("TYPES : "+prompt+" type", foldNames(c.Types, width))

	if opts.Detail == docfmt.DetailNames {
		r.add(dataTitle, foldNames(c.Data, width))
		r.add(callTitle, foldNames(c.Callables, width))
		return r, nil
	}

	r.add(dataTitle, dataEntries(c.Data, width))
	r.add(callTitle, callableEntries(c.Callables, opts.Detail, width))
	return r, nil
}

// Fprint builds the report for t and writes its text to w.
func Fprint(w io.Writer, t member.Target, opts Options) error {
	r, err := Build(t, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, r.String())
	return err
}

// String renders the header and all sections as the final report text.
// Sections are separated by blank lines and the text ends with a
// single newline.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NAME = %s / TYPE = %s\n", r.Header.Name, r.Header.TypeName)
	fmt.Fprintf(&b, "ROLE = %s\n", r.Header.Role)
	for _, s := range r.Sections {
		b.WriteByte('\n')
		b.WriteString(s.Title)
		b.WriteByte('\n')
		b.WriteString(s.Body)
		if !strings.HasSuffix(s.Body, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// add appends a section unless its body is empty.
func (r *Report) add(title, body string) {
	if body == "" {
		return
	}
	r.Sections = append(r.Sections, Section{Title: title, Body: body})
}

// roleLine summarizes the target's own documentation at block level and
// flattens it to a single line for the header.
func roleLine(doc string, width int) string {
	block := docfmt.Summarize(doc, docfmt.DetailBlock, width-headerReserve)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

func memberNames(list []member.Member) []string {
	names := make([]string, len(list))
	for i, m := range list {
		names[i] = m.Name
	}
	return names
}

func foldNames(list []member.Member, width int) string {
	if len(list) == 0 {
		return ""
	}
	return docfmt.Fold(memberNames(list), width)
}

// dataEntries renders one "name:type = value" line per data member.
func dataEntries(list []member.Member, width int) string {
	if len(list) == 0 {
		return ""
	}
	lines := make([]string, len(list))
	for i, m := range list {
		lines[i] = m.Name + ":" + m.TypeName + " = " + dataValue(m, width)
	}
	return strings.Join(lines, "\n")
}

// dataValue formats a data member's representation. Opaque object
// representations collapse to their first token; everything else is
// flattened to one line and truncated to the width left over after the
// name and type, with the final character kept after the ellipsis.
func dataValue(m member.Member, width int) string {
	repr := m.Repr
	if strings.HasPrefix(repr, "<") {
		if fields := strings.Fields(repr); len(fields) > 0 {
			return fields[0] + docfmt.Ellipsis + ">"
		}
	}
	repr = strings.TrimSpace(strings.ReplaceAll(repr, "\n", " "))

	remain := width - utf8.RuneCountInString(m.Name) - utf8.RuneCountInString(m.TypeName) - entryReserve
	if remain < 1 {
		remain = 1
	}
	runes := []rune(repr)
	if len(runes) <= remain {
		return repr
	}
	return string(runes[:remain]) + docfmt.Ellipsis + string(runes[len(runes)-1])
}

// callableEntries renders one "name : summary" entry per callable.
func callableEntries(list []member.Member, level docfmt.DetailLevel, width int) string {
	if len(list) == 0 {
		return ""
	}
	entries := make([]string, len(list))
	for i, m := range list {
		budget := width - utf8.RuneCountInString(m.Name) - entryReserve
		entries[i] = m.Name + " : " + docfmt.Summarize(m.Doc, level, budget)
	}
	return strings.Join(entries, "\n")
}
