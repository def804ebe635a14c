package docfmt

import (
	"errors"
	"fmt"
)

// DetailLevel selects how much documentation text a summary retains.
type DetailLevel int

const (
	// DetailNames lists member names only; any summary text is cut to a
	// single truncated line.
	DetailNames DetailLevel = iota

	// DetailLine keeps the first line of the leading documentation block.
	DetailLine

	// DetailBlock keeps the whole leading block with continuation lines
	// indented under the first.
	DetailBlock

	// DetailFull keeps the complete documentation text with blank lines
	// collapsed and no truncation.
	DetailFull
)

// ErrInvalidDetail is returned when a detail level outside the
// DetailNames..DetailFull range reaches a validating entry point.
var ErrInvalidDetail = errors.New("docfmt: invalid detail level")

// Valid reports whether d is one of the four defined levels.
func (d DetailLevel) Valid() bool {
	return d >= DetailNames && d <= DetailFull
}

// String returns a short human-readable name for the level.
func (d DetailLevel) String() string {
	switch d {
	case DetailNames:
		return "names"
	case DetailLine:
		return "line"
	case DetailBlock:
		return "block"
	case DetailFull:
		return "full"
	default:
		return fmt.Sprintf("detail(%d)", int(d))
	}
}
