package docfmt

import (
	"strings"
	"unicode/utf8"
)

// Fold lays labels out as rows of left-justified columns within a width
// budget measured in runes.
//
// Every cell is as wide as the longest label plus two trailing spaces,
// and the column count is width divided by the cell size, never less
// than one. Labels keep their order, reading left to right then top to
// bottom, and every label appears exactly once. Rows are joined with
// newlines; trailing cell padding is kept so all rows in a full column
// grid share the same length.
//
// An empty slice folds to the empty string. A non-positive width clamps
// to 1, which degrades to one label per row.
func Fold(labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}

	size := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > size {
			size = n
		}
	}
	size += 2

	cols := width / size
	if cols < 1 {
		cols = 1
	}

	cells := make([]string, len(labels))
	for i, l := range labels {
		cells[i] = l + strings.Repeat(" ", size-utf8.RuneCountInString(l))
	}

	rows := make([]string, 0, (len(cells)+cols-1)/cols)
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, strings.Join(cells[start:end], ""))
	}
	return strings.Join(rows, "\n")
}
