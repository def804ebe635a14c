package docfmt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// EmptyDoc is substituted for a missing or blank documentation string.
	EmptyDoc = "<empty docstring>"

	// Ellipsis marks a summary line that was cut at the width budget.
	Ellipsis = "..."
)

// ruleLine matches markup divider lines: three or more '-' or '='
// characters and nothing else.
var ruleLine = regexp.MustCompile(`^[-=]{3,}$`)

// Summarize reduces a documentation string to the given detail level
// within a width budget measured in runes.
//
// The text is trimmed first; if nothing remains, [EmptyDoc] takes its
// place. Divider lines are dropped. At [DetailFull] the whole text is
// kept with runs of blank lines collapsed, continuation lines indented
// by two spaces, and a trailing newline appended. At [DetailBlock] the
// leading block is kept with the same indentation. At [DetailLine] and
// [DetailNames] the leading block is cut at its first line break or at
// width, whichever comes first, and [Ellipsis] is appended whenever
// text was removed. A leading block whose first token contains '(' is
// treated as a machine-generated call signature and skipped at levels
// below DetailFull.
//
// A non-positive width clamps to 1. Levels above DetailFull behave like
// DetailFull; negative levels behave like DetailNames.
func Summarize(doc string, level DetailLevel, width int) string {
	if width < 1 {
		width = 1
	}
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = EmptyDoc
	}
	doc = dropRuleLines(doc)

	if level >= DetailFull {
		return indent(collapseBlank(doc)) + "\n"
	}

	block := leadBlock(doc)
	if level == DetailBlock {
		return indent(block)
	}
	return cut(block, width)
}

// dropRuleLines removes divider lines wherever they appear.
func dropRuleLines(s string) string {
	if !strings.ContainsAny(s, "-=") {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if ruleLine.MatchString(ln) {
			continue
		}
		kept = append(kept, ln)
	}
	return strings.Join(kept, "\n")
}

// splitBlocks groups consecutive non-blank lines into paragraphs.
// Whitespace-only lines act as separators and are not preserved.
func splitBlocks(s string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, ln := range strings.Split(s, "\n") {
		if strings.TrimSpace(ln) == "" {
			flush()
			continue
		}
		cur = append(cur, ln)
	}
	flush()
	return blocks
}

// leadBlock returns the first paragraph of s, skipping a leading
// call-signature block. The heuristic is deliberately loose: any first
// token containing '(' is taken for a signature, which also skips
// single-word parenthesized openers.
func leadBlock(s string) string {
	blocks := splitBlocks(s)
	if len(blocks) == 0 {
		return ""
	}
	first := blocks[0]
	if fields := strings.Fields(first); len(fields) > 0 && strings.Contains(fields[0], "(") {
		if len(blocks) > 1 {
			return blocks[1]
		}
		return ""
	}
	return first
}

// cut truncates block at its first line break or at width runes,
// whichever comes first, appending Ellipsis when anything was removed.
func cut(block string, width int) string {
	limit := width
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		if n := utf8.RuneCountInString(block[:i]); n < limit {
			limit = n
		}
	}
	runes := []rune(block)
	if len(runes) <= limit {
		return block
	}
	return string(runes[:limit]) + Ellipsis
}

// collapseBlank removes blank lines until none remain, including runs
// produced by the collapse itself.
func collapseBlank(s string) string {
	for strings.Contains(s, "\n\n") {
		s = strings.ReplaceAll(s, "\n\n", "\n")
	}
	return s
}

// indent prefixes every continuation line with two spaces. The first
// line is left alone so the result can sit after a "name : " label.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
