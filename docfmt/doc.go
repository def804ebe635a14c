// Package docfmt formats documentation text for inspection reports.
//
// It provides the two text primitives the report package is built on:
// [Summarize], which extracts and truncates a documentation string according
// to a [DetailLevel] and a width budget, and [Fold], which lays a flat list
// of labels out as a width-bounded grid of left-justified columns.
//
// # Detail Levels
//
// Four levels control how much of a documentation string survives:
//
//   - DetailNames (0): names only; summaries are truncated to a single line
//   - DetailLine (1): the first line of the leading block
//   - DetailBlock (2): the whole leading block, continuation lines indented
//   - DetailFull (3): the complete text, blank lines collapsed, no truncation
//
// Before any level is applied the text is trimmed, markup rule lines (three
// or more repeated '-' or '=' characters on a line of their own) are dropped,
// and a missing or blank docstring is replaced by the [EmptyDoc] placeholder.
// At levels 0-2 a leading call-signature block (first token contains an
// opening parenthesis) is discarded in favor of the block that follows it.
//
// # Determinism
//
// Both functions are pure: identical inputs always produce identical output,
// and no state is retained between calls. Widths are measured in runes.
//
// # Width Budgets
//
// A non-positive width clamps to 1 rather than failing; truncated lines carry
// the [Ellipsis] marker, so output length never exceeds width plus the marker
// for levels 0 and 1.
package docfmt
