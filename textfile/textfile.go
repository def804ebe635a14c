// Package textfile provides line-oriented helpers for loading and
// saving small text files.
package textfile

import (
	"fmt"
	"os"
	"strings"
)

// DefaultLoadComment is the prefix marking comment lines on load.
const DefaultLoadComment = "#"

// DefaultSaveComment is the prefix written before header lines on save.
const DefaultSaveComment = "# "

// LoadOptions controls Lines. The zero value strips whitespace and
// drops blank and comment lines, with "#" marking comments.
type LoadOptions struct {
	// KeepSpace keeps leading and trailing whitespace on every line.
	KeepSpace bool

	// KeepEmpty keeps blank lines.
	KeepEmpty bool

	// KeepComments keeps comment lines.
	KeepComments bool

	// Comment is the prefix marking comment lines. Empty means
	// DefaultLoadComment.
	Comment string
}

// SaveOptions controls Save. The zero value overwrites the target file
// and prefixes header lines with "# ".
type SaveOptions struct {
	// Head holds header lines written before the body, each prefixed
	// with Comment.
	Head []string

	// Append adds to the end of the file instead of overwriting it.
	Append bool

	// Comment is the prefix written before each header line. Empty
	// means DefaultSaveComment.
	Comment string
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Text returns the whole file as one string with surrounding
// whitespace trimmed. Line endings are normalized to "\n".
func Text(path string) (string, error) {
	text, err := readText(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Lines loads the file and splits it into lines. By default every
// line is space-trimmed and blank or comment lines are dropped; see
// LoadOptions. Comment detection runs on the line as it stands after
// the trim step, so with KeepSpace an indented marker is not a
// comment.
func Lines(path string, opts LoadOptions) ([]string, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	comment := opts.Comment
	if comment == "" {
		comment = DefaultLoadComment
	}

	if !opts.KeepSpace {
		text = strings.TrimSpace(text)
	}
	lines := strings.Split(text, "\n")
	if !opts.KeepSpace {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}

	kept := lines[:0]
	for _, line := range lines {
		if !opts.KeepEmpty && line == "" {
			continue
		}
		if !opts.KeepComments && strings.HasPrefix(line, comment) {
			continue
		}
		kept = append(kept, line)
	}
	return kept, nil
}

// Save writes body to path, one value per line, after an optional
// comment header. The content always ends with a newline.
func Save(path string, body []string, opts SaveOptions) error {
	comment := opts.Comment
	if comment == "" {
		comment = DefaultSaveComment
	}

	var b strings.Builder
	if len(opts.Head) > 0 {
		head := strings.Join(opts.Head, "\n")
		b.WriteString(comment)
		b.WriteString(strings.ReplaceAll(head, "\n", "\n"+comment))
		b.WriteByte('\n')
	}
	if len(body) > 0 {
		joined := strings.Join(body, "\n")
		b.WriteString(joined)
		if !strings.HasSuffix(joined, "\n") {
			b.WriteByte('\n')
		}
	}

	if opts.Append {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("textfile: open %s: %w", path, err)
		}
		_, werr := f.WriteString(b.String())
		cerr := f.Close()
		if werr != nil {
			return fmt.Errorf("textfile: write %s: %w", path, werr)
		}
		if cerr != nil {
			return fmt.Errorf("textfile: close %s: %w", path, cerr)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("textfile: write %s: %w", path, err)
	}
	return nil
}

func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("textfile: read %s: %w", path, err)
	}
	return newlines.Replace(string(raw)), nil
}
