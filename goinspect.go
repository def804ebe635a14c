// Package goinspect renders column-folded text reports about Go values
// and source packages: what an object is, what members it exposes, and
// what its documentation says, at a caller-chosen level of detail.
//
// # Quick Start
//
// Inspect a live value:
//
//	err := goinspect.InspectValue(os.Stdout, srv, report.Options{
//		Detail:   docfmt.DetailLine,
//		NameHint: "srv",
//	})
//
// Inspect a source package on disk:
//
//	err := goinspect.InspectPackage(os.Stdout, "./internal/store", report.Options{
//		Detail: docfmt.DetailBlock,
//		Width:  120,
//	})
//
// # Architecture
//
// The work happens in the subpackages; this package only ties adapters
// to the renderer:
//
//   - member: member model, Target adapter interface, classifier
//   - docfmt: documentation summarizing and column folding
//   - report: report assembly and rendering
//   - reflectscan: Target adapter for live values
//   - pkgscan: Target adapter for source directories
//   - search: ranked lookup across a target's member documentation
//   - registry: the same operations exposed as MCP tools
//
// Anything satisfying member.Target can be inspected; the two bundled
// adapters cover the common cases.
package goinspect

import (
	"io"

	"github.com/jonwraymond/goinspect/member"
	"github.com/jonwraymond/goinspect/pkgscan"
	"github.com/jonwraymond/goinspect/reflectscan"
	"github.com/jonwraymond/goinspect/report"
)

// Inspect writes the report for t to w.
func Inspect(w io.Writer, t member.Target, opts report.Options) error {
	return report.Fprint(w, t, opts)
}

// InspectValue scans a live value with reflectscan and writes its
// report to w. Live values cannot name themselves, so set
// opts.NameHint for a meaningful header.
func InspectValue(w io.Writer, v any, opts report.Options) error {
	target, err := reflectscan.Scan(v)
	if err != nil {
		return err
	}
	return report.Fprint(w, target, opts)
}

// InspectPackage loads the Go package in dir with pkgscan and writes
// its report to w.
func InspectPackage(w io.Writer, dir string, opts report.Options) error {
	target, err := pkgscan.Load(dir)
	if err != nil {
		return err
	}
	return report.Fprint(w, target, opts)
}
