// Package reflectscan adapts live Go values to the member model.
//
// [Scan] inspects a value with the reflect package and enumerates its
// members once, deciding each member's kind at that moment:
//
//   - exported methods become callables
//   - values satisfying reflect.Type become types
//   - func-typed fields and map entries become callables
//   - every other exported field or string-keyed map entry is data
//
// Runtime values carry no documentation, so member docs are left empty
// and the report layer substitutes its placeholder. Representations
// are deterministic where the value permits: strings are quoted,
// pointers dereference to "&" plus the element, nils print as "nil".
// Functions, channels and unsafe pointers have no stable textual form
// and render as an opaque "<type 0xaddr>" marker instead.
//
// The returned [Value] is a read-only snapshot view; re-scanning after
// mutating the underlying value is the caller's job.
package reflectscan
