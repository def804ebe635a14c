// Package show evaluates small Go expressions against an explicit
// allow-list scope and prints the results in an echo format suited to
// interactive exploration. It exists for the quick "what is the value
// of X right now" loop: hand it the objects you are inspecting and a
// semicolon-separated string of expressions, and every clause is
// echoed back together with its value.
//
// Evaluation is sandboxed by construction. There is no access to the
// caller's variables, no reflection escape hatch and no statement
// execution; the only reachable names are the keys of the Scope map
// the caller provides.
//
// # Allowed Expressions
//
// The evaluator accepts a restricted subset of Go expression syntax:
//
//   - literals: integers, floats, runes, strings, true, false, nil
//   - identifiers resolved through the Scope
//   - exported struct field selectors (pointers are dereferenced)
//   - indexing into maps, slices, arrays and strings
//   - unary +, -, ! and binary arithmetic, comparison, && and ||
//   - calls to func values present in the Scope
//
// Anything else, like composite literals, slicing, type assertions or
// method calls, fails with ErrNotAllowed. Names missing from the
// scope, absent map keys and unknown struct fields fail with
// ErrUndefined. Both are wrapped; check with errors.Is. Runtime
// failures that would panic in compiled Go, like an index out of
// range or integer division by zero, come back as plain errors.
//
// # Output Format
//
// Fprint splits its input on semicolons and prints one line per
// clause:
//
//	count ➤ 3
//
// A clause prefixed with "*" unpacks the resulting slice, array or
// map (its keys, sorted) element by element on one line. A clause
// suffixed with "#" moves the value to the following line, which
// keeps wide values readable. An empty clause prints a blank line.
//
// # Usage
//
//	scope := show.Scope{
//		"cfg":   cfg,
//		"names": names,
//	}
//	err := show.Fprint(os.Stdout, scope, "cfg.Width; *names; cfg #")
//
// For programmatic evaluation without printing, build an Evaluator:
//
//	ev := show.NewEvaluator(scope)
//	v, err := ev.Eval("cfg.Width * 2")
package show
