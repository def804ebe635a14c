// Package report renders the full inspection report for a target.
//
// A report is a header naming the target plus one section per
// non-empty member category, assembled fresh on every call:
//
//	NAME = mathkit / TYPE = package
//	ROLE = Small arithmetic helpers.
//
//	CONSTANTS
//	MaxIter:int = 64
//
//	FUNCTIONS
//	Sum : Sum adds the inputs.
//
// Section order is fixed: MODULES, TYPES, then the data and callable
// sections. The last two take their labels from the target itself:
// CONSTANTS and FUNCTIONS when the target is a module-like container,
// PROPERTIES and METHODS otherwise. Empty categories are omitted.
//
// At detail level 0 every section folds member names into columns; at
// higher levels the data and callable sections show one member per
// entry with its representation or summarized documentation. Module
// and type sections always fold names only, followed by a hint to
// re-inspect the member.
//
// Reports are plain values. Building one touches no I/O and keeps no
// state between calls; concurrent builds against different targets are
// safe.
package report
