// Package member defines the member model shared by every inspection
// adapter and the classifier that partitions members for reporting.
//
// A [Target] is anything that can name itself, describe itself, and
// enumerate named members. Adapters (reflectscan for live values,
// pkgscan for source packages) decide each member's [Kind] exactly once
// while enumerating; nothing downstream re-probes capabilities.
//
// [Classify] filters reserved names out and partitions the rest into
// the four kind buckets in a single pass. The buckets are pairwise
// disjoint and together hold exactly the filtered member set, each
// sorted by name.
package member
