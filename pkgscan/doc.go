// Package pkgscan adapts a Go source directory to the member model.
//
// [Load] parses the directory with go/parser, extracts documentation
// with go/doc, and enumerates the package's exported surface once:
//
//   - subdirectories containing Go files become modules
//   - exported type declarations become types
//   - exported functions, including constructors grouped under their
//     result type, become callables
//   - exported constants and variables become data, with their
//     initializer expressions as representations
//
// Test files, hidden files and the usual non-source directories
// (vendor, testdata, dot-directories) are skipped, and a .gitignore in
// the loaded directory is honored when listing subdirectories.
//
// Unlike live values, source packages carry real documentation, so
// every member arrives with its doc comment attached and reports over
// a loaded package show genuine summaries at every detail level.
package pkgscan
