// Package search provides BM25-ranked lookup across a target's member
// documentation.
//
// It exists to:
//   - Keep the report path dependency-light: nothing in member, docfmt
//     or report knows about search
//   - Enable stronger ranking than substring matching without forcing
//     the indexing machinery on every consumer
//
// # Usage
//
// The primary type is [Searcher]; documents usually come straight from
// a target via [FromTarget]:
//
//	s := search.New(search.Config{})
//	defer s.Close()
//
//	docs := search.FromTarget(target, member.DefaultReserved)
//	results, err := s.Search("encode", 10, docs)
//
// # Configuration
//
// [Config] allows customization of field boosts and safety limits:
//
//	cfg := search.Config{
//	    NameBoost:     3,    // Boost member-name matches (default: 3)
//	    KindBoost:     1.5,  // Boost kind matches (default: 1.5)
//	    TypeBoost:     1.5,  // Boost type-name matches (default: 1.5)
//	    MaxDocs:       1000, // Limit documents to index (0 = unlimited)
//	    MaxDocTextLen: 5000, // Truncate long doc texts (0 = unlimited)
//	}
//
// # Thread Safety
//
// Searcher is safe for concurrent use. It uses an internal RWMutex to
// protect index state and caches the Bleve index keyed by a fingerprint
// of the document slice, only rebuilding when the documents change.
// Reports themselves stay one-shot and stateless; only the index
// structure is cached.
//
// # Behavior
//
// Empty queries return the first N documents in input order. Non-empty
// queries use BM25 ranking with deterministic tie-breaking (score DESC,
// then ID ASC).
package search
