package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// Defaults applied by New for zero-valued Config fields.
const (
	DefaultNameBoost = 3.0
	DefaultKindBoost = 1.5
	DefaultTypeBoost = 1.5
	DefaultLimit     = 10
)

// Config customizes ranking and safety limits. The zero value gets the
// defaults above with no document limits.
type Config struct {
	// NameBoost weights matches on the member name.
	NameBoost float64

	// KindBoost weights matches on the member kind.
	KindBoost float64

	// TypeBoost weights matches on the type name.
	TypeBoost float64

	// MaxDocs caps how many documents are indexed. 0 means unlimited.
	MaxDocs int

	// MaxDocTextLen truncates document text before indexing. 0 means
	// unlimited.
	MaxDocTextLen int
}

// Searcher ranks member documents with BM25 over an in-memory Bleve
// index. The index is rebuilt only when the document fingerprint
// changes; see the package documentation for the caching contract.
type Searcher struct {
	cfg Config

	mu        sync.RWMutex
	idx       bleve.Index
	fp        string
	summaries map[string]Summary
	order     []string
}

// New returns a Searcher with defaults applied to cfg.
func New(cfg Config) *Searcher {
	if cfg.NameBoost <= 0 {
		cfg.NameBoost = DefaultNameBoost
	}
	if cfg.KindBoost <= 0 {
		cfg.KindBoost = DefaultKindBoost
	}
	if cfg.TypeBoost <= 0 {
		cfg.TypeBoost = DefaultTypeBoost
	}
	return &Searcher{cfg: cfg}
}

// Search ranks docs against query and returns up to limit summaries.
// A blank query returns the first documents in input order. A limit of
// zero or less falls back to DefaultLimit.
func (s *Searcher) Search(query string, limit int, docs []Doc) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx, summaries, order, err := s.ensure(docs)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		if limit > len(order) {
			limit = len(order)
		}
		out := make([]Summary, 0, limit)
		for _, id := range order[:limit] {
			out = append(out, summaries[id])
		}
		return out, nil
	}

	name := bleve.NewMatchQuery(query)
	name.SetField("name")
	name.SetBoost(s.cfg.NameBoost)
	kind := bleve.NewMatchQuery(query)
	kind.SetField("kind")
	kind.SetBoost(s.cfg.KindBoost)
	typ := bleve.NewMatchQuery(query)
	typ.SetField("typename")
	typ.SetBoost(s.cfg.TypeBoost)
	text := bleve.NewMatchQuery(query)
	text.SetField("text")

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(name, kind, typ, text))
	req.Size = limit
	req.SortBy([]string{"-_score", "_id"})

	res, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: query %q: %w", query, err)
	}

	out := make([]Summary, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if summary, ok := summaries[hit.ID]; ok {
			out = append(out, summary)
		}
	}
	return out, nil
}

// Close releases the cached index. The Searcher stays usable; the next
// Search rebuilds.
func (s *Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == nil {
		return nil
	}
	err := s.idx.Close()
	s.idx = nil
	s.fp = ""
	s.summaries = nil
	s.order = nil
	return err
}

// ensure returns the index snapshot for docs, rebuilding when the
// fingerprint differs from the cached one.
func (s *Searcher) ensure(docs []Doc) (bleve.Index, map[string]Summary, []string, error) {
	fp := computeFingerprint(docs)

	s.mu.RLock()
	if s.idx != nil && s.fp == fp {
		idx, summaries, order := s.idx, s.summaries, s.order
		s.mu.RUnlock()
		return idx, summaries, order, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil && s.fp == fp {
		return s.idx, s.summaries, s.order, nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("search: create index: %w", err)
	}

	capped := docs
	if s.cfg.MaxDocs > 0 && len(capped) > s.cfg.MaxDocs {
		capped = capped[:s.cfg.MaxDocs]
	}

	batch := idx.NewBatch()
	summaries := make(map[string]Summary, len(capped))
	order := make([]string, 0, len(capped))
	for _, d := range capped {
		text := d.Text
		if s.cfg.MaxDocTextLen > 0 && len(text) > s.cfg.MaxDocTextLen {
			text = text[:s.cfg.MaxDocTextLen]
		}
		err := batch.Index(d.ID, map[string]any{
			"name":     d.Summary.Name,
			"kind":     d.Summary.Kind,
			"typename": d.Summary.TypeName,
			"text":     text,
		})
		if err != nil {
			_ = idx.Close()
			return nil, nil, nil, fmt.Errorf("search: index doc %q: %w", d.ID, err)
		}
		summaries[d.ID] = d.Summary
		order = append(order, d.ID)
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, nil, nil, fmt.Errorf("search: apply batch: %w", err)
	}

	if s.idx != nil {
		_ = s.idx.Close()
	}
	s.idx, s.fp, s.summaries, s.order = idx, fp, summaries, order
	return idx, summaries, order, nil
}
