package search_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonwraymond/goinspect/member"
	"github.com/jonwraymond/goinspect/search"
)

// TestExample_Basic verifies the basic example works correctly.
// Mirrors: examples/search/main.go
func TestExample_Basic(t *testing.T) {
	searcher := search.New(search.Config{})
	defer func() {
		if err := searcher.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}()

	docs := search.FromTarget(staticTarget(), member.DefaultReserved)

	// Test 1: A name query finds the named member first
	t.Run("search_name", func(t *testing.T) {
		results, err := searcher.Search("sum", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results for 'sum'")
		}
		if results[0].ID != "Sum" {
			t.Errorf("expected Sum first, got %s", results[0].ID)
		}
	})

	// Test 2: Documentation text is searchable
	t.Run("search_doc_text", func(t *testing.T) {
		results, err := searcher.Search("accumulates", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results for 'accumulates'")
		}
		if results[0].ID != "Accum" {
			t.Errorf("expected Accum first, got %s", results[0].ID)
		}
	})

	// Test 3: Kind names are searchable
	t.Run("search_kind", func(t *testing.T) {
		results, err := searcher.Search("module", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results for 'module'")
		}
		if results[0].ID != "geometry" {
			t.Errorf("expected geometry first, got %s", results[0].ID)
		}
	})

	// Test 4: No matches
	t.Run("no_matches", func(t *testing.T) {
		results, err := searcher.Search("quaternion", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results for 'quaternion', got %d", len(results))
		}
	})

	// Test 5: Empty query returns the first N in render order
	t.Run("empty_query", func(t *testing.T) {
		results, err := searcher.Search("", 2, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].ID != "geometry" || results[1].ID != "Accum" {
			t.Errorf("expected render order geometry, Accum; got %s, %s",
				results[0].ID, results[1].ID)
		}
	})
}

// TestExample_CustomConfig verifies custom configuration works correctly.
func TestExample_CustomConfig(t *testing.T) {
	docs := []search.Doc{
		{
			ID:      "Fold",
			Text:    "Fold callable fold names into columns",
			Summary: search.Summary{ID: "Fold", Name: "Fold", Kind: "callable"},
		},
		{
			ID:      "Wrap",
			Text:    "Wrap callable wrap long lines fold aware",
			Summary: search.Summary{ID: "Wrap", Name: "Wrap", Kind: "callable"},
		},
		{
			ID:      "Trim",
			Text:    "Trim callable trim then fold the remainder",
			Summary: search.Summary{ID: "Trim", Name: "Trim", Kind: "callable"},
		},
	}

	// Test 1: Default config - name matches rank higher
	t.Run("default_config_name_boost", func(t *testing.T) {
		searcher := search.New(search.Config{})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		results, err := searcher.Search("fold", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results")
		}
		// Fold should rank first because "fold" is in the name
		if results[0].ID != "Fold" {
			t.Errorf("expected Fold first (name match), got %s", results[0].ID)
		}
	})

	// Test 2: High name boost amplifies effect
	t.Run("high_name_boost", func(t *testing.T) {
		searcher := search.New(search.Config{
			NameBoost: 10,
			KindBoost: 1,
			TypeBoost: 1,
		})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		results, err := searcher.Search("fold", 10, docs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results")
		}
		if results[0].ID != "Fold" {
			t.Errorf("expected Fold first with high name boost, got %s", results[0].ID)
		}
	})

	// Test 3: MaxDocs limits indexed documents
	t.Run("max_docs_limit", func(t *testing.T) {
		searcher := search.New(search.Config{
			MaxDocs: 2,
		})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		longDocs := make([]search.Doc, 4)
		for i := range longDocs {
			longDocs[i] = search.Doc{
				ID:   fmt.Sprintf("member%d", i),
				Text: strings.Repeat("keyword ", 100),
				Summary: search.Summary{
					ID:   fmt.Sprintf("member%d", i),
					Name: fmt.Sprintf("Member%d", i),
					Kind: "data",
				},
			}
		}

		results, err := searcher.Search("keyword", 10, longDocs)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		// Should be limited by MaxDocs=2
		if len(results) > 2 {
			t.Errorf("expected at most 2 results (MaxDocs), got %d", len(results))
		}
	})

	// Test 4: MaxDocTextLen truncates long text
	t.Run("max_doc_text_len", func(t *testing.T) {
		searcher := search.New(search.Config{
			MaxDocTextLen: 50,
		})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		// "uniqueword" is past the truncation point
		longDoc := []search.Doc{
			{
				ID:      "long-doc",
				Text:    strings.Repeat("padding ", 100) + "uniqueword",
				Summary: search.Summary{ID: "long-doc", Name: "LongDoc", Kind: "data"},
			},
		}

		results, err := searcher.Search("uniqueword", 10, longDoc)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		// Should not find "uniqueword" since it's truncated
		if len(results) != 0 {
			t.Errorf("expected 0 results (word truncated), got %d", len(results))
		}
	})
}

func ExampleSearcher_Search() {
	searcher := search.New(search.Config{})
	defer searcher.Close()

	docs := []search.Doc{
		{
			ID:      "Sum",
			Text:    "Sum callable Sum adds the inputs.",
			Summary: search.Summary{ID: "Sum", Name: "Sum", Kind: "callable"},
		},
		{
			ID:      "Mean",
			Text:    "Mean callable Mean averages the inputs.",
			Summary: search.Summary{ID: "Mean", Name: "Mean", Kind: "callable"},
		},
	}

	results, err := searcher.Search("adds", 5, docs)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Printf("%s (%s)\n", r.Name, r.Kind)
	}
	// Output:
	// Sum (callable)
}
