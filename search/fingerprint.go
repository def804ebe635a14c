package search

import (
	"crypto/sha256"
	"encoding/hex"
)

// computeFingerprint hashes the document set so the searcher can tell
// whether its cached index still matches. Fields are separated by a
// zero byte so shifted content cannot collide.
func computeFingerprint(docs []Doc) string {
	h := sha256.New()
	field := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	for _, d := range docs {
		field(d.ID)
		field(d.Text)
		field(d.Summary.ID)
		field(d.Summary.Name)
		field(d.Summary.Kind)
		field(d.Summary.TypeName)
		field(d.Summary.Synopsis)
	}

	return hex.EncodeToString(h.Sum(nil))
}
