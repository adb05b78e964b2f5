package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/kamusis/medref/internal/content"
)

// CanonicalText returns the byte form of doc that is hashed.
func CanonicalText(doc content.Document) ([]byte, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %s: %w", doc.ID, err)
	}
	return b, nil
}

// DocumentHash returns the xxhash64 (hex) of the canonical text of doc.
func DocumentHash(doc content.Document) (string, error) {
	b, err := CanonicalText(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}

// Fingerprint summarises records in order, so reordering changes it too.
func Fingerprint(records []Record) string {
	d := xxhash.New()
	for _, r := range records {
		_, _ = d.WriteString(r.Document.ID)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Hash)
		_, _ = d.WriteString("\n")
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
