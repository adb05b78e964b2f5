package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/medref/internal/catalog"
)

// Report lists how a domain snapshot differs from the live domain.
type Report struct {
	Domain  string
	// Stale ids exist in both but their content changed.
	Stale   []string
	// Missing ids are live but absent from the snapshot.
	Missing []string
	// Extra ids are in the snapshot but no longer live.
	Extra   []string
}

// OK reports whether the snapshot matches the live domain.
func (r Report) OK() bool {
	return len(r.Stale) == 0 && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Compare checks s against d.
func Compare(s *Snapshot, d catalog.Domain) (Report, error) {
	rep := Report{Domain: d.Name()}
	have := make(map[string]string, len(s.Records))
	for _, r := range s.Records {
		have[r.Document.ID] = r.Hash
	}

	live := make(map[string]struct{})
	for _, id := range d.IDs() {
		live[id] = struct{}{}
		h, ok := have[id]
		if !ok {
			rep.Missing = append(rep.Missing, id)
			continue
		}
		doc, _ := d.Get(id)
		cur, err := DocumentHash(doc)
		if err != nil {
			return rep, err
		}
		if cur != h {
			rep.Stale = append(rep.Stale, id)
		}
	}
	for _, r := range s.Records {
		if _, ok := live[r.Document.ID]; !ok {
			rep.Extra = append(rep.Extra, r.Document.ID)
		}
	}
	return rep, nil
}

// Verify loads dir/<domain> for every domain and compares it. A domain
// without a snapshot directory reports every live id as missing.
func Verify(dir string, domains []catalog.Domain) ([]Report, error) {
	out := make([]Report, 0, len(domains))
	for _, d := range domains {
		sub := filepath.Join(dir, d.Name())
		s, err := Load(sub)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", d.Name(), err)
			}
			s = &Snapshot{}
		}
		rep, err := Compare(s, d)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}
