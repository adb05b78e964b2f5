package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kamusis/medref/internal/catalog"
)

// Build captures d as a snapshot.
func Build(d catalog.Domain) (*Snapshot, error) {
	ids := d.IDs()
	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		doc, ok := d.Get(id)
		if !ok {
			return nil, fmt.Errorf("%s: entry %s disappeared while exporting", d.Name(), id)
		}
		h, err := DocumentHash(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Hash: h, Document: doc})
	}

	return &Snapshot{
		Manifest: Manifest{
			SnapshotVersion: Version,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
			Domain:          d.Name(),
			Title:           d.Title(),
			Categories:      d.Categories(),
			Count:           len(records),
			Fingerprint:     Fingerprint(records),
			EntriesFile:     defaultEntriesFile,
		},
		Records: records,
	}, nil
}

// Write writes snapshot artifacts to dir.
func Write(dir string, s *Snapshot) error {
	m := s.Manifest
	if m.Domain == "" {
		return fmt.Errorf("snapshot has no domain")
	}
	if m.Count != len(s.Records) {
		return fmt.Errorf("%w: manifest says %d, have %d", ErrCountMismatch, m.Count, len(s.Records))
	}
	if m.EntriesFile == "" {
		m.EntriesFile = defaultEntriesFile
	}
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create snapshot dir %s: %w", dir, err)
	}

	// manifest
	mb, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	// entries jsonl
	ef, err := os.Create(filepath.Join(dir, m.EntriesFile))
	if err != nil {
		return fmt.Errorf("cannot create entries file: %w", err)
	}
	bw := bufio.NewWriter(ef)
	for _, r := range s.Records {
		line, err := json.Marshal(r)
		if err != nil {
			_ = ef.Close()
			return err
		}
		if _, err := bw.Write(line); err != nil {
			_ = ef.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = ef.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = ef.Close()
		return err
	}
	return ef.Close()
}

// AtomicSwap replaces destDir with srcDir by renaming.
func AtomicSwap(srcDir, destDir string) error {
	parent := filepath.Dir(destDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		// rollback best-effort
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}
