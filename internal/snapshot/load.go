package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the snapshot in dir and checks it against its manifest.
func Load(dir string) (*Snapshot, error) {
	manifestPath := filepath.Join(dir, manifestFile)
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", manifestPath, err)
	}
	if m.SnapshotVersion != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.SnapshotVersion)
	}
	if m.EntriesFile == "" {
		m.EntriesFile = defaultEntriesFile
	}

	records, err := loadRecords(filepath.Join(dir, m.EntriesFile))
	if err != nil {
		return nil, err
	}
	if len(records) != m.Count {
		return nil, fmt.Errorf("%w: manifest says %d, file has %d", ErrCountMismatch, m.Count, len(records))
	}
	if got := Fingerprint(records); got != m.Fingerprint {
		return nil, fmt.Errorf("%w: manifest %s, entries %s", ErrFingerprintMismatch, m.Fingerprint, got)
	}
	return &Snapshot{Manifest: m, Records: records}, nil
}

func loadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open entries file %s: %w", path, err)
	}
	defer f.Close()

	out := []Record{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("invalid entries JSONL %s: %w", path, err)
		}
		out = append(out, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read entries file %s: %w", path, err)
	}
	return out, nil
}
