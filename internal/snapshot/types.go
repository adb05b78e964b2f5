// Package snapshot writes the catalog to disk as per-domain manifest plus
// JSONL files and checks such snapshots against the live catalog.
package snapshot

import "github.com/kamusis/medref/internal/content"

// Version is the snapshot layout version written to manifests.
const Version = 1

const (
	manifestFile       = "manifest.json"
	defaultEntriesFile = "entries.jsonl"
)

// Manifest describes one domain snapshot.
type Manifest struct {
	SnapshotVersion int      `json:"snapshot_version"`
	CreatedAt       string   `json:"created_at"`
	Domain          string   `json:"domain"`
	Title           string   `json:"title"`
	Categories      []string `json:"categories"`
	Count           int      `json:"count"`
	Fingerprint     string   `json:"fingerprint"`
	EntriesFile     string   `json:"entries_file"`
}

// Record is one line of entries.jsonl.
type Record struct {
	Hash     string           `json:"hash"`
	Document content.Document `json:"document"`
}

// Snapshot is a loaded domain snapshot.
type Snapshot struct {
	Manifest Manifest
	Records  []Record
}
