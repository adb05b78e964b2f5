package snapshot

import "errors"

var (
	// ErrFingerprintMismatch indicates entries.jsonl does not match the manifest fingerprint.
	ErrFingerprintMismatch = errors.New("snapshot fingerprint mismatch")
	// ErrCountMismatch indicates entries.jsonl holds a different number of records than the manifest.
	ErrCountMismatch = errors.New("snapshot entry count mismatch")
	// ErrUnsupportedVersion indicates a manifest written by an incompatible layout.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)
