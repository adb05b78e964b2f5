package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/kamusis/medref/internal/catalog"
)

const lockFile = ".medref-export.lock"

// Export writes one snapshot per domain into dir/<domain>. Each domain is
// written to a temporary directory first and swapped into place, so a
// reader never sees a half-written snapshot.
func Export(dir string, domains []catalog.Domain) ([]Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create export dir %s: %w", dir, err)
	}
	unlock, err := acquireExportLock(filepath.Join(dir, lockFile), 10*time.Second)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]Manifest, 0, len(domains))
	for _, d := range domains {
		s, err := Build(d)
		if err != nil {
			return nil, err
		}
		tmp, err := os.MkdirTemp(dir, "."+d.Name()+"-")
		if err != nil {
			return nil, fmt.Errorf("cannot create temp dir: %w", err)
		}
		if err := Write(tmp, s); err != nil {
			_ = os.RemoveAll(tmp)
			return nil, err
		}
		if err := AtomicSwap(tmp, filepath.Join(dir, d.Name())); err != nil {
			_ = os.RemoveAll(tmp)
			return nil, fmt.Errorf("cannot replace %s snapshot: %w", d.Name(), err)
		}
		out = append(out, s.Manifest)
	}
	return out, nil
}

// acquireExportLock obtains the export lock for an export directory.
func acquireExportLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire export lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another export is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
