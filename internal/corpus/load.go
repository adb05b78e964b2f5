package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadFS decodes every content file under root in fsys, in lexical path
// order. Files matching one of excludes (doublestar globs, tested against
// the path relative to root and against the base name) are skipped. A
// missing root yields no entries.
func LoadFS[T any](fsys fs.FS, root string, excludes []string) ([]T, error) {
	if _, err := fs.Stat(fsys, root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("cannot stat content directory %s: %w", root, err)
	}

	out := []T{}
	walkFn := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel := relPath(root, p)
		if matchesExclude(rel, excludes) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsContentFile(d.Name()) {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", p, err)
		}
		entries, err := Decode[T](p, b)
		if err != nil {
			return err
		}
		out = append(out, entries...)
		return nil
	}

	if err := fs.WalkDir(fsys, root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot load content from %s: %w", root, err)
	}
	return out, nil
}

func relPath(root, p string) string {
	if root == "." {
		return p
	}
	return strings.TrimPrefix(p, root+"/")
}

// matchesExclude reports whether rel matches any of the glob patterns.
func matchesExclude(rel string, patterns []string) bool {
	name := path.Base(rel)
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
