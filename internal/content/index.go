// Package content holds the in-memory registry that every reference domain
// (dental, transplant, emergency) is served from.
//
// An Index is filled once with Register and then only read. Lookups are by
// id, by category, or by case-insensitive substring search. Search tests each
// searchable field on its own, so a query can never match text that only
// exists across the boundary of two fields.
package content

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
)

// Entry is the contract a domain record satisfies to be indexed.
type Entry[C comparable] interface {
	EntryID() string
	EntryCategory() C
	SearchableFields() []string
}

type record[E any] struct {
	entry  E
	folded []string
}

// Index is an in-memory registry of entries keyed by id.
//
// Returned slices and maps are fresh copies. The entries themselves are
// shared with the index and must be treated as read-only.
type Index[C comparable, E Entry[C]] struct {
	mu         sync.RWMutex
	categories []C
	known      map[C]struct{}
	byID       map[string]int
	records    []record[E]
}

// New returns an empty index over the closed category set categories.
// The order of categories is the enumeration order used by Grouped and
// Categories. It panics on an empty or repeating category list.
func New[C comparable, E Entry[C]](categories []C) *Index[C, E] {
	if len(categories) == 0 {
		panic("content: index needs at least one category")
	}
	known := make(map[C]struct{}, len(categories))
	for _, c := range categories {
		if _, ok := known[c]; ok {
			panic(fmt.Sprintf("content: category %v listed twice", c))
		}
		known[c] = struct{}{}
	}
	cats := make([]C, len(categories))
	copy(cats, categories)
	return &Index[C, E]{
		categories: cats,
		known:      known,
		byID:       make(map[string]int),
	}
}

// Register adds entries to the index. The call is atomic: on error nothing
// is added. Colliding ids, whether inside entries or against earlier
// registrations, are reported together in a *DuplicateIDError.
func (x *Index[C, E]) Register(entries ...E) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	seen := make(map[string]struct{}, len(entries))
	reported := make(map[string]struct{})
	var dups []string
	for _, e := range entries {
		id := e.EntryID()
		if id == "" {
			return ErrEmptyID
		}
		if _, ok := x.known[e.EntryCategory()]; !ok {
			return &CategoryError{ID: id, Category: fmt.Sprint(e.EntryCategory())}
		}
		_, inBatch := seen[id]
		_, inIndex := x.byID[id]
		if inBatch || inIndex {
			if _, ok := reported[id]; !ok {
				reported[id] = struct{}{}
				dups = append(dups, id)
			}
			continue
		}
		seen[id] = struct{}{}
	}
	if len(dups) > 0 {
		return &DuplicateIDError{IDs: dups}
	}

	fold := cases.Fold()
	for _, e := range entries {
		fields := e.SearchableFields()
		folded := make([]string, len(fields))
		for i, f := range fields {
			folded[i] = fold.String(f)
		}
		x.byID[e.EntryID()] = len(x.records)
		x.records = append(x.records, record[E]{entry: e, folded: folded})
	}
	return nil
}

// Get returns the entry registered under id. The boolean is false when no
// such entry exists.
func (x *Index[C, E]) Get(id string) (E, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	i, ok := x.byID[id]
	if !ok {
		var zero E
		return zero, false
	}
	return x.records[i].entry, true
}

// ByCategory returns the entries of category c in registration order.
// A category outside the enum is a *CategoryError, never an empty result.
func (x *Index[C, E]) ByCategory(c C) ([]E, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if _, ok := x.known[c]; !ok {
		return nil, &CategoryError{Category: fmt.Sprint(c)}
	}
	out := []E{}
	for _, r := range x.records {
		if r.entry.EntryCategory() == c {
			out = append(out, r.entry)
		}
	}
	return out, nil
}

// Search returns, in registration order, every entry with at least one
// searchable field containing query, ignoring case. The empty query
// matches every entry.
func (x *Index[C, E]) Search(query string) []E {
	q := cases.Fold().String(query)

	x.mu.RLock()
	defer x.mu.RUnlock()
	out := []E{}
	for _, r := range x.records {
		if q == "" || matchAny(r.folded, q) {
			out = append(out, r.entry)
		}
	}
	return out
}

// Grouped returns every entry keyed by category. Every category of the enum
// is present, including those without entries.
func (x *Index[C, E]) Grouped() map[C][]E {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make(map[C][]E, len(x.categories))
	for _, c := range x.categories {
		out[c] = []E{}
	}
	for _, r := range x.records {
		c := r.entry.EntryCategory()
		out[c] = append(out[c], r.entry)
	}
	return out
}

// Categories returns the closed category set in enumeration order.
func (x *Index[C, E]) Categories() []C {
	out := make([]C, len(x.categories))
	copy(out, x.categories)
	return out
}

// All returns every entry in registration order.
func (x *Index[C, E]) All() []E {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]E, 0, len(x.records))
	for _, r := range x.records {
		out = append(out, r.entry)
	}
	return out
}

// Len returns the number of registered entries.
func (x *Index[C, E]) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.records)
}
