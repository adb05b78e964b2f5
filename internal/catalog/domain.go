// Package catalog presents the reference domains behind one string-keyed
// interface for the CLI and snapshot export.
package catalog

import (
	"github.com/kamusis/medref/internal/content"
)

// Domain is a loaded reference domain with its category type erased.
type Domain interface {
	Name() string
	Title() string
	Categories() []string
	Get(id string) (content.Document, bool)
	ByCategory(category string) ([]content.Document, error)
	Search(query string) []content.Document
	Grouped() []Group
	Len() int
	IDs() []string
}

// Group is one category of a domain with its documents in registration order.
type Group struct {
	Category  string             `json:"category"`
	Documents []content.Document `json:"documents"`
}

// Documented is an index entry that can render itself for display.
type Documented[C ~string] interface {
	content.Entry[C]
	Document() content.Document
}

// Wrap adapts idx to Domain.
func Wrap[C ~string, E Documented[C]](name, title string, idx *content.Index[C, E]) Domain {
	return &indexDomain[C, E]{name: name, title: title, idx: idx}
}

type indexDomain[C ~string, E Documented[C]] struct {
	name  string
	title string
	idx   *content.Index[C, E]
}

func (d *indexDomain[C, E]) Name() string  { return d.name }
func (d *indexDomain[C, E]) Title() string { return d.title }
func (d *indexDomain[C, E]) Len() int      { return d.idx.Len() }

func (d *indexDomain[C, E]) Categories() []string {
	cats := d.idx.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func (d *indexDomain[C, E]) Get(id string) (content.Document, bool) {
	e, ok := d.idx.Get(id)
	if !ok {
		return content.Document{}, false
	}
	return e.Document(), true
}

func (d *indexDomain[C, E]) ByCategory(category string) ([]content.Document, error) {
	es, err := d.idx.ByCategory(C(category))
	if err != nil {
		return nil, err
	}
	return documents(es), nil
}

func (d *indexDomain[C, E]) Search(query string) []content.Document {
	return documents(d.idx.Search(query))
}

func (d *indexDomain[C, E]) Grouped() []Group {
	g := d.idx.Grouped()
	out := make([]Group, 0, len(g))
	for _, c := range d.idx.Categories() {
		out = append(out, Group{Category: string(c), Documents: documents(g[c])})
	}
	return out
}

func (d *indexDomain[C, E]) IDs() []string {
	all := d.idx.All()
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.EntryID()
	}
	return out
}

func documents[E interface{ Document() content.Document }](es []E) []content.Document {
	out := make([]content.Document, len(es))
	for i, e := range es {
		out[i] = e.Document()
	}
	return out
}
