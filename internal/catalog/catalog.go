package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/kamusis/medref/internal/content"
	"github.com/kamusis/medref/internal/corpus"
	"github.com/kamusis/medref/internal/dental"
	"github.com/kamusis/medref/internal/emergency"
	"github.com/kamusis/medref/internal/transplant"
)

// ErrUnknownDomain is returned when a domain name is not in the catalog.
var ErrUnknownDomain = errors.New("unknown domain")

// Options controls where Open looks for content beyond the embedded corpus.
type Options struct {
	// ContentDir holds one subdirectory per domain with extra content
	// files. Empty means embedded content only.
	ContentDir string
	Excludes   []string
	Logger     *zap.Logger
}

// Catalog is the set of loaded domains in a fixed order.
type Catalog struct {
	domains []Domain
}

// New returns a catalog over domains, in the given order.
func New(domains ...Domain) *Catalog {
	return &Catalog{domains: append([]Domain(nil), domains...)}
}

// DomainNames returns the names of the built-in domains in catalog order.
func DomainNames() []string {
	return []string{dental.Name, transplant.Name, emergency.Name}
}

// Open loads every domain from the embedded corpus plus any files under
// opts.ContentDir.
func Open(opts Options) (*Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var fsys fs.FS
	if opts.ContentDir != "" {
		fsys = os.DirFS(opts.ContentDir)
	}

	dentalIdx, err := load(fsys, dental.Name, opts.Excludes, log, dental.NewIndex)
	if err != nil {
		return nil, err
	}
	transplantIdx, err := load(fsys, transplant.Name, opts.Excludes, log, transplant.NewIndex)
	if err != nil {
		return nil, err
	}
	emergencyIdx, err := load(fsys, emergency.Name, opts.Excludes, log, emergency.NewIndex)
	if err != nil {
		return nil, err
	}

	return New(
		Wrap(dental.Name, "Dental procedures", dentalIdx),
		Wrap(transplant.Name, "Transplant medicine", transplantIdx),
		Wrap(emergency.Name, "Surgical emergencies", emergencyIdx),
	), nil
}

type sized interface{ Len() int }

func load[T any, I sized](fsys fs.FS, name string, excludes []string, log *zap.Logger, build func(...T) (I, error)) (I, error) {
	var zero I
	var extra []T
	if fsys != nil {
		var err error
		extra, err = corpus.LoadFS[T](fsys, name, excludes)
		if err != nil {
			return zero, fmt.Errorf("cannot load %s content: %w", name, err)
		}
	}
	idx, err := build(extra...)
	if err != nil {
		return zero, fmt.Errorf("cannot build %s index: %w", name, err)
	}
	log.Debug("domain loaded",
		zap.String("domain", name),
		zap.Int("entries", idx.Len()),
		zap.Int("extra", len(extra)),
	)
	return idx, nil
}

// Domains returns the domains in catalog order.
func (c *Catalog) Domains() []Domain {
	return append([]Domain(nil), c.domains...)
}

// Names returns the domain names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.domains))
	for i, d := range c.domains {
		out[i] = d.Name()
	}
	return out
}

// Domain returns the domain called name.
func (c *Catalog) Domain(name string) (Domain, error) {
	for _, d := range c.domains {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// Find looks id up in every domain and returns the first hit in catalog
// order.
func (c *Catalog) Find(id string) (content.Document, bool) {
	for _, d := range c.domains {
		if doc, ok := d.Get(id); ok {
			return doc, true
		}
	}
	return content.Document{}, false
}

// Search runs query against every domain and concatenates the results in
// catalog order.
func (c *Catalog) Search(query string) []content.Document {
	var out []content.Document
	for _, d := range c.domains {
		out = append(out, d.Search(query)...)
	}
	return out
}

// IDs returns every id in the catalog, domain by domain.
func (c *Catalog) IDs() []string {
	var out []string
	for _, d := range c.domains {
		out = append(out, d.IDs()...)
	}
	return out
}
