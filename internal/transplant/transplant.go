// Package transplant is the transplant medicine reference domain.
package transplant

import (
	"embed"

	"github.com/kamusis/medref/internal/content"
	"github.com/kamusis/medref/internal/corpus"
)

// Name identifies the domain in the catalog and in content directories.
const Name = "transplant"

//go:embed data
var data embed.FS

// Category partitions transplant entries by organ or topic.
type Category string

const (
	Kidney     Category = "kidney"
	Liver      Category = "liver"
	Heart      Category = "heart"
	Lung       Category = "lung"
	Pancreas   Category = "pancreas"
	StemCell   Category = "stem-cell"
	Immunology Category = "immunology"
	Donation   Category = "donation"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{Kidney, Liver, Heart, Lung, Pancreas, StemCell, Immunology, Donation}
}

// Entry describes one transplant procedure or topic.
type Entry struct {
	ID                string               `yaml:"id" toml:"id"`
	Name              string               `yaml:"name" toml:"name"`
	LocalName         string               `yaml:"local_name" toml:"local_name"`
	Category          Category             `yaml:"category" toml:"category"`
	Description       string               `yaml:"description" toml:"description"`
	Indications       []string             `yaml:"indications" toml:"indications"`
	Contraindications []string             `yaml:"contraindications" toml:"contraindications"`
	Process           []string             `yaml:"process" toml:"process"`
	Risks             []string             `yaml:"risks" toml:"risks"`
	FollowUp          []string             `yaml:"follow_up" toml:"follow_up"`
	Explanations      content.Explanations `yaml:"explanations" toml:"explanations"`
}

func (e Entry) EntryID() string            { return e.ID }
func (e Entry) EntryCategory() Category    { return e.Category }
func (e Entry) SearchableFields() []string { return e.Document().Fields() }

// Document returns the display view of e.
func (e Entry) Document() content.Document {
	return content.Document{
		Domain:      Name,
		ID:          e.ID,
		Name:        e.Name,
		LocalName:   e.LocalName,
		Category:    string(e.Category),
		Description: e.Description,
		Sections: content.Sections(
			content.NewSection("Indications", e.Indications),
			content.NewSection("Contraindications", e.Contraindications),
			content.NewSection("Process", e.Process),
			content.NewSection("Risks", e.Risks),
			content.NewSection("Follow-up", e.FollowUp),
		),
		Explanations: e.Explanations,
	}
}

// Index is the content index over transplant entries.
type Index = content.Index[Category, Entry]

// Builtin returns the embedded transplant corpus.
func Builtin() ([]Entry, error) {
	return corpus.LoadFS[Entry](data, "data", nil)
}

// NewIndex returns an index holding the embedded corpus followed by extra.
func NewIndex(extra ...Entry) (*Index, error) {
	entries, err := Builtin()
	if err != nil {
		return nil, err
	}
	idx := content.New[Category, Entry](Categories())
	if err := idx.Register(append(entries, extra...)...); err != nil {
		return nil, err
	}
	return idx, nil
}
