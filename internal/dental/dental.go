// Package dental is the dental procedures reference domain.
package dental

import (
	"embed"

	"github.com/kamusis/medref/internal/content"
	"github.com/kamusis/medref/internal/corpus"
)

// Name identifies the domain in the catalog and in content directories.
const Name = "dental"

//go:embed data
var data embed.FS

// Category partitions dental entries.
type Category string

const (
	Preventive    Category = "preventive"
	Restorative   Category = "restorative"
	Endodontic    Category = "endodontic"
	Periodontal   Category = "periodontal"
	Orthodontic   Category = "orthodontic"
	Prosthodontic Category = "prosthodontic"
	OralSurgery   Category = "oral-surgery"
	Cosmetic      Category = "cosmetic"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		Preventive,
		Restorative,
		Endodontic,
		Periodontal,
		Orthodontic,
		Prosthodontic,
		OralSurgery,
		Cosmetic,
	}
}

// Entry describes one dental procedure.
type Entry struct {
	ID           string               `yaml:"id" toml:"id"`
	Name         string               `yaml:"name" toml:"name"`
	LocalName    string               `yaml:"local_name" toml:"local_name"`
	Category     Category             `yaml:"category" toml:"category"`
	Description  string               `yaml:"description" toml:"description"`
	Indications  []string             `yaml:"indications" toml:"indications"`
	Steps        []string             `yaml:"steps" toml:"steps"`
	Risks        []string             `yaml:"risks" toml:"risks"`
	Aftercare    []string             `yaml:"aftercare" toml:"aftercare"`
	Explanations content.Explanations `yaml:"explanations" toml:"explanations"`
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
			content.NewSection("Procedure", e.Steps),
			content.NewSection("Risks", e.Risks),
			content.NewSection("Aftercare", e.Aftercare),
		),
		Explanations: e.Explanations,
	}
}

// Index is the content index over dental entries.
type Index = content.Index[Category, Entry]

// Builtin returns the embedded dental corpus.
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
