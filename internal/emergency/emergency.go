// Package emergency is the surgical emergencies reference domain.
package emergency

import (
	"embed"
	"fmt"

	"github.com/kamusis/medref/internal/content"
	"github.com/kamusis/medref/internal/corpus"
)

// Name identifies the domain in the catalog and in content directories.
const Name = "emergency"

//go:embed data
var data embed.FS

// Category partitions emergencies by body region or tissue.
type Category string

const (
	Abdominal     Category = "abdominal"
	Trauma        Category = "trauma"
	Vascular      Category = "vascular"
	Thoracic      Category = "thoracic"
	Neurosurgical Category = "neurosurgical"
	SoftTissue    Category = "soft-tissue"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{Abdominal, Trauma, Vascular, Thoracic, Neurosurgical, SoftTissue}
}

// Urgency is how quickly an emergency needs definitive care.
type Urgency string

const (
	Immediate Urgency = "immediate"
	Urgent    Urgency = "urgent"
	Expedited Urgency = "expedited"
)

// Entry describes one surgical emergency.
type Entry struct {
	ID            string               `yaml:"id" toml:"id"`
	Name          string               `yaml:"name" toml:"name"`
	LocalName     string               `yaml:"local_name" toml:"local_name"`
	Category      Category             `yaml:"category" toml:"category"`
	Urgency       Urgency              `yaml:"urgency" toml:"urgency"`
	Description   string               `yaml:"description" toml:"description"`
	Symptoms      []string             `yaml:"symptoms" toml:"symptoms"`
	Diagnosis     []string             `yaml:"diagnosis" toml:"diagnosis"`
	Treatment     []string             `yaml:"treatment" toml:"treatment"`
	Complications []string             `yaml:"complications" toml:"complications"`
	Explanations  content.Explanations `yaml:"explanations" toml:"explanations"`
}

func (e Entry) EntryID() string            { return e.ID }
func (e Entry) EntryCategory() Category    { return e.Category }
func (e Entry) SearchableFields() []string { return e.Document().Fields() }

// Document returns the display view of e. The urgency is shown as its own
// section so it is searchable alongside the lists.
func (e Entry) Document() content.Document {
	var urgency []string
	if e.Urgency != "" {
		urgency = []string{string(e.Urgency)}
	}
	return content.Document{
		Domain:      Name,
		ID:          e.ID,
		Name:        e.Name,
		LocalName:   e.LocalName,
		Category:    string(e.Category),
		Description: e.Description,
		Sections: content.Sections(
			content.NewSection("Urgency", urgency),
			content.NewSection("Symptoms", e.Symptoms),
			content.NewSection("Diagnosis", e.Diagnosis),
			content.NewSection("Treatment", e.Treatment),
			content.NewSection("Complications", e.Complications),
		),
		Explanations: e.Explanations,
	}
}

// Index is the content index over emergency entries.
type Index = content.Index[Category, Entry]

// Builtin returns the embedded emergency corpus.
func Builtin() ([]Entry, error) {
	entries, err := corpus.LoadFS[Entry](data, "data", nil)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// NewIndex returns an index holding the embedded corpus followed by extra.
func NewIndex(extra ...Entry) (*Index, error) {
	entries, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, e := range extra {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	idx := content.New[Category, Entry](Categories())
	if err := idx.Register(append(entries, extra...)...); err != nil {
		return nil, err
	}
	return idx, nil
}

func (e Entry) validate() error {
	switch e.Urgency {
	case "", Immediate, Urgent, Expedited:
		return nil
	}
	return fmt.Errorf("entry %s: unknown urgency %q", e.ID, e.Urgency)
}
