package content

// Document is the domain-neutral view of an entry used for display and
// export.
type Document struct {
	Domain       string       `json:"domain"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	LocalName    string       `json:"local_name,omitempty"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	Sections     []Section    `json:"sections,omitempty"`
	Explanations Explanations `json:"explanations"`
}

// Section is a titled list inside a Document ("Risks", "Aftercare", ...).
type Section struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Fields flattens the document into independent searchable fields.
// Domain entries build their SearchableFields from it.
func (d Document) Fields() []string {
	out := []string{d.Name}
	if d.LocalName != "" {
		out = append(out, d.LocalName)
	}
	out = append(out, d.Description)
	for _, s := range d.Sections {
		out = append(out, s.Items...)
	}
	for _, t := range d.Explanations.Texts() {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NewSection returns a Section, or nil when items is empty so callers can
// skip it.
func NewSection(title string, items []string) *Section {
	if len(items) == 0 {
		return nil
	}
	return &Section{Title: title, Items: items}
}

// Sections collects the non-nil sections.
func Sections(ss ...*Section) []Section {
	out := make([]Section, 0, len(ss))
	for _, s := range ss {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
