package content

import (
	"fmt"
	"strings"
)

// Level is the depth of an explanation, from lay reader to specialist.
type Level int

const (
	LevelBasic Level = iota + 1
	LevelIntermediate
	LevelAdvanced
	LevelClinical
	LevelSpecialist
)

var levelNames = map[Level]string{
	LevelBasic:        "basic",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
	LevelClinical:     "clinical",
	LevelSpecialist:   "specialist",
}

// Levels returns every level, shallowest first.
func Levels() []Level {
	return []Level{LevelBasic, LevelIntermediate, LevelAdvanced, LevelClinical, LevelSpecialist}
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel accepts a level name ("clinical") or its number ("4").
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if s == l.String() || s == fmt.Sprint(int(l)) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (want one of basic, intermediate, advanced, clinical, specialist)", s)
}

// Explanations holds one text per level.
type Explanations struct {
	Basic        string `yaml:"basic" toml:"basic" json:"basic"`
	Intermediate string `yaml:"intermediate" toml:"intermediate" json:"intermediate"`
	Advanced     string `yaml:"advanced" toml:"advanced" json:"advanced"`
	Clinical     string `yaml:"clinical" toml:"clinical" json:"clinical"`
	Specialist   string `yaml:"specialist" toml:"specialist" json:"specialist"`
}

// At returns the explanation for l, or "" for an unknown level.
func (e Explanations) At(l Level) string {
	switch l {
	case LevelBasic:
		return e.Basic
	case LevelIntermediate:
		return e.Intermediate
	case LevelAdvanced:
		return e.Advanced
	case LevelClinical:
		return e.Clinical
	case LevelSpecialist:
		return e.Specialist
	}
	return ""
}

// Texts returns the explanations shallowest first.
func (e Explanations) Texts() []string {
	return []string{e.Basic, e.Intermediate, e.Advanced, e.Clinical, e.Specialist}
}
