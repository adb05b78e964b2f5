package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"basic", LevelBasic},
		{" Clinical ", LevelClinical},
		{"5", LevelSpecialist},
		{"2", LevelIntermediate},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "0", "6", "expertise"} {
		_, err := ParseLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestExplanations_At(t *testing.T) {
	e := Explanations{Basic: "b", Intermediate: "i", Advanced: "a", Clinical: "c", Specialist: "s"}
	var got []string
	for _, l := range Levels() {
		got = append(got, e.At(l))
	}
	assert.Equal(t, e.Texts(), got)
	assert.Empty(t, e.At(Level(9)))
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestDocument_Fields(t *testing.T) {
	d := Document{
		Name:        "Crown",
		LocalName:   "Corona",
		Description: "Cap",
		Sections: Sections(
			NewSection("Risks", []string{"sensitivity"}),
			NewSection("Empty", nil),
		),
		Explanations: Explanations{Basic: "a cap", Specialist: "full coverage"},
	}
	assert.Len(t, d.Sections, 1)
	assert.Equal(t, []string{"Crown", "Corona", "Cap", "sensitivity", "a cap", "full coverage"}, d.Fields())
}
