package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"root-canal", "dental-crown", "braces", "dental-implant"}

	got := Suggest("root-canl", candidates, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "root-canal", got[0])

	assert.Equal(t, []string{"braces"}, Suggest("BRACES", candidates, 1))
	assert.Empty(t, Suggest("qqqq", candidates, 3))
	assert.Empty(t, Suggest("", candidates, 3))
	assert.Empty(t, Suggest("braces", candidates, 0))
}

func TestSuggest_LimitsResults(t *testing.T) {
	got := Suggest("dental", []string{"dental-crown", "dental-implant", "dental-sealants"}, 2)
	assert.Len(t, got, 2)
}
