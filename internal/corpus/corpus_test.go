package corpus

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID       string   `yaml:"id" toml:"id"`
	Category string   `yaml:"category" toml:"category"`
	Risks    []string `yaml:"risks" toml:"risks"`
}

func TestDecode_YAML(t *testing.T) {
	data := []byte("entries:\n  - id: crown\n    category: restorative\n    risks: [sensitivity]\n  - id: veneer\n    category: cosmetic\n")
	got, err := Decode[item]("dental.yaml", data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, item{ID: "crown", Category: "restorative", Risks: []string{"sensitivity"}}, got[0])
	assert.Equal(t, "veneer", got[1].ID)
}

func TestDecode_YAMLWithBOM(t *testing.T) {
	data := []byte("\ufeffentries:\n  - id: a\n")
	got, err := Decode[item]("a.yml", data)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDecode_YAMLMultipleDocuments(t *testing.T) {
	data := []byte("entries:\n  - id: a\n---\nentries:\n  - id: b\n")
	got, err := Decode[item]("x.yaml", data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	_, err = Decode[item]("x.yaml", []byte("entries:\n  - id: a\n---\nentries:\n  - id: b\n    riks: [typo]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document 2")
}

func TestDecode_TOML(t *testing.T) {
	data := []byte("[[entries]]\nid = \"liver\"\ncategory = \"liver\"\nrisks = [\"bleeding\", \"rejection\"]\n")
	got, err := Decode[item]("extra.toml", data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"bleeding", "rejection"}, got[0].Risks)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode[item]("x.yaml", []byte("entries:\n  - id: a\n    riks: [typo]\n"))
	assert.Error(t, err)

	_, err = Decode[item]("x.toml", []byte("[[entries]]\nid = \"a\"\nriks = [\"typo\"]\n"))
	assert.Error(t, err)
}

func TestDecode_EmptyFile(t *testing.T) {
	got, err := Decode[item]("empty.yaml", nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode[item]("notes.json", []byte("{}"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFS_OrderAndExcludes(t *testing.T) {
	fsys := fstest.MapFS{
		"content/dental/b.yaml":         {Data: []byte("entries:\n  - id: b1\n")},
		"content/dental/a.toml":         {Data: []byte("[[entries]]\nid = \"a1\"\n")},
		"content/dental/README.md":      {Data: []byte("# not content")},
		"content/dental/draft.tmp.yaml": {Data: []byte("entries:\n  - id: draft\n")},
		"content/dental/wip/c.yaml":     {Data: []byte("entries:\n  - id: wip\n")},
		"content/dental/nested/d.yaml":  {Data: []byte("entries:\n  - id: d1\n")},
		"content/transplant/other.yaml": {Data: []byte("entries:\n  - id: nope\n")},
	}

	got, err := LoadFS[item](fsys, "content/dental", []string{"*.tmp.yaml", "wip"})
	require.NoError(t, err)

	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a1", "b1", "d1"}, ids)
}

func TestLoadFS_MissingRoot(t *testing.T) {
	got, err := LoadFS[item](fstest.MapFS{}, "content/dental", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadFS_PropagatesDecodeErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"c/bad.yaml": {Data: []byte("entries: [unterminated\n")},
	}
	_, err := LoadFS[item](fsys, "c", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestMatchesExclude(t *testing.T) {
	assert.True(t, matchesExclude("drafts/x.yaml", []string{"drafts/**"}))
	assert.True(t, matchesExclude("deep/x.bak", []string{"*.bak"}))
	assert.False(t, matchesExclude("keep.yaml", []string{"*.bak"}))
}
