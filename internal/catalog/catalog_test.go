package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kamusis/medref/internal/content"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func docIDs(docs []content.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestOpen_Builtin(t *testing.T) {
	c, err := Open(Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"dental", "transplant", "emergency"}, c.Names())

	doc, ok := c.Find("root-canal")
	require.True(t, ok)
	assert.Equal(t, "dental", doc.Domain)
	assert.Equal(t, "endodontic", doc.Category)

	doc, ok = c.Find("liver-transplant")
	require.True(t, ok)
	assert.Equal(t, "transplant", doc.Domain)

	_, ok = c.Find("nonexistent-id-xyz")
	assert.False(t, ok)

	assert.Equal(t, []string{"acute-cholecystitis"}, docIDs(c.Search("gall")))
	assert.Len(t, c.Search(""), len(c.IDs()))
}

func TestCatalog_Domain(t *testing.T) {
	c, err := Open(Options{})
	require.NoError(t, err)

	d, err := c.Domain("emergency")
	require.NoError(t, err)
	assert.Equal(t, "Surgical emergencies", d.Title())
	assert.Equal(t,
		[]string{"abdominal", "trauma", "vascular", "thoracic", "neurosurgical", "soft-tissue"},
		d.Categories())

	groups := d.Grouped()
	require.Len(t, groups, len(d.Categories()))
	total := 0
	for i, g := range groups {
		assert.Equal(t, d.Categories()[i], g.Category)
		total += len(g.Documents)
	}
	assert.Equal(t, d.Len(), total)

	_, err = d.ByCategory("orthopedic")
	assert.ErrorIs(t, err, content.ErrInvalidCategory)

	_, err = c.Domain("cardiology")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestOpen_ContentDirExtras(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dental", "extra.yaml"), `entries:
  - id: inlay
    name: Ceramic Inlay
    category: restorative
    description: Lab-made filling bonded into a prepared cavity.
`)
	writeFile(t, filepath.Join(dir, "dental", "draft.tmp.yaml"), `entries:
  - id: draft
    name: Draft
    category: restorative
`)

	core, logs := observer.New(zap.DebugLevel)
	c, err := Open(Options{ContentDir: dir, Excludes: []string{"*.tmp.yaml"}, Logger: zap.New(core)})
	require.NoError(t, err)

	doc, ok := c.Find("inlay")
	require.True(t, ok)
	assert.Equal(t, "dental", doc.Domain)
	_, ok = c.Find("draft")
	assert.False(t, ok)

	loaded := logs.FilterMessage("domain loaded").All()
	require.Len(t, loaded, 3)
	assert.Equal(t, "dental", loaded[0].ContextMap()["domain"])
	assert.EqualValues(t, 1, loaded[0].ContextMap()["extra"])
}

func TestOpen_ContentDirErrors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "transplant", "dup.yaml"), `entries:
  - id: heart-transplant
    name: Again
    category: heart
`)
		_, err := Open(Options{ContentDir: dir})
		assert.ErrorIs(t, err, content.ErrDuplicateID)
		assert.ErrorContains(t, err, "transplant")
	})

	t.Run("unknown category", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "emergency", "bad.toml"), `[[entries]]
id = "hip-fracture"
name = "Hip Fracture"
category = "orthopedic"
`)
		_, err := Open(Options{ContentDir: dir})
		assert.ErrorIs(t, err, content.ErrInvalidCategory)
	})

	t.Run("unknown field", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "dental", "bad.yaml"), `entries:
  - id: x
    name: X
    category: cosmetic
    colour: white
`)
		_, err := Open(Options{ContentDir: dir})
		assert.ErrorContains(t, err, "dental")
	})
}

func TestOpen_MissingContentDir(t *testing.T) {
	_, err := Open(Options{ContentDir: filepath.Join(t.TempDir(), "absent")})
	assert.NoError(t, err)
}

func TestDomainNamesMatchOpen(t *testing.T) {
	c, err := Open(Options{})
	require.NoError(t, err)
	assert.Equal(t, DomainNames(), c.Names())
}
