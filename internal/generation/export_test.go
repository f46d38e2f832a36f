package generation

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devd.dev/internal/components"
	"devd.dev/internal/content"
	"devd.dev/internal/models"
)

func newExporter(t *testing.T, assetsDir string) *Exporter {
	t.Helper()
	e := NewExporter(content.NewStore(content.Default()), assetsDir, nil)
	e.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestExport_PageMatchesRender(t *testing.T) {
	out := t.TempDir()
	_, err := newExporter(t, "").Export(out)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, components.Render(&want, content.Default()))

	got, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))
}

func TestExport_APIDocuments(t *testing.T) {
	out := t.TempDir()
	_, err := newExporter(t, "").Export(out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "api", "projects.json"))
	require.NoError(t, err)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(data, &projects))
	assert.Equal(t, content.Default().Projects.Projects, projects)

	for _, name := range []string{"hero.json", "clients.json", "resume.json", "tags.json"} {
		assert.FileExists(t, filepath.Join(out, "api", name))
	}
}

func TestExport_Manifest(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "profile-sq.png"), []byte("png"), 0644))

	out := t.TempDir()
	m, err := newExporter(t, assets).Export(out)
	require.NoError(t, err)

	assert.Equal(t, 9, m.Projects)
	assert.Equal(t, "Devansh Purohit - Development Portfolio", m.Title)
	assert.Equal(t, 2024, m.GeneratedAt.Year())
	assert.Contains(t, m.Files, "index.html")
	assert.Contains(t, m.Files, "static/css/site.css")
	assert.Contains(t, m.Files, "static/icons.svg")
	assert.Contains(t, m.Files, "image/profile-sq.png")
	assert.IsIncreasing(t, m.Files)

	data, err := os.ReadFile(filepath.Join(out, ManifestFile))
	require.NoError(t, err)
	var onDisk Manifest
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, m.Files, onDisk.Files)

	for _, f := range m.Files {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(f)))
	}
}

func TestExport_MissingAssetsDir(t *testing.T) {
	out := t.TempDir()
	m, err := newExporter(t, filepath.Join(t.TempDir(), "missing")).Export(out)
	require.NoError(t, err)

	for _, f := range m.Files {
		assert.NotContains(t, f, "image/")
	}
}
