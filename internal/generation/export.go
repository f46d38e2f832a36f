// Package generation writes the site to a directory for static hosting.
package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"devd.dev/internal/components"
	"devd.dev/internal/content"
	"devd.dev/internal/services"
	"devd.dev/web"
)

// ManifestFile is the name of the manifest written next to index.html
const ManifestFile = "manifest.json"

// Manifest records what an export wrote
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Title       string    `json:"title"`
	Projects    int       `json:"projects"`
	Files       []string  `json:"files"` // slash separated, relative to the output directory
}

// Exporter writes the page, the API documents and the assets to a directory
type Exporter struct {
	store     *content.Store
	assetsDir string
	logger    *zap.Logger
	now       func() time.Time
}

// NewExporter creates an exporter. An empty assetsDir skips the image copy.
func NewExporter(store *content.Store, assetsDir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		store:     store,
		assetsDir: assetsDir,
		logger:    logger,
		now:       time.Now,
	}
}

// Export writes the site into outputDir and returns the manifest
func (e *Exporter) Export(outputDir string) (*Manifest, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	p := e.store.Current()
	projects := services.NewProjectService(e.store)
	portfolio := services.NewPortfolioService(e.store)

	m := &Manifest{
		GeneratedAt: e.now().UTC(),
		Title:       p.Title,
		Projects:    len(p.Projects.Projects),
	}

	var page bytes.Buffer
	if err := components.Render(&page, p); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	if err := e.write(outputDir, "index.html", page.Bytes(), m); err != nil {
		return nil, err
	}

	documents := []struct {
		name string
		data any
	}{
		{"api/projects.json", projects.GetAll()},
		{"api/hero.json", portfolio.Hero()},
		{"api/clients.json", portfolio.Clients()},
		{"api/resume.json", portfolio.Resume()},
		{"api/tags.json", portfolio.Tags()},
	}
	for _, doc := range documents {
		data, err := json.MarshalIndent(doc.data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", doc.name, err)
		}
		if err := e.write(outputDir, doc.name, data, m); err != nil {
			return nil, err
		}
	}

	if err := e.copyFS(outputDir, "static", web.Static(), m); err != nil {
		return nil, fmt.Errorf("failed to copy static files: %w", err)
	}

	if e.assetsDir != "" {
		if _, err := os.Stat(e.assetsDir); errors.Is(err, os.ErrNotExist) {
			e.logger.Warn("Assets directory not found, skipping images", zap.String("dir", e.assetsDir))
		} else if err := e.copyFS(outputDir, "image", os.DirFS(e.assetsDir), m); err != nil {
			return nil, fmt.Errorf("failed to copy images: %w", err)
		}
	}

	sort.Strings(m.Files)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, ManifestFile), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	e.logger.Info("Export complete",
		zap.String("dir", outputDir),
		zap.Int("files", len(m.Files)))
	return m, nil
}

func (e *Exporter) write(outputDir, name string, data []byte, m *Manifest) error {
	target := filepath.Join(outputDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	m.Files = append(m.Files, name)
	e.logger.Debug("Wrote file", zap.String("file", name), zap.Int("bytes", len(data)))
	return nil
}

// copyFS copies every regular file of src under outputDir/prefix
func (e *Exporter) copyFS(outputDir, prefix string, src fs.FS, m *Manifest) error {
	return fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		f, err := src.Open(name)
		if err != nil {
			return err
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		return e.write(outputDir, path.Join(prefix, name), data, m)
	})
}
