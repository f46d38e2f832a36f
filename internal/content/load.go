package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"devd.dev/internal/models"
)

// Format identifies a content file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported content format: %q", s)
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("content file %s has no extension", path)
	}
	return ParseFormat(ext)
}

// LoadError is returned when a content file cannot be read or decoded
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("content %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a content file. Sections the file leaves empty keep their
// built-in headings and labels; lists are taken from the file as-is.
func Load(path string) (*models.Portfolio, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Message: "path is empty"}
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "unknown format", Cause: err}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	p, err := Decode(data, format)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
	}

	return p, nil
}

// LoadOrDefault loads path, or returns the built-in content when path is empty
func LoadOrDefault(path string) (*models.Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Decode parses content in the given format and fills empty labels
func Decode(data []byte, format Format) (*models.Portfolio, error) {
	var p models.Portfolio

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content format: %q", format)
	}

	applyDefaults(&p, Default())
	return &p, nil
}

// Encode writes p in the given format
func Encode(w io.Writer, p *models.Portfolio, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(p)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("unsupported content format: %q", format)
}

// applyDefaults fills empty scalar fields from defaults.
// Lists are never merged: an empty list in a file means an empty section.
func applyDefaults(p *models.Portfolio, defaults *models.Portfolio) {
	if p.Title == "" {
		p.Title = defaults.Title
	}
	if p.Description == "" {
		p.Description = defaults.Description
	}
	if p.Hero.ImageAlt == "" {
		p.Hero.ImageAlt = defaults.Hero.ImageAlt
	}
	if p.Clients.Heading == "" {
		p.Clients.Heading = defaults.Clients.Heading
	}
	if p.Projects.Heading == "" {
		p.Projects.Heading = defaults.Projects.Heading
	}
	if p.Resume.Heading == "" {
		p.Resume.Heading = defaults.Resume.Heading
	}
	if p.Resume.ActionLabel == "" {
		p.Resume.ActionLabel = defaults.Resume.ActionLabel
	}
}
