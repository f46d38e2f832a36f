package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"devd.dev/internal/components"
	"devd.dev/internal/models"
)

// Severity ranks a finding. Only errors fail a check.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is one authoring problem
type Finding struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	if f.Field == "" {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// Report is the outcome of Check
type Report struct {
	Findings []Finding `json:"findings"`
	Images   []string  `json:"images"` // every img src on the page, in order
	Links    []string  `json:"links"`  // every external link target, in order
}

// HasErrors reports whether any finding is an error
func (r *Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Count returns the number of findings with the given severity
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Report) add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

// CheckOptions configures Check
type CheckOptions struct {
	// AssetsDir is the directory served at /image/. Empty skips asset checks.
	AssetsDir string
}

// Check looks for authoring mistakes that rendering would otherwise hide:
// constraint violations, unknown or malformed tags, and images that have no
// file in the assets directory.
func Check(p *models.Portfolio, opts CheckOptions) (*Report, error) {
	report := &Report{}
	report.add(Validate(p)...)
	report.add(checkTags(p)...)

	var page bytes.Buffer
	if err := components.Render(&page, p); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		report.Images = append(report.Images, s.AttrOr("src", ""))
	})
	doc.Find(`a[target="_blank"][href]`).Each(func(_ int, s *goquery.Selection) {
		report.Links = append(report.Links, s.AttrOr("href", ""))
	})

	findings, err := checkAssets(report.Images, opts.AssetsDir)
	if err != nil {
		return nil, err
	}
	report.add(findings...)

	return report, nil
}

// CheckFile runs the schema check on the raw file before the model checks
func CheckFile(path string, opts CheckOptions) (*Report, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "unknown format", Cause: err}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var schemaFindings []Finding
	if err := ValidateDocument(data, format); err != nil {
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
		}
		for _, fe := range schemaErr.Errors {
			schemaFindings = append(schemaFindings, Finding{
				Severity: SeverityError,
				Field:    fe.Field,
				Message:  fe.Message,
			})
		}
	}

	p, err := Decode(data, format)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode", Cause: err}
	}

	report, err := Check(p, opts)
	if err != nil {
		return nil, err
	}
	report.Findings = append(schemaFindings, report.Findings...)
	return report, nil
}

func checkTags(p *models.Portfolio) []Finding {
	var findings []Finding
	for i, project := range p.Projects.Projects {
		for _, tag := range project.Tags {
			field := fmt.Sprintf("projects.projects[%d].tags", i)
			if strings.Contains(tag, ",") {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Field:    field,
					Message:  fmt.Sprintf("tag %q contains a comma; tags are never split", tag),
				})
				continue
			}
			if _, ok := p.Tags[tag]; !ok {
				findings = append(findings, Finding{
					Severity: SeverityInfo,
					Field:    field,
					Message:  fmt.Sprintf("tag %q is not in the taxonomy", tag),
				})
			}
		}
	}
	return findings
}

func checkAssets(images []string, assetsDir string) ([]Finding, error) {
	if assetsDir == "" {
		return nil, nil
	}

	info, err := os.Stat(assetsDir)
	if errors.Is(err, os.ErrNotExist) {
		return []Finding{{
			Severity: SeverityWarning,
			Field:    "assets",
			Message:  fmt.Sprintf("assets directory %s not found; image checks skipped", assetsDir),
		}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat assets directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets path %s is not a directory", assetsDir)
	}

	var findings []Finding
	seen := make(map[string]bool)
	for _, src := range images {
		if !strings.HasPrefix(src, models.ImageRoot) || seen[src] {
			continue
		}
		seen[src] = true

		name := filepath.FromSlash(strings.TrimPrefix(src, models.ImageRoot))
		if _, err := os.Stat(filepath.Join(assetsDir, name)); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Field:    "assets",
				Message:  fmt.Sprintf("image %s has no file in %s", src, assetsDir),
			})
		}
	}
	return findings, nil
}

// LogFindings writes findings to logger at a level matching their severity
func LogFindings(logger *zap.Logger, findings []Finding) {
	for _, f := range findings {
		fields := []zap.Field{zap.String("field", f.Field)}
		switch f.Severity {
		case SeverityError:
			logger.Warn("content error: "+f.Message, fields...)
		case SeverityWarning:
			logger.Warn(f.Message, fields...)
		default:
			logger.Debug(f.Message, fields...)
		}
	}
}
