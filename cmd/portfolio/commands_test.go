package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"devd.dev/internal/config"
	"devd.dev/internal/content"
	"devd.dev/internal/generation"
)

const brokenContent = `
hero:
  heading: ["Hi"]
  image: /image/me.png
clients:
  clients: []
projects:
  projects:
    - img: /image/a.png
      title: A
      github: not-a-url
resume:
  document_url: https://example.com/cv.pdf
  items: []
`

func TestDump_DefaultYAML(t *testing.T) {
	out, err := execute(t, "dump")
	require.NoError(t, err)

	p, err := content.Decode([]byte(out), content.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, content.Default(), p)
}

func TestDump_JSON(t *testing.T) {
	out, err := execute(t, "dump", "--format", "json")
	require.NoError(t, err)
	assert.NoError(t, content.ValidateDocument([]byte(out), content.FormatJSON))
}

func TestDump_UnknownFormat(t *testing.T) {
	_, err := execute(t, "dump", "--format", "toml")
	assert.ErrorContains(t, err, "unsupported content format")
}

func TestDump_FromContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Mine\n"), 0644))

	out, err := execute(t, "dump", "--content", path, "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Mine", doc["title"])
}

func TestCheck_DefaultContentPasses(t *testing.T) {
	out, err := execute(t, "check", "--assets", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"web, blockchain"`)
	assert.Contains(t, out, "0 errors, 1 warnings, 3 info (14 images, 13 links)")
}

func TestCheck_ErrorsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brokenContent), 0644))

	out, err := execute(t, "check", "--content", path, "--assets", "")
	assert.EqualError(t, err, "content check failed")
	assert.Contains(t, out, "projects.projects[0].github")
}

func TestCheck_JSONReport(t *testing.T) {
	out, err := execute(t, "check", "--json", "--assets", "")
	require.NoError(t, err)

	var report content.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Images, 14)
	assert.False(t, report.HasErrors())
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "generate", dir, "--assets", "")
	require.NoError(t, err)
	assert.Contains(t, out, "to "+dir)

	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "api", "projects.json"))
	assert.FileExists(t, filepath.Join(dir, generation.ManifestFile))
}

func TestGenerate_NeedsOutputDir(t *testing.T) {
	_, err := execute(t, "generate")
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	cfg := &config.Config{ServerAddr: "127.0.0.1:0"}

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, zaptest.NewLogger(t), ready)
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/api/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_InvalidConfig(t *testing.T) {
	cfg := &config.Config{ServerAddr: "127.0.0.1:0", Watch: true}
	err := serve(context.Background(), cfg, zaptest.NewLogger(t), nil)
	assert.ErrorContains(t, err, "watch needs a content file")
}

func TestServe_WatchKeepsTitleOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	site := strings.Replace(brokenContent, "github: not-a-url", "github: https://github.com/example/a.git", 1)
	require.NoError(t, os.WriteFile(path, []byte("title: FromFile\n"+site), 0644))

	cfg := &config.Config{
		ServerAddr:  "127.0.0.1:0",
		ContentPath: path,
		Watch:       true,
		BaseTitle:   "Staging",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, zaptest.NewLogger(t), ready)
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	page := func() string {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return ""
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}
	assert.Contains(t, page(), "<title>Staging</title>")

	edited := strings.Replace(site, "title: A", "title: Edited", 1)
	require.NoError(t, os.WriteFile(path, []byte("title: FromFile2\n"+edited), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(page(), "Edited")
	}, 5*time.Second, 50*time.Millisecond)
	assert.Contains(t, page(), "<title>Staging</title>")
	assert.NotContains(t, page(), "FromFile2")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
