package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/platform/config"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.4.0", "c0ffee1", "2026-10-01"

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "1.4.0")
	require.Contains(t, out, "c0ffee1")
	require.Contains(t, out, "2026-10-01")
}

func TestRenderCommandWritesDocumentToStdout(t *testing.T) {
	out, _, err := executeCommand(t, "render", "--lang", "en")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	lang, _ := doc.Find("html").Attr("lang")
	require.Equal(t, "en", lang)
	require.Equal(t, 1, doc.Find("[data-navbar]").Length())
	hidden, _ := doc.Find("#mega-menu").Attr("aria-hidden")
	require.Equal(t, "true", hidden)
}

func TestRenderCommandWritesFileWithMenuOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	out, errOut, err := executeCommand(t, "render", "--out", path, "--menu-open", "--no-tailwind")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, errOut, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	expanded, _ := doc.Find("[data-menu-trigger]").Attr("aria-expanded")
	require.Equal(t, "true", expanded)
	require.Zero(t, doc.Find(`script[src*="tailwindcss"]`).Length())
}

func TestRenderCommandRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: {}\n"), 0o600))

	_, _, err := executeCommand(t, "--catalog", path, "render")
	require.Error(t, err)
}

func TestPreviewCommandRejectsBadDelay(t *testing.T) {
	_, _, err := executeCommand(t, "preview", "--close-delay=-5ms")
	require.ErrorContains(t, err, "must be positive")
}

func TestParseDelay(t *testing.T) {
	d, err := parseDelay("250ms")
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, d)

	_, err = parseDelay("soon")
	require.Error(t, err)
	_, err = parseDelay("0s")
	require.Error(t, err)
}

func TestNewServerWiresConfiguration(t *testing.T) {
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvFile(""), config.WithEnvMap(map[string]string{
		"DATASKOOLS_WEB_PORT":             "9090",
		"DATASKOOLS_WEB_LANGUAGE":         "en-gb",
		"DATASKOOLS_WEB_MENU_CLOSE_DELAY": "300ms",
		"DATASKOOLS_WEB_TAILWIND_CDN":     "false",
		"DATASKOOLS_WEB_BASE_URL":         "https://dataskools.example/",
	}))
	require.NoError(t, err)

	srv, err := newServer(cfg, content.MustDefault(), zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, ":9090", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	lang, _ := doc.Find("html").Attr("lang")
	require.Equal(t, "en-GB", lang)
	delay, _ := doc.Find("[data-navbar]").Attr("data-hover-close-delay")
	require.Equal(t, "300", delay)
	require.Zero(t, doc.Find(`script[src*="tailwindcss"]`).Length())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, "https://dataskools.example/", canonical)
}
