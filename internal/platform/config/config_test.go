package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, ":8080", cfg.Server.Addr())
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 7*24*time.Hour, cfg.Server.StaticMaxAge)

	require.Equal(t, "Development", cfg.Site.Environment)
	require.False(t, cfg.Site.IsProduction())
	require.Equal(t, "de", cfg.Site.Language)
	require.Empty(t, cfg.Site.BaseURL)
	require.Equal(t, 120*time.Millisecond, cfg.Site.MenuCloseDelay)
	require.True(t, cfg.Site.TailwindCDN)

	require.Empty(t, cfg.Tracing.Endpoint)
	require.Equal(t, "dataskools-web", cfg.Tracing.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"DATASKOOLS_WEB_PORT":             "9090",
		"PORT":                            "7070",
		"DATASKOOLS_WEB_READ_TIMEOUT":     "5s",
		"DATASKOOLS_WEB_ENV":              "production",
		"DATASKOOLS_WEB_LANGUAGE":         "en-us",
		"DATASKOOLS_WEB_BASE_URL":         "https://dataskools.io/",
		"DATASKOOLS_WEB_MENU_CLOSE_DELAY": "250ms",
		"DATASKOOLS_WEB_TAILWIND_CDN":     "off",
		"DATASKOOLS_WEB_STATIC_MAX_AGE":   "1d",
		"OTEL_EXPORTER_OTLP_ENDPOINT":     "localhost:4318",
		"OTEL_SERVICE_NAME":               "landing",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 24*time.Hour, cfg.Server.StaticMaxAge)
	require.Equal(t, "Production", cfg.Site.Environment)
	require.True(t, cfg.Site.IsProduction())
	require.Equal(t, "en-US", cfg.Site.Language)
	require.Equal(t, "https://dataskools.io", cfg.Site.BaseURL)
	require.Equal(t, 250*time.Millisecond, cfg.Site.MenuCloseDelay)
	require.False(t, cfg.Site.TailwindCDN)
	require.Equal(t, "localhost:4318", cfg.Tracing.Endpoint)
	require.Equal(t, "landing", cfg.Tracing.ServiceName)
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "7070"}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadReadsDotEnvWithLowerPrecedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	content := "# local overrides\nexport DATASKOOLS_WEB_PORT=6060\nDATASKOOLS_WEB_LANGUAGE=\"en\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, "6060", cfg.Server.Port)
	require.Equal(t, "en", cfg.Site.Language)

	cfg, err = Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"DATASKOOLS_WEB_PORT": "5050"}))
	require.NoError(t, err)
	require.Equal(t, "5050", cfg.Server.Port, "explicit map wins over .env")
}

func TestLoadReportsInvalidFields(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"DATASKOOLS_WEB_PORT":             "http",
		"DATASKOOLS_WEB_READ_TIMEOUT":     "soon",
		"DATASKOOLS_WEB_ENV":              "qa",
		"DATASKOOLS_WEB_LANGUAGE":         "not a language",
		"DATASKOOLS_WEB_BASE_URL":         "::not a url",
		"DATASKOOLS_WEB_MENU_CLOSE_DELAY": "-5ms",
		"DATASKOOLS_WEB_TAILWIND_CDN":     "maybe",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ElementsMatch(t, []string{
		"Server.Port",
		"Server.ReadTimeout",
		"Site.Environment",
		"Site.Language",
		"Site.BaseURL",
		"Site.MenuCloseDelay",
		"Site.TailwindCDN",
	}, verr.Fields())
	require.Contains(t, err.Error(), "Site.Language")
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	d, err := parseDuration("3d")
	require.NoError(t, err)
	require.Equal(t, 72*time.Hour, d)

	d, err = parseDuration("90s")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)

	_, err = parseDuration("xd")
	require.Error(t, err)

	_, err = parseDuration("-1d")
	require.Error(t, err)
	_, err = parseDuration("200000d")
	require.Error(t, err)

	d, err = parseDuration("106751d")
	require.NoError(t, err)
	require.Equal(t, 106751*24*time.Hour, d)
}
