package config

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

const (
	envPrefix = "DATASKOOLS_WEB_"

	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 120 * time.Second
	defaultEnvironment    = "Development"
	defaultLanguage       = "de"
	defaultMenuCloseDelay = 120 * time.Millisecond
	defaultStaticMaxAge   = 7 * 24 * time.Hour
	defaultServiceName    = "dataskools-web"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Tracing TracingConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
	StaticMaxAge time.Duration `validate:"gte=0"`
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// SiteConfig controls how the landing page is rendered.
type SiteConfig struct {
	Environment    string        `validate:"required,oneof=Development Staging Production"`
	Language       string        `validate:"required,bcp47_language_tag"`
	BaseURL        string        `validate:"omitempty,url"`
	MenuCloseDelay time.Duration `validate:"gt=0"`
	TailwindCDN    bool
}

// IsProduction reports whether the site runs in the production environment.
func (s SiteConfig) IsProduction() bool {
	return s.Environment == "Production"
}

// TracingConfig configures the OTLP exporter. An empty endpoint disables export.
type TracingConfig struct {
	Endpoint    string
	ServiceName string `validate:"required"`
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies explicit values that take precedence over every other source.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and an explicit map, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	p := parser{lookup: lookup}
	port := p.string(envPrefix+"PORT", "")
	if port == "" {
		port = p.string("PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  p.duration(envPrefix+"READ_TIMEOUT", "Server.ReadTimeout", defaultReadTimeout),
			WriteTimeout: p.duration(envPrefix+"WRITE_TIMEOUT", "Server.WriteTimeout", defaultWriteTimeout),
			IdleTimeout:  p.duration(envPrefix+"IDLE_TIMEOUT", "Server.IdleTimeout", defaultIdleTimeout),
			StaticMaxAge: p.duration(envPrefix+"STATIC_MAX_AGE", "Server.StaticMaxAge", defaultStaticMaxAge),
		},
		Site: SiteConfig{
			Environment:    normalizeEnvironment(p.string(envPrefix+"ENV", defaultEnvironment)),
			Language:       p.language(envPrefix+"LANGUAGE", "Site.Language", defaultLanguage),
			BaseURL:        strings.TrimRight(p.string(envPrefix+"BASE_URL", ""), "/"),
			MenuCloseDelay: p.duration(envPrefix+"MENU_CLOSE_DELAY", "Site.MenuCloseDelay", defaultMenuCloseDelay),
			TailwindCDN:    p.bool(envPrefix+"TAILWIND_CDN", "Site.TailwindCDN", true),
		},
		Tracing: TracingConfig{
			Endpoint:    p.string("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: p.string("OTEL_SERVICE_NAME", defaultServiceName),
		},
	}

	if err := validateConfig(cfg, p.invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	fields := append([]string(nil), invalid...)
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		seen[f] = true
	}

	if err := structValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("config: validate: %w", err)
		}
		for _, fe := range verrs {
			name := strings.TrimPrefix(fe.Namespace(), "Config.")
			if !seen[name] {
				seen[name] = true
				fields = append(fields, name)
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

// normalizeEnvironment maps case variants such as "production" onto the
// canonical names accepted by validation.
func normalizeEnvironment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + strings.ToLower(value[1:])
}

// parser reads typed values and records the fields whose raw value did not parse.
type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (p *parser) duration(key, field string, fallback time.Duration) time.Duration {
	raw := p.string(key, "")
	if raw == "" {
		return fallback
	}
	d, err := parseDuration(raw)
	if err != nil {
		p.invalid = append(p.invalid, field)
		return fallback
	}
	return d
}

func (p *parser) bool(key, field string, fallback bool) bool {
	raw := p.string(key, "")
	if raw == "" {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	p.invalid = append(p.invalid, field)
	return fallback
}

func (p *parser) language(key, field, fallback string) string {
	raw := p.string(key, fallback)
	tag, err := language.Parse(raw)
	if err != nil {
		p.invalid = append(p.invalid, field)
		return fallback
	}
	return tag.String()
}

const (
	day     = 24 * time.Hour
	maxDays = math.MaxInt64 / int64(day)
)

// parseDuration accepts time.ParseDuration syntax plus a whole-day "d" suffix.
func parseDuration(raw string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("config: invalid duration %q: %w", raw, err)
		}
		if n < 0 || n > maxDays {
			return 0, fmt.Errorf("config: duration %q out of range", raw)
		}
		return time.Duration(n) * day, nil
	}
	return time.ParseDuration(raw)
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}
