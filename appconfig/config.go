// Package appconfig is the first of the two real-world singleton examples:
// a process-wide configuration manager, loaded once and read everywhere.
//
// Values resolve in precedence order: runtime overrides set with Set, then
// the properties file (key=value lines, loaded with godotenv), then built-in
// defaults. Environment variables choose the file path and environment name
// (parsed with caarlos0/env). Malformed numeric values are logged and
// defaulted to zero rather than failing the caller.
package appconfig

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Env selects where configuration comes from. Parsed from the process
// environment when the shared manager is first built.
type Env struct {
	// File is the properties file path.
	File string `env:"APP_CONFIG" envDefault:"application.properties"`

	// Environment names the deployment environment and overrides the
	// app.environment key when set.
	Environment string `env:"APP_ENV"`
}

// defaults are the fallback values applied for absent keys.
func defaults() map[string]string {
	return map[string]string{
		"app.name":        "gopatterns",
		"app.version":     "1.0.0",
		"app.environment": "development",
		"server.host":     "localhost",
		"server.port":     "8080",
		"server.threads":  "100",
		"cache.enabled":   "true",
		"cache.ttl":       "1h",
		"cache.max-size":  "1000",
		"log.level":       "info",
		"log.file":        "application.log",
	}
}

// Manager is the configuration singleton's payload. Reads are safe for
// concurrent use; Set and Reload take the write lock.
type Manager struct {
	mu        sync.RWMutex
	file      map[string]string // from the properties file
	overrides map[string]string // runtime Set calls
	defaults  map[string]string

	path     string
	loadedAt time.Time
	accesses int64

	log zerolog.Logger
}

var (
	sharedOnce sync.Once
	shared     *Manager
)

// Shared returns the process-wide Manager, building it on first call from
// the environment. All callers observe the same instance.
func Shared() *Manager {
	sharedOnce.Do(func() {
		var e Env
		logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "appconfig").Logger()
		if err := env.Parse(&e); err != nil {
			logger.Error().Err(err).Msg("parse environment, using defaults")
			e = Env{File: "application.properties"}
		}
		shared = New(e.File, logger)
		if e.Environment != "" {
			shared.Set("app.environment", e.Environment)
		}
	})
	return shared
}

// New builds a Manager from a properties file. A missing or unreadable
// file is logged and ignored; the defaults still apply. New exists so
// tests and demos can build managers without touching the singleton.
func New(path string, log zerolog.Logger) *Manager {
	m := &Manager{
		file:      map[string]string{},
		overrides: map[string]string{},
		defaults:  defaults(),
		path:      path,
		loadedAt:  time.Now(),
		log:       log,
	}
	m.loadFile()
	return m
}

// loadFile reads the properties file into m.file. Caller narration only;
// the zero map is a valid "no file" state.
func (m *Manager) loadFile() {
	values, err := godotenv.Read(m.path)
	if err != nil {
		m.log.Warn().Err(err).Str("path", m.path).Msg("config file unavailable, using defaults")
		return
	}
	m.mu.Lock()
	m.file = values
	m.loadedAt = time.Now()
	m.mu.Unlock()
	m.log.Info().Str("path", m.path).Int("keys", len(values)).Msg("configuration loaded")
}

// Get returns the effective value for key: override, then file, then
// default, then "".
func (m *Manager) Get(key string) string {
	m.mu.Lock()
	m.accesses++
	v, ok := m.overrides[key]
	if !ok {
		v, ok = m.file[key]
	}
	if !ok {
		v = m.defaults[key]
	}
	m.mu.Unlock()
	return v
}

// GetDefault returns the effective value for key, or def when the key
// resolves to nothing anywhere.
func (m *Manager) GetDefault(key, def string) string {
	if v := m.Get(key); v != "" {
		return v
	}
	return def
}

// Int returns the key parsed as an integer. Malformed values are logged
// and come back as zero.
func (m *Manager) Int(key string) int {
	v := m.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		m.log.Error().Str("key", key).Str("value", v).Msg("invalid integer in configuration")
		return 0
	}
	return n
}

// Bool returns the key parsed as a boolean. Missing or malformed values
// are false; malformed ones are logged.
func (m *Manager) Bool(key string) bool {
	v := m.Get(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		m.log.Error().Str("key", key).Str("value", v).Msg("invalid boolean in configuration")
		return false
	}
	return b
}

// Duration returns the key parsed as a time.Duration ("30s", "1h").
// Malformed values are logged and come back as zero.
func (m *Manager) Duration(key string) time.Duration {
	v := m.Get(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		m.log.Error().Str("key", key).Str("value", v).Msg("invalid duration in configuration")
		return 0
	}
	return d
}

// Set applies a runtime override visible to every reader immediately.
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	m.overrides[key] = value
	m.mu.Unlock()
	m.log.Info().Str("key", key).Msg("configuration override applied")
}

// Has reports whether the key resolves to a value at any level.
func (m *Manager) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.overrides[key]; ok {
		return true
	}
	if _, ok := m.file[key]; ok {
		return true
	}
	_, ok := m.defaults[key]
	return ok
}

// Snapshot returns every effective key with secret-looking values masked.
func (m *Manager) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.defaults)+len(m.file)+len(m.overrides))
	for k, v := range m.defaults {
		out[k] = v
	}
	for k, v := range m.file {
		out[k] = v
	}
	for k, v := range m.overrides {
		out[k] = v
	}
	for k := range out {
		if isSecretKey(k) {
			out[k] = "********"
		}
	}
	return out
}

// isSecretKey reports whether a key's value should never be printed.
func isSecretKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "password") || strings.Contains(k, "secret") || strings.Contains(k, "token")
}

// Reload re-reads the properties file, keeping runtime overrides intact.
func (m *Manager) Reload() {
	m.log.Info().Str("path", m.path).Msg("reloading configuration")
	m.loadFile()
}

// Stats describes the manager's state for demos and diagnostics.
type Stats struct {
	FileKeys  int
	Overrides int
	Accesses  int64
	LoadedAt  time.Time
}

// Stats returns a snapshot of the manager's counters.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		FileKeys:  len(m.file),
		Overrides: len(m.overrides),
		Accesses:  m.accesses,
		LoadedAt:  m.loadedAt,
	}
}
