package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces environment overrides, e.g. FINDER_ADDR,
// FINDER_RETRY_ATTEMPTS.
const envPrefix = "FINDER_"

type Config struct {
	Addr   string // API bind address
	LogDir string // logs directory

	PublicAPIKeys []string
	AdminAPIKeys  []string

	HTTPTimeout         time.Duration // per-probe HTTP timeout
	RetryAttempts       int           // extra attempts after the first
	RetryBackoff        time.Duration // base backoff between retries
	ScanTimeout         time.Duration // global deadline for one scan
	MaxConcurrentProbes int
	ImplScanLimit       int // highest allowed IMPL range width

	PublicRPM   int
	PublicBurst int
	AdminRPM    int
	AdminBurst  int

	SlackWebhook string
}

// raw mirrors the koanf keys; durations travel as milliseconds the way
// the env variables spell them.
type raw struct {
	Addr                string `koanf:"addr"`
	LogDir              string `koanf:"log_dir"`
	PublicAPIKeys       string `koanf:"public_api_keys"`
	AdminAPIKeys        string `koanf:"admin_api_keys"`
	HTTPTimeoutMS       int    `koanf:"http_timeout_ms"`
	RetryAttempts       int    `koanf:"retry_attempts"`
	RetryBackoffMS      int    `koanf:"retry_backoff_ms"`
	ScanTimeoutMS       int    `koanf:"scan_timeout_ms"`
	MaxConcurrentProbes int    `koanf:"max_concurrent_probes"`
	ImplScanLimit       int    `koanf:"impl_scan_limit"`
	PublicRPM           int    `koanf:"public_rpm"`
	PublicBurst         int    `koanf:"public_burst"`
	AdminRPM            int    `koanf:"admin_rpm"`
	AdminBurst          int    `koanf:"admin_burst"`
	SlackWebhook        string `koanf:"slack_webhook"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"addr":                  "127.0.0.1:8080",
		"log_dir":               "logs",
		"http_timeout_ms":       5000,
		"retry_attempts":        2,
		"retry_backoff_ms":      300,
		"scan_timeout_ms":       60000,
		"max_concurrent_probes": 8,
		"impl_scan_limit":       50,
		"public_rpm":            120,
		"public_burst":          60,
		"admin_rpm":             60,
		"admin_burst":           30,
	}
}

// Load layers configuration: defaults, then an optional YAML file, then
// FINDER_* environment variables. An empty path skips the file layer.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var r raw
	if err := k.Unmarshal("", &r); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return fromRaw(r), nil
}

func fromRaw(r raw) Config {
	cfg := Config{
		Addr:                r.Addr,
		LogDir:              r.LogDir,
		PublicAPIKeys:       splitKeys(r.PublicAPIKeys),
		AdminAPIKeys:        splitKeys(r.AdminAPIKeys),
		HTTPTimeout:         time.Duration(r.HTTPTimeoutMS) * time.Millisecond,
		RetryAttempts:       r.RetryAttempts,
		RetryBackoff:        time.Duration(r.RetryBackoffMS) * time.Millisecond,
		ScanTimeout:         time.Duration(r.ScanTimeoutMS) * time.Millisecond,
		MaxConcurrentProbes: r.MaxConcurrentProbes,
		ImplScanLimit:       r.ImplScanLimit,
		PublicRPM:           r.PublicRPM,
		PublicBurst:         r.PublicBurst,
		AdminRPM:            r.AdminRPM,
		AdminBurst:          r.AdminBurst,
		SlackWebhook:        r.SlackWebhook,
	}
	if cfg.RetryAttempts < 0 {
		cfg.RetryAttempts = 0
	}
	if cfg.MaxConcurrentProbes < 1 {
		cfg.MaxConcurrentProbes = 1
	}
	return cfg
}

// splitKeys parses comma-separated API key lists, ignoring blanks.
func splitKeys(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
