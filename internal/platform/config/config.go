// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"pipedriver/internal/platform/errors"
)

// DefaultEndpoint is the production pipeline API URL.
const DefaultEndpoint = "https://adrata-pipelines-8lsb7z0z0-adrata.vercel.app/api/production-ready"

type Config struct {
	// IO
	InputPath   string `yaml:"input"`
	OutputDir   string `yaml:"output_dir"`
	SnapshotDir string `yaml:"snapshot_dir"`

	// Remote endpoint
	Endpoint string `yaml:"endpoint"`
	TimeoutS int    `yaml:"timeout_seconds"`

	// Loader
	Limit int `yaml:"limit"`

	// UI / logging
	Quiet    bool   `yaml:"quiet"`
	LogLevel string `yaml:"log_level"`

	// Info
	PrintVersion bool `yaml:"-"`
	PrintHelp    bool `yaml:"-"`

	// ConfigFile is the YAML overlay actually loaded, if any.
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		InputPath:   "inputs/all-1233-companies.csv",
		OutputDir:   "pipedriver_out",
		SnapshotDir: "",
		Endpoint:    DefaultEndpoint,
		TimeoutS:    300,
		Limit:       0,
		Quiet:       false,
		LogLevel:    "info",
	}
}

// Load initializes the configuration. Precedence, lowest to highest:
// defaults, PIPEDRIVER_* environment variables, the YAML config file
// (--config), explicit CLI flags.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	loadFromEnv(&cfg)

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "failed to parse flags")
	}

	// YAML sits under flags: apply it only where no flag was given.
	if cfg.ConfigFile != "" {
		if err := applyFile(&cfg, fs); err != nil {
			return cfg, err
		}
	}

	normalize(&cfg)
	return cfg, nil
}

// newFlagSet declares the CLI flags bound to cfg.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("pipedriver", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { PrintHelp() }

	fs.StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "Companies CSV input file")
	fs.StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "Output directory for results and summary")
	fs.StringVar(&cfg.SnapshotDir, "snapshot-dir", cfg.SnapshotDir, "Directory for payload snapshots (default: system temp dir)")
	fs.StringVarP(&cfg.Endpoint, "endpoint", "e", cfg.Endpoint, "Pipeline API endpoint URL")
	fs.IntVarP(&cfg.TimeoutS, "timeout", "T", cfg.TimeoutS, "Per-call timeout in seconds")
	fs.IntVarP(&cfg.Limit, "limit", "n", cfg.Limit, "Max companies to load (0 = all)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Disable terminal UI output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "YAML config file")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&cfg.PrintHelp, "help", "h", false, "Show this help message")

	return fs
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("PIPEDRIVER_INPUT", ""); v != "" {
		cfg.InputPath = v
	}
	if v := getenv("PIPEDRIVER_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("PIPEDRIVER_SNAPSHOT_DIR", ""); v != "" {
		cfg.SnapshotDir = v
	}
	if v := getenv("PIPEDRIVER_ENDPOINT", ""); v != "" {
		cfg.Endpoint = v
	}
	if v := getenv("PIPEDRIVER_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("PIPEDRIVER_LIMIT", ""); v != "" {
		cfg.Limit = parseInt(v, cfg.Limit)
	}
	if v := getenv("PIPEDRIVER_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
	if v := getenv("PIPEDRIVER_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("PIPEDRIVER_CONFIG", ""); v != "" {
		cfg.ConfigFile = v
	}
}

// applyFile overlays values from a YAML file, without overriding flags the
// user set explicitly on the command line.
func applyFile(cfg *Config, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", cfg.ConfigFile)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", cfg.ConfigFile)
	}

	set := func(flagName string, apply func()) {
		if !fs.Changed(flagName) {
			apply()
		}
	}

	if file.InputPath != "" {
		set("input", func() { cfg.InputPath = file.InputPath })
	}
	if file.OutputDir != "" {
		set("out", func() { cfg.OutputDir = file.OutputDir })
	}
	if file.SnapshotDir != "" {
		set("snapshot-dir", func() { cfg.SnapshotDir = file.SnapshotDir })
	}
	if file.Endpoint != "" {
		set("endpoint", func() { cfg.Endpoint = file.Endpoint })
	}
	if file.TimeoutS != 0 {
		set("timeout", func() { cfg.TimeoutS = file.TimeoutS })
	}
	if file.Limit != 0 {
		set("limit", func() { cfg.Limit = file.Limit })
	}
	if file.Quiet {
		set("quiet", func() { cfg.Quiet = true })
	}
	if file.LogLevel != "" {
		set("log-level", func() { cfg.LogLevel = file.LogLevel })
	}

	return nil
}

func normalize(c *Config) {
	c.InputPath = strings.TrimSpace(c.InputPath)
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.TimeoutS <= 0 {
		c.TimeoutS = 300
	}
	if c.Limit < 0 {
		c.Limit = 0
	}
	if c.OutputDir == "" {
		c.OutputDir = "pipedriver_out"
	}
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.Wrap(errors.ErrInvalidInput, "input file is required")
	}
	if c.Endpoint == "" {
		return errors.Wrap(errors.ErrInvalidInput, "endpoint URL is required")
	}
	if !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		return errors.Wrapf(errors.ErrInvalidInput, "endpoint %q is not an HTTP(S) URL", c.Endpoint)
	}
	return nil
}

// ToJSON serializes the configuration to JSON (useful for debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Timeout returns the per-call timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
