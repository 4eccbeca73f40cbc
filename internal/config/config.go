package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "MEDIAMAP_CONFIG"
	logLevelEnv    = "MEDIAMAP_LOG_LEVEL"
	httpAddrEnv    = "MEDIAMAP_HTTP_ADDR"
	databaseDSNEnv = "DATABASE_DSN"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig   `yaml:"logging"`
	HTTP     HTTPConfig      `yaml:"http"`
	Pipeline PipelineConfig  `yaml:"pipeline"`
	Report   ReportConfig    `yaml:"report"`
	Datasets []DatasetConfig `yaml:"datasets"`
}

// LoggingConfig selects the slog level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig describes the read API listener.
type HTTPConfig struct {
	Addr               string `yaml:"addr"`
	ReadTimeoutSec     int    `yaml:"readTimeoutSec"`
	WriteTimeoutSec    int    `yaml:"writeTimeoutSec"`
	ShutdownTimeoutSec int    `yaml:"shutdownTimeoutSec"`
}

// ReadTimeout converts the configured seconds to a duration.
func (h HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(h.ReadTimeoutSec) * time.Second
}

// WriteTimeout converts the configured seconds to a duration.
func (h HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(h.WriteTimeoutSec) * time.Second
}

// ShutdownTimeout converts the configured seconds to a duration.
func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSec) * time.Second
}

// PipelineConfig controls how malformed articles are handled.
// A nil FailOnMalformed means the default (true).
type PipelineConfig struct {
	FailOnMalformed *bool `yaml:"failOnMalformed"`
}

// Strict reports whether a malformed article aborts the load.
func (p PipelineConfig) Strict() bool {
	if p.FailOnMalformed == nil {
		return true
	}
	return *p.FailOnMalformed
}

// ReportConfig describes the static HTML digest.
type ReportConfig struct {
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// DatasetConfig describes one input dataset and the loader that reads it.
type DatasetConfig struct {
	Name    string            `yaml:"name"`
	Format  string            `yaml:"format"`
	Path    string            `yaml:"path"`
	Options map[string]string `yaml:"options"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Datasets) == 0 {
		cfg.Datasets = defaultConfig().Datasets
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		for i := range c.Datasets {
			if c.Datasets[i].Format != "sql" {
				continue
			}
			if c.Datasets[i].Options == nil {
				c.Datasets[i].Options = map[string]string{}
			}
			c.Datasets[i].Options["dsn"] = v
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.HTTP.Addr != "" {
		base.HTTP.Addr = override.HTTP.Addr
	}
	if override.HTTP.ReadTimeoutSec > 0 {
		base.HTTP.ReadTimeoutSec = override.HTTP.ReadTimeoutSec
	}
	if override.HTTP.WriteTimeoutSec > 0 {
		base.HTTP.WriteTimeoutSec = override.HTTP.WriteTimeoutSec
	}
	if override.HTTP.ShutdownTimeoutSec > 0 {
		base.HTTP.ShutdownTimeoutSec = override.HTTP.ShutdownTimeoutSec
	}

	if override.Pipeline.FailOnMalformed != nil {
		base.Pipeline.FailOnMalformed = override.Pipeline.FailOnMalformed
	}

	if override.Report.Output != "" {
		base.Report.Output = override.Report.Output
	}
	if override.Report.Title != "" {
		base.Report.Title = override.Report.Title
	}

	if len(override.Datasets) > 0 {
		base.Datasets = override.Datasets
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		HTTP: HTTPConfig{
			Addr:               ":8080",
			ReadTimeoutSec:     10,
			WriteTimeoutSec:    10,
			ShutdownTimeoutSec: 10,
		},
		Report: ReportConfig{Output: "mediamap.html", Title: "Media Map"},
		Datasets: []DatasetConfig{
			{Name: "headlines", Format: "json", Path: "data/articles.json"},
		},
	}
}
