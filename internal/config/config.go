package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "widgetd.json"

	// DefaultListenAddr is the default HTTP listen address.
	DefaultListenAddr = ":8080"

	// DefaultTaskConcurrency is the default number of with-task hook
	// tasks a Runtime's taskqueue.Pool runs concurrently.
	DefaultTaskConcurrency = 8

	// DefaultCollectorCapacity is the default buffer size for a mounted
	// Runtime's task-completion collector.
	DefaultCollectorCapacity = 16

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"
)

// Config is widgetd's complete runtime configuration.
type Config struct {
	// ListenAddr is the address the HTTP/websocket server binds to.
	ListenAddr string `json:"listenAddr,omitempty"`

	// TaskConcurrency bounds how many with-task hook tasks run at once
	// across every mounted Runtime, per pkg/taskqueue.NewPool.
	TaskConcurrency int `json:"taskConcurrency,omitempty"`

	// CollectorCapacity is the buffer size of each mounted Runtime's
	// task-completion collector channel.
	CollectorCapacity int `json:"collectorCapacity,omitempty"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"logLevel,omitempty"`

	// S3 holds settings for the optional out-of-band task-result store
	// (pkg/taskqueue/s3result). Validate requires a Region whenever a
	// Bucket is set. widgetd serve does not construct the store, so task
	// results stay inline in the render frame either way.
	S3 S3Config `json:"s3,omitempty"`

	// MetricsNamespace is the Prometheus namespace pkg/middleware
	// registers metrics under.
	MetricsNamespace string `json:"metricsNamespace,omitempty"`
}

// S3Config configures the optional oversized-task-result offload store.
type S3Config struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		ListenAddr:        DefaultListenAddr,
		TaskConcurrency:   DefaultTaskConcurrency,
		CollectorCapacity: DefaultCollectorCapacity,
		LogLevel:          DefaultLogLevel,
		MetricsNamespace:  "widgetd",
	}
}

// Load reads configuration from path, applying defaults for any field the
// file leaves unset. A missing file is not an error: New()'s defaults are
// returned as-is, since a single-binary deployment should run with zero
// configuration.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.TaskConcurrency == 0 {
		c.TaskConcurrency = DefaultTaskConcurrency
	}
	if c.CollectorCapacity == 0 {
		c.CollectorCapacity = DefaultCollectorCapacity
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = "widgetd"
	}
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.TaskConcurrency < 0 {
		return fmt.Errorf("config: taskConcurrency must be >= 0, got %d", c.TaskConcurrency)
	}
	if c.S3.Bucket != "" && c.S3.Region == "" {
		return fmt.Errorf("config: s3.region is required when s3.bucket is set")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logLevel %q", c.LogLevel)
	}
	return nil
}

// UsesS3 reports whether the S3 task-result store should be constructed.
func (c *Config) UsesS3() bool {
	return c.S3.Bucket != ""
}
