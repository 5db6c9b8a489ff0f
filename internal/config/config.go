package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"video-rental-statements/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Statement StatementConfig `yaml:"statement"`
	Batch     BatchConfig     `yaml:"batch"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// StatementConfig controls how statements are rendered
type StatementConfig struct {
	Format string `yaml:"format"` // "text" or "html"
}

// BatchConfig bounds concurrent statement rendering
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RunStatements string `yaml:"run_statements"`
}

// Default returns a configuration usable without a config file
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and
// defaults, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("STATEMENT_FORMAT"); val != "" {
		c.Statement.Format = val
	}
	if val := os.Getenv("STATEMENT_WORKERS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Batch.Workers)
	}
	if val := os.Getenv("STATEMENT_SCHEDULE"); val != "" {
		c.Scheduler.RunStatements = val
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Statement.Format == "" {
		c.Statement.Format = string(domain.StatementFormatText)
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 4
	}
	if c.Scheduler.RunStatements == "" {
		c.Scheduler.RunStatements = "0 0 6 * * *" // Daily at 6 AM UTC
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	if _, err := domain.ParseStatementFormat(c.Statement.Format); err != nil {
		return err
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch workers must be positive: %d", c.Batch.Workers)
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Scheduler.RunStatements); err != nil {
		return fmt.Errorf("invalid statement schedule %q: %w", c.Scheduler.RunStatements, err)
	}

	return nil
}

// StatementFormat returns the parsed statement format
func (c *Config) StatementFormat() domain.StatementFormat {
	format, err := domain.ParseStatementFormat(c.Statement.Format)
	if err != nil {
		return domain.StatementFormatText
	}
	return format
}
