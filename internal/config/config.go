// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Nav      NavConfig      `mapstructure:"nav" yaml:"nav"`
	Percept  PerceptConfig  `mapstructure:"percept" yaml:"percept"`
	Sim      SimConfig      `mapstructure:"sim" yaml:"sim"`
	RouteDoc RouteDocConfig `mapstructure:"routedoc" yaml:"routedoc"`
	Journal  JournalConfig  `mapstructure:"journal" yaml:"journal"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// NavConfig tunes the goal-dispatch node.
type NavConfig struct {
	// ServiceWaitTimeout bounds the per-tick navigation-service readiness
	// wait.
	ServiceWaitTimeout time.Duration `mapstructure:"service_wait_timeout" yaml:"service_wait_timeout"`
	GlobalFrame        string        `mapstructure:"global_frame" yaml:"global_frame"`
	TickRateHz         float64       `mapstructure:"tick_rate_hz" yaml:"tick_rate_hz"`
}

// PerceptConfig tunes the perception-filter node.
type PerceptConfig struct {
	AngularToleranceDeg float64 `mapstructure:"angular_tolerance_deg" yaml:"angular_tolerance_deg"`
	MinConfidence       float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
}

// SimConfig tunes the simulated navigation server.
type SimConfig struct {
	SpeedMPS      float64       `mapstructure:"speed_mps" yaml:"speed_mps"`
	ResultLatency time.Duration `mapstructure:"result_latency" yaml:"result_latency"`
	ReadyAfter    time.Duration `mapstructure:"ready_after" yaml:"ready_after"`
}

// RouteDocConfig locates generated route-override documents.
type RouteDocConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// JournalConfig enables the Postgres goal journal.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	DSN     string `mapstructure:"dsn" yaml:"-"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "btnav")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Nav --
	v.SetDefault("nav.service_wait_timeout", time.Second)
	v.SetDefault("nav.global_frame", "map")
	v.SetDefault("nav.tick_rate_hz", 10.0)

	// -- Percept --
	v.SetDefault("percept.angular_tolerance_deg", 5.0)
	v.SetDefault("percept.min_confidence", 0.6)

	// -- Sim --
	v.SetDefault("sim.speed_mps", 2.0)
	v.SetDefault("sim.result_latency", 50*time.Millisecond)
	v.SetDefault("sim.ready_after", time.Duration(0))

	// -- RouteDoc --
	v.SetDefault("routedoc.output_dir", "")

	// -- Journal --
	v.SetDefault("journal.enabled", false)
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with defaults only.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a configuration from a prepared viper instance.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	// Bind the journal DSN from the environment so credentials stay out of
	// config files.
	v.BindEnv("journal.dsn", "BTNAV_JOURNAL_DSN")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Nav.ServiceWaitTimeout <= 0 {
		return fmt.Errorf("nav.service_wait_timeout must be a positive duration")
	}
	if c.Nav.TickRateHz <= 0 {
		return fmt.Errorf("nav.tick_rate_hz must be positive")
	}
	if c.Percept.AngularToleranceDeg <= 0 {
		return fmt.Errorf("percept.angular_tolerance_deg must be positive")
	}
	if c.Percept.MinConfidence < 0 || c.Percept.MinConfidence > 1 {
		return fmt.Errorf("percept.min_confidence must be within [0, 1]")
	}
	if c.Sim.SpeedMPS <= 0 {
		return fmt.Errorf("sim.speed_mps must be positive")
	}
	if c.Journal.Enabled && c.Journal.DSN == "" {
		return fmt.Errorf("journal.dsn is required when the journal is enabled (set BTNAV_JOURNAL_DSN)")
	}
	return nil
}
