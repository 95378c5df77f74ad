// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
	Backend    BackendConfig    `mapstructure:"backend" yaml:"backend"`
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard" yaml:"dashboard"`
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

// BackendConfig describes how to reach the prediction service.
type BackendConfig struct {
	// BaseURL is the default backend root. A value persisted via the
	// settings file takes precedence over this one.
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	PollInterval   time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	StreamBackoff  time.Duration `mapstructure:"stream_backoff" yaml:"stream_backoff"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// SimulationConfig tunes the local telemetry generator and the shared
// clamping bounds applied on every state update.
type SimulationConfig struct {
	TickInterval    time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	AnomalyMinDelay time.Duration `mapstructure:"anomaly_min_delay" yaml:"anomaly_min_delay"`
	AnomalyMaxDelay time.Duration `mapstructure:"anomaly_max_delay" yaml:"anomaly_max_delay"`
	WinProbFloor    float64       `mapstructure:"win_prob_floor" yaml:"win_prob_floor"`
	WinProbCeiling  float64       `mapstructure:"win_prob_ceiling" yaml:"win_prob_ceiling"`
	AnomalyHistory  int           `mapstructure:"anomaly_history" yaml:"anomaly_history"`
}

// DashboardConfig configures the embedded HTTP/WebSocket server that
// frontends consume session snapshots from.
type DashboardConfig struct {
	Enabled    bool          `mapstructure:"enabled" yaml:"enabled"`
	ListenAddr string        `mapstructure:"listen_addr" yaml:"listen_addr"`
	PushPeriod time.Duration `mapstructure:"push_period" yaml:"push_period"`
}

// SetDefaults registers every configuration default with viper. Called
// before ReadInConfig so a partial config file only overrides what it names.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "aegis")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)

	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.poll_interval", 3*time.Second)
	v.SetDefault("backend.stream_backoff", 10*time.Second)
	v.SetDefault("backend.request_timeout", 10*time.Second)

	v.SetDefault("simulation.tick_interval", 3*time.Second)
	v.SetDefault("simulation.anomaly_min_delay", 10*time.Second)
	v.SetDefault("simulation.anomaly_max_delay", 15*time.Second)
	v.SetDefault("simulation.win_prob_floor", 5.0)
	v.SetDefault("simulation.win_prob_ceiling", 95.0)
	v.SetDefault("simulation.anomaly_history", 50)

	v.SetDefault("dashboard.enabled", false)
	v.SetDefault("dashboard.listen_addr", ":8090")
	v.SetDefault("dashboard.push_period", 2*time.Second)
}

// Validate rejects configurations the runtime cannot operate under.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.PollInterval <= 0 {
		return fmt.Errorf("backend.poll_interval must be positive")
	}
	if c.Backend.StreamBackoff <= 0 {
		return fmt.Errorf("backend.stream_backoff must be positive")
	}
	if c.Simulation.TickInterval <= 0 {
		return fmt.Errorf("simulation.tick_interval must be positive")
	}
	if c.Simulation.AnomalyMinDelay > c.Simulation.AnomalyMaxDelay {
		return fmt.Errorf("simulation.anomaly_min_delay exceeds anomaly_max_delay")
	}
	if c.Simulation.WinProbFloor >= c.Simulation.WinProbCeiling {
		return fmt.Errorf("simulation.win_prob_floor must be below win_prob_ceiling")
	}
	if c.Simulation.AnomalyHistory <= 0 {
		return fmt.Errorf("simulation.anomaly_history must be positive")
	}
	return nil
}
