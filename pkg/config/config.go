package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config global configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Redis    RedisConfig    `yaml:"redis"`
	Logger   LoggerConfig   `yaml:"logger"`
	Presence PresenceConfig `yaml:"presence"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port   int    `yaml:"port"`
	Mode   string `yaml:"mode"`    // debug, release
	APIKey string `yaml:"api_key"` // API key for write endpoints (optional, if empty, auth is disabled)
}

// MySQLConfig MySQL configuration
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// RedisConfig Redis configuration
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

// PresenceConfig presence view configuration
type PresenceConfig struct {
	CacheTTL          int `yaml:"cache_ttl"`           // Presence snapshot cache TTL (seconds)
	RefreshInterval   int `yaml:"refresh_interval"`    // Background snapshot rebuild interval (seconds)
	WatchInterval     int `yaml:"watch_interval"`      // Websocket push interval (seconds)
	StaleSessionHours int `yaml:"stale_session_hours"` // Open sessions older than this are flagged by the audit job
}

// DefaultPresenceConfig returns presence defaults
func DefaultPresenceConfig() PresenceConfig {
	return PresenceConfig{
		CacheTTL:          30,
		RefreshInterval:   60,
		WatchInterval:     5,
		StaleSessionHours: 16,
	}
}

// Init initializes configuration
func Init() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	validateAndApplyDefaults(&cfg)

	GlobalConfig = &cfg
	return nil
}

// validateAndApplyDefaults replaces non-positive settings with defaults
func validateAndApplyDefaults(cfg *Config) {
	defaults := DefaultPresenceConfig()
	if cfg.Presence.CacheTTL <= 0 {
		cfg.Presence.CacheTTL = defaults.CacheTTL
	}
	if cfg.Presence.RefreshInterval <= 0 {
		cfg.Presence.RefreshInterval = defaults.RefreshInterval
	}
	if cfg.Presence.WatchInterval <= 0 {
		cfg.Presence.WatchInterval = defaults.WatchInterval
	}
	if cfg.Presence.StaleSessionHours <= 0 {
		cfg.Presence.StaleSessionHours = defaults.StaleSessionHours
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
}
