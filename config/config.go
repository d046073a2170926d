// Package config holds the service settings and their JSON file persistence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Settings is the full service configuration.
type Settings struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Sessions SessionConfig  `json:"sessions"`
	Logging  LogConfig      `json:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DatabaseConfig holds the sqlite store settings.
type DatabaseConfig struct {
	Path string `json:"path"`
}

// SessionConfig holds session lifetime settings.
type SessionConfig struct {
	TTLHours int `json:"ttlHours"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	Path      string `json:"path"`
	MaxSizeMB int    `json:"maxSizeMb"`
	MaxAge    int    `json:"maxAgeDays"`
	Debug     bool   `json:"debug"`
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 3000},
		Database: DatabaseConfig{Path: "data/wayfare.db"},
		Sessions: SessionConfig{TTLHours: 24},
		Logging:  LogConfig{Path: "", MaxSizeMB: 20, MaxAge: 14},
	}
}

// Load reads settings from the given JSON file, filling unset fields with
// defaults. A missing file is not an error; defaults are returned.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if settings.Server.Port <= 0 {
		settings.Server.Port = Default().Server.Port
	}
	if settings.Database.Path == "" {
		settings.Database.Path = Default().Database.Path
	}
	if settings.Sessions.TTLHours <= 0 {
		settings.Sessions.TTLHours = Default().Sessions.TTLHours
	}

	return settings, nil
}

// SessionTTL returns the configured session lifetime as a duration.
func (s *Settings) SessionTTL() time.Duration {
	return time.Duration(s.Sessions.TTLHours) * time.Hour
}

// Addr returns the listen address for the HTTP server.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Server.Host, s.Server.Port)
}
