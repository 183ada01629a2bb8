// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MQTT      MQTTConfig       `yaml:"mqtt"`
	Metrics   MetricsConfig    `yaml:"metrics"`
	Inverters []InverterConfig `yaml:"inverters"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Broker          string `yaml:"broker"` // e.g. tcp://homeassistant:1883
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	ClientID        string `yaml:"client_id"`
	TopicPrefix     string `yaml:"topic_prefix"`
	DiscoveryPrefix string `yaml:"discovery_prefix"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// ---- INVERTER ----

type InverterConfig struct {
	Name   string `yaml:"name"`
	Series string `yaml:"series"`

	TCP *TCPConfig `yaml:"tcp"`
	RTU *RTUConfig `yaml:"rtu"`

	UnitID    uint8 `yaml:"unit_id"`
	TimeoutMs int   `yaml:"timeout_ms"`

	// ScanInterval is seconds between poll cycles.
	ScanInterval int `yaml:"scan_interval"`

	// InvertGridPower flips the grid sign convention (reversed CT clamp).
	InvertGridPower bool `yaml:"invert_grid_power"`

	// OfflineAfter is consecutive failed cycles before the device is
	// reported unavailable.
	OfflineAfter int `yaml:"offline_after"`
}

type TCPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type RTUConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// Load reads and parses a YAML config file. Validation is separate.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
