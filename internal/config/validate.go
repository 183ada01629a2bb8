// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.MQTT.Broker == "" {
		return fmt.Errorf("config: mqtt broker required")
	}

	if len(cfg.Inverters) == 0 {
		return fmt.Errorf("config: at least one inverter required")
	}

	seen := make(map[string]struct{})

	for _, inv := range cfg.Inverters {
		if inv.Name == "" {
			return fmt.Errorf("config: inverter name required")
		}
		if _, dup := seen[inv.Name]; dup {
			return fmt.Errorf("config: duplicate inverter name %q", inv.Name)
		}
		seen[inv.Name] = struct{}{}

		if _, err := registry.Lookup(inv.Series); err != nil {
			return fmt.Errorf("config: inverter %q: %w (known: %v)", inv.Name, err, registry.Series())
		}

		// exactly one transport
		if inv.TCP == nil && inv.RTU == nil {
			return fmt.Errorf("config: inverter %q: tcp or rtu connection required", inv.Name)
		}
		if inv.TCP != nil && inv.RTU != nil {
			return fmt.Errorf("config: inverter %q: tcp and rtu are mutually exclusive", inv.Name)
		}
		if inv.TCP != nil && inv.TCP.Host == "" {
			return fmt.Errorf("config: inverter %q: tcp host required", inv.Name)
		}
		if inv.RTU != nil && inv.RTU.Device == "" {
			return fmt.Errorf("config: inverter %q: rtu device required", inv.Name)
		}

		if inv.UnitID < 1 || inv.UnitID > 247 {
			return fmt.Errorf("config: inverter %q: unit_id %d out of range 1-247", inv.Name, inv.UnitID)
		}
		if inv.ScanInterval < 0 {
			return fmt.Errorf("config: inverter %q: scan_interval must be >= 0", inv.Name)
		}
		if inv.TimeoutMs < 0 {
			return fmt.Errorf("config: inverter %q: timeout_ms must be >= 0", inv.Name)
		}
		if inv.OfflineAfter < 0 {
			return fmt.Errorf("config: inverter %q: offline_after must be >= 0", inv.Name)
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Listen == "" {
		return fmt.Errorf("config: metrics enabled but no listen address")
	}

	return nil
}
