// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultPort         = 502
	DefaultBaud         = 9600
	DefaultScanInterval = 30 // seconds
	DefaultTimeoutMs    = 5000
	DefaultOfflineAfter = 3
	DefaultTopicPrefix  = "growatt"
	DefaultDiscovery    = "homeassistant"
	DefaultClientID     = "growatt-bridge"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = DefaultTopicPrefix
	}
	if cfg.MQTT.DiscoveryPrefix == "" {
		cfg.MQTT.DiscoveryPrefix = DefaultDiscovery
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = DefaultClientID
	}

	for i := range cfg.Inverters {
		inv := &cfg.Inverters[i]

		if inv.TCP != nil && inv.TCP.Port == 0 {
			inv.TCP.Port = DefaultPort
		}
		if inv.RTU != nil && inv.RTU.Baud == 0 {
			inv.RTU.Baud = DefaultBaud
		}
		if inv.ScanInterval == 0 {
			inv.ScanInterval = DefaultScanInterval
		}
		if inv.TimeoutMs == 0 {
			inv.TimeoutMs = DefaultTimeoutMs
		}
		if inv.OfflineAfter == 0 {
			inv.OfflineAfter = DefaultOfflineAfter
		}
	}
}
