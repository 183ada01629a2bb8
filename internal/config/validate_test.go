// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid inverter quickly
func inverter(name, series string) InverterConfig {
	return InverterConfig{
		Name:   name,
		Series: series,
		TCP:    &TCPConfig{Host: "192.168.1.30"},
		UnitID: 1,
	}
}

func valid() *Config {
	return &Config{
		MQTT: MQTTConfig{Broker: "tcp://localhost:1883"},
		Inverters: []InverterConfig{
			inverter("garage", "min_3000_6000_tl_x"),
		},
	}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoBroker(t *testing.T) {
	cfg := valid()
	cfg.MQTT.Broker = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for missing broker")
	}
}

func TestValidate_NoInverters(t *testing.T) {
	cfg := valid()
	cfg.Inverters = nil
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for empty inverter list")
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	cfg := valid()
	cfg.Inverters = append(cfg.Inverters, inverter("garage", "sph_3000_10000"))
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for duplicate name")
	}
}

func TestValidate_UnknownSeries(t *testing.T) {
	cfg := valid()
	cfg.Inverters[0].Series = "spf_5000"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for unknown series")
	}
}

func TestValidate_BothTransports(t *testing.T) {
	cfg := valid()
	cfg.Inverters[0].RTU = &RTUConfig{Device: "/dev/ttyUSB0"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for both tcp and rtu")
	}
}

func TestValidate_NoTransport(t *testing.T) {
	cfg := valid()
	cfg.Inverters[0].TCP = nil
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for missing transport")
	}
}

func TestValidate_UnitIDRange(t *testing.T) {
	cfg := valid()
	cfg.Inverters[0].UnitID = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for unit_id 0")
	}
}

func TestValidate_MetricsListenRequired(t *testing.T) {
	cfg := valid()
	cfg.Metrics.Enabled = true
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for metrics without listen address")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := valid()
	Normalize(cfg)

	if cfg.MQTT.TopicPrefix != DefaultTopicPrefix {
		t.Fatalf("topic prefix = %q", cfg.MQTT.TopicPrefix)
	}
	inv := cfg.Inverters[0]
	if inv.TCP.Port != DefaultPort {
		t.Fatalf("port = %d", inv.TCP.Port)
	}
	if inv.ScanInterval != DefaultScanInterval {
		t.Fatalf("scan_interval = %d", inv.ScanInterval)
	}
	if inv.OfflineAfter != DefaultOfflineAfter {
		t.Fatalf("offline_after = %d", inv.OfflineAfter)
	}
}
