// internal/publish/payload_test.go
package publish

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbadberg/growatt-bridge/internal/poller"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

func testProfile() *registry.Profile {
	return &registry.Profile{
		Series: "test",
		Name:   "Test 5000",
		Input: []registry.Entry{
			{Name: "inverter_status", Address: 0, Words: 1, Kind: registry.KindStatus},
			{Name: "pv_total_power", Address: 1, Words: 2, Scale: 0.1, Unit: "W", Kind: registry.KindPower},
			{Name: "energy_today", Address: 5, Words: 2, Scale: 0.1, Unit: "kWh", Kind: registry.KindEnergyDaily},
			{Name: "energy_total", Address: 7, Words: 2, Scale: 0.1, Unit: "kWh", Kind: registry.KindEnergyTotal},
			{Name: "inverter_temp", Address: 9, Words: 1, Scale: 0.1, Unit: "°C", Kind: registry.KindDiagnostic},
		},
		Settings: []registry.Setting{
			{Name: "active_power_rate", Address: 3, Min: 0, Max: 100},
		},
	}
}

func decodePayload(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestStatePayload_Online(t *testing.T) {
	rec := poller.Record{
		Name: "garage",
		At:   time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		Values: map[string]float64{
			"inverter_status": 1,
			"pv_total_power":  4200,
			"energy_today":    12.3,
			"energy_total":    456.7,
			"inverter_temp":   41.5,
			"grid_power":      1800,
		},
		Online:    true,
		Available: true,
	}

	raw, err := StatePayload(testProfile(), rec)
	require.NoError(t, err)
	doc := decodePayload(t, raw)

	assert.Equal(t, "normal", doc["inverter_status"])
	assert.Equal(t, float64(1), doc["inverter_status_code"])
	assert.Equal(t, 4200.0, doc["pv_total_power"])
	assert.Equal(t, 41.5, doc["inverter_temp"])
	assert.Equal(t, 1800.0, doc["grid_power"])
	assert.Equal(t, "2026-06-01T12:00:00Z", doc["last_update"])
}

func TestStatePayload_OfflineDegradesByKind(t *testing.T) {
	rec := poller.Record{
		Name: "garage",
		At:   time.Date(2026, 6, 1, 22, 0, 0, 0, time.UTC),
		Values: map[string]float64{
			"inverter_status": 1,
			"pv_total_power":  4200,
			"energy_today":    12.3,
			"energy_total":    456.7,
			"inverter_temp":   41.5,
			"grid_power":      1800,
		},
		Online:    false,
		Available: true,
	}

	raw, err := StatePayload(testProfile(), rec)
	require.NoError(t, err)
	doc := decodePayload(t, raw)

	assert.Equal(t, "offline", doc["inverter_status"])
	assert.Equal(t, 0.0, doc["pv_total_power"], "power drops to zero offline")
	assert.Equal(t, 0.0, doc["grid_power"], "derived power drops to zero offline")
	assert.Equal(t, 12.3, doc["energy_today"], "daily counter keeps last value")
	assert.Equal(t, 456.7, doc["energy_total"], "lifetime counter keeps last value")
	assert.NotContains(t, doc, "inverter_temp", "diagnostics are omitted offline")
}

func TestStateFieldsCoverDerived(t *testing.T) {
	fields := stateFields(testProfile())

	names := make(map[string]registry.Entry, len(fields))
	for _, e := range fields {
		names[e.Name] = e
	}
	require.Contains(t, names, "grid_power")
	require.Contains(t, names, "house_consumption")
	assert.Equal(t, "W", names["grid_power"].Unit)
	assert.Equal(t, "%", names["self_consumption_pct"].Unit)
}

func TestSensorDiscoveryConfig(t *testing.T) {
	p := testProfile()
	c := sensor("garage", p, p.Input[1], "growatt/garage/state", "growatt/garage/availability")

	assert.Equal(t, "growatt_garage_pv_total_power", c.UniqueID)
	assert.Equal(t, "{{ value_json.pv_total_power }}", c.ValueTemplate)
	assert.Equal(t, "power", c.DeviceClass)
	assert.Equal(t, "measurement", c.StateClass)
	assert.Equal(t, "growatt_garage", c.Device.IDs)
	assert.Equal(t, "Growatt", c.Device.Manufacturer)
}

func TestNumberDiscoveryConfig(t *testing.T) {
	p := testProfile()
	c := number("garage", p, p.Settings[0],
		"growatt/garage/settings", "growatt/garage/set/active_power_rate", "growatt/garage/availability")

	assert.Equal(t, "growatt/garage/set/active_power_rate", c.CommandTopic)
	assert.Equal(t, "{{ value_json.active_power_rate }}", c.ValueTemplate)
	assert.Equal(t, 0.0, c.Min)
	assert.Equal(t, 100.0, c.Max)
}
