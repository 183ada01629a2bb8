// internal/publish/discovery.go
package publish

import (
	"fmt"
	"strings"

	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// sensorConfig is a Home Assistant MQTT discovery payload for one
// sensor entity. Short-form keys as the discovery schema abbreviates
// them.
type sensorConfig struct {
	Name              string       `json:"name"`
	UniqueID          string       `json:"uniq_id"`
	StateTopic        string       `json:"stat_t"`
	ValueTemplate     string       `json:"val_tpl,omitempty"`
	AvailabilityTopic string       `json:"avty_t"`
	DeviceClass       string       `json:"dev_cla,omitempty"`
	StateClass        string       `json:"stat_cla,omitempty"`
	UnitOfMeasurement string       `json:"unit_of_meas,omitempty"`
	Device            deviceConfig `json:"dev"`
}

// numberConfig announces a writable setting as a number entity.
type numberConfig struct {
	Name              string       `json:"name"`
	UniqueID          string       `json:"uniq_id"`
	StateTopic        string       `json:"stat_t"`
	ValueTemplate     string       `json:"val_tpl"`
	CommandTopic      string       `json:"cmd_t"`
	AvailabilityTopic string       `json:"avty_t"`
	Min               float64      `json:"min"`
	Max               float64      `json:"max"`
	Step              float64      `json:"step"`
	Device            deviceConfig `json:"dev"`
}

type deviceConfig struct {
	IDs          string `json:"ids"`
	Name         string `json:"name"`
	Manufacturer string `json:"mf"`
	Model        string `json:"mdl"`
}

func device(inverter string, profile *registry.Profile) deviceConfig {
	return deviceConfig{
		IDs:          "growatt_" + inverter,
		Name:         inverter,
		Manufacturer: "Growatt",
		Model:        profile.Name,
	}
}

func sensor(inverter string, profile *registry.Profile, e registry.Entry, stateTopic, availTopic string) sensorConfig {
	c := sensorConfig{
		Name:              strings.ReplaceAll(e.Name, "_", " "),
		UniqueID:          fmt.Sprintf("growatt_%s_%s", inverter, e.Name),
		StateTopic:        stateTopic,
		ValueTemplate:     fmt.Sprintf("{{ value_json.%s }}", e.Name),
		AvailabilityTopic: availTopic,
		UnitOfMeasurement: e.Unit,
		Device:            device(inverter, profile),
	}

	switch e.Unit {
	case "W":
		c.DeviceClass = "power"
		c.StateClass = "measurement"
	case "kWh":
		c.DeviceClass = "energy"
		c.StateClass = "total_increasing"
	case "V":
		c.DeviceClass = "voltage"
		c.StateClass = "measurement"
	case "A":
		c.DeviceClass = "current"
		c.StateClass = "measurement"
	case "Hz":
		c.DeviceClass = "frequency"
		c.StateClass = "measurement"
	case "VA":
		c.DeviceClass = "apparent_power"
		c.StateClass = "measurement"
	case "°C":
		c.DeviceClass = "temperature"
		c.StateClass = "measurement"
	case "%":
		c.StateClass = "measurement"
		if strings.Contains(e.Name, "soc") {
			c.DeviceClass = "battery"
		}
	}

	// Daily counters reset at midnight; lifetime counters only grow.
	if e.Kind == registry.KindEnergyDaily {
		c.StateClass = "total_increasing"
	}
	if e.Kind == registry.KindStatus {
		c.DeviceClass = ""
		c.StateClass = ""
		c.UnitOfMeasurement = ""
	}
	return c
}

func number(inverter string, profile *registry.Profile, s registry.Setting, settingsTopic, cmdTopic, availTopic string) numberConfig {
	return numberConfig{
		Name:              strings.ReplaceAll(s.Name, "_", " "),
		UniqueID:          fmt.Sprintf("growatt_%s_%s", inverter, s.Name),
		StateTopic:        settingsTopic,
		ValueTemplate:     fmt.Sprintf("{{ value_json.%s }}", s.Name),
		CommandTopic:      cmdTopic,
		AvailabilityTopic: availTopic,
		Min:               float64(s.Min),
		Max:               float64(s.Max),
		Step:              1,
		Device:            device(inverter, profile),
	}
}
