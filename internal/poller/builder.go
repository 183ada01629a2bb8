// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	cfg "github.com/mbadberg/growatt-bridge/internal/config"
	gmodbus "github.com/mbadberg/growatt-bridge/internal/modbus"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

// Build constructs a Poller wired to a Modbus client for one inverter.
// The returned client is shared with the setting writer; the caller
// owns its lifecycle.
func Build(inv cfg.InverterConfig) (*Poller, *gmodbus.Client, error) {
	profile, err := registry.Lookup(inv.Series)
	if err != nil {
		return nil, nil, err
	}

	mc := gmodbus.Config{
		UnitID:  inv.UnitID,
		Timeout: time.Duration(inv.TimeoutMs) * time.Millisecond,
	}
	switch {
	case inv.TCP != nil:
		mc.Address = fmt.Sprintf("%s:%d", inv.TCP.Host, inv.TCP.Port)
	case inv.RTU != nil:
		mc.Device = inv.RTU.Device
		mc.Baud = inv.RTU.Baud
	}

	client, err := gmodbus.New(mc)
	if err != nil {
		return nil, nil, err
	}

	p, err := New(Config{
		Name:         inv.Name,
		Profile:      profile,
		Interval:     time.Duration(inv.ScanInterval) * time.Second,
		OfflineAfter: inv.OfflineAfter,
		InvertGrid:   inv.InvertGridPower,
	}, client)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return p, client, nil
}
