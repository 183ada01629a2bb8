// internal/derive/derive.go
package derive

import "math"

// Derived field names published alongside the raw register fields.
const (
	FieldGridPower          = "grid_power"
	FieldGridExportPower    = "grid_export_power"
	FieldGridImportPower    = "grid_import_power"
	FieldHouseConsumption   = "house_consumption"
	FieldSelfConsumption    = "self_consumption"
	FieldSelfConsumptionPct = "self_consumption_pct"
)

// Names lists the derived fields in publish order.
func Names() []string {
	return []string{
		FieldGridPower,
		FieldGridExportPower,
		FieldGridImportPower,
		FieldHouseConsumption,
		FieldSelfConsumption,
		FieldSelfConsumptionPct,
	}
}

// Compute adds derived power-flow values to a decoded field map.
//
// Sign convention is normalized here and nowhere else: grid_power is
// positive when exporting. When invert is set (CT clamp mounted
// backwards) the sign is flipped before the export/import split, so
// the labels swap without changing magnitude.
func Compute(values map[string]float64, invert bool) {
	solar, hasSolar := values["pv_total_power"]
	ac, hasAC := values["ac_power"]
	toGrid, hasToGrid := values["power_to_grid"]
	toUser, hasToUser := values["power_to_user"]
	load, hasLoad := values["power_to_load"]

	// Grid power: dedicated signed register when the map carries one,
	// otherwise export minus import.
	var grid float64
	switch {
	case hasToGrid && hasToUser && toGrid >= 0:
		grid = toGrid - toUser
	case hasToGrid:
		grid = toGrid
	default:
		// String inverters without power-flow registers: the balance
		// at the AC bus is all we can state.
		if hasAC && hasLoad && load > 0 {
			grid = ac - load
		}
	}

	if invert {
		grid = -grid
	}

	values[FieldGridPower] = round1(grid)
	values[FieldGridExportPower] = round1(math.Max(0, grid))
	values[FieldGridImportPower] = round1(math.Max(0, -grid))

	// House load: measured when the model reports it, else derived
	// from the AC bus balance (production minus export plus import).
	house := load
	if !hasLoad || load == 0 {
		switch {
		case hasAC:
			house = ac - grid
		case hasSolar:
			house = solar - grid
		}
	}
	house = math.Max(0, house)
	values[FieldHouseConsumption] = round1(house)

	if hasSolar {
		self := math.Max(0, math.Min(solar, house))
		values[FieldSelfConsumption] = round1(self)
		pct := 0.0
		if solar > 0 {
			pct = self / solar * 100
		}
		values[FieldSelfConsumptionPct] = round1(pct)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
