// internal/registry/tlx.go
package registry

// MIN TL-X single-phase string inverters. These use the 3000-3124 input
// register range (Growatt protocol V1.39). The 7-10kW models carry a
// third PV string; the power-flow block is shared.

func minTLX(pv3 bool) *Profile {
	input := []Entry{
		{Name: "inverter_status", Address: 3000, Words: 1, Scale: 1, Kind: KindStatus},

		{Name: "pv_total_power", Address: 3001, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		{Name: "pv1_voltage", Address: 3003, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		{Name: "pv1_current", Address: 3004, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		{Name: "pv1_power", Address: 3005, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		{Name: "pv2_voltage", Address: 3007, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		{Name: "pv2_current", Address: 3008, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		{Name: "pv2_power", Address: 3009, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
	}

	if pv3 {
		input = append(input,
			Entry{Name: "pv3_voltage", Address: 3011, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			Entry{Name: "pv3_current", Address: 3012, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			Entry{Name: "pv3_power", Address: 3013, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		)
	}

	input = append(input,
		// AC output is the inverter side, not the grid connection point.
		Entry{Name: "ac_frequency", Address: 3025, Words: 1, Scale: 0.01, Unit: "Hz", Kind: KindDiagnostic},
		Entry{Name: "ac_voltage", Address: 3026, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "ac_current", Address: 3027, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		Entry{Name: "ac_power", Address: 3028, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

		// Power flow. power_to_grid is signed: positive export, negative import.
		Entry{Name: "power_to_user", Address: 3041, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		Entry{Name: "power_to_grid", Address: 3043, Words: 2, Signed: true, Scale: 0.1, Unit: "W", Kind: KindPower},
		Entry{Name: "power_to_load", Address: 3045, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

		Entry{Name: "energy_today", Address: 3049, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
		Entry{Name: "energy_total", Address: 3051, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
		Entry{Name: "energy_to_user_today", Address: 3067, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
		Entry{Name: "energy_to_user_total", Address: 3069, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
		Entry{Name: "energy_to_grid_today", Address: 3071, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
		Entry{Name: "energy_to_grid_total", Address: 3073, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
		Entry{Name: "load_energy_today", Address: 3075, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
		Entry{Name: "load_energy_total", Address: 3077, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},

		Entry{Name: "derating_mode", Address: 3086, Words: 1, Scale: 1, Kind: KindDiagnostic},
		Entry{Name: "bus_voltage", Address: 3092, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},

		Entry{Name: "inverter_temp", Address: 3093, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
		Entry{Name: "ipm_temp", Address: 3094, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
		Entry{Name: "boost_temp", Address: 3095, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},

		Entry{Name: "fault_code", Address: 3105, Words: 1, Scale: 1, Kind: KindDiagnostic},
		Entry{Name: "warning_code", Address: 3106, Words: 1, Scale: 1, Kind: KindDiagnostic},
	)

	series := "min_3000_6000_tl_x"
	name := "MIN 3000-6000TL-X"
	if pv3 {
		series = "min_7000_10000_tl_x"
		name = "MIN 7000-10000TL-X"
	}

	return &Profile{
		Series: series,
		Name:   name,
		Phases: 1,
		HasPV3: pv3,
		Input:  input,
		Settings: []Setting{
			{Name: "on_off", Address: 0, Min: 0, Max: 1, Desc: "inverter on/off"},
			{Name: "active_power_rate", Address: 3, Min: 0, Max: 100, Desc: "max output power %"},
			{Name: "modbus_address", Address: 30, Min: 1, Max: 254, Desc: "slave address"},
		},
	}
}
