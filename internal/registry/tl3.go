// internal/registry/tl3.go
package registry

// MID and MAX three-phase string inverters. These report from the
// 0-124 input range; grid quantities are per phase (R/S/T) plus line
// voltages. No storage block, no power-flow registers: grid figures
// come from the derived calculator.

func tl3(pv3 bool, series, name string) *Profile {
	input := []Entry{
		{Name: "inverter_status", Address: 0, Words: 1, Scale: 1, Kind: KindStatus},

		{Name: "pv_total_power", Address: 1, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		{Name: "pv1_voltage", Address: 3, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		{Name: "pv1_current", Address: 4, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		{Name: "pv1_power", Address: 5, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		{Name: "pv2_voltage", Address: 7, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		{Name: "pv2_current", Address: 8, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		{Name: "pv2_power", Address: 9, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
	}

	if pv3 {
		input = append(input,
			Entry{Name: "pv3_voltage", Address: 11, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			Entry{Name: "pv3_current", Address: 12, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			Entry{Name: "pv3_power", Address: 13, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		)
	}

	input = append(input,
		Entry{Name: "ac_power", Address: 35, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		Entry{Name: "ac_frequency", Address: 37, Words: 1, Scale: 0.01, Unit: "Hz", Kind: KindDiagnostic},

		Entry{Name: "ac_voltage_r", Address: 38, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "ac_current_r", Address: 39, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		Entry{Name: "ac_power_r", Address: 40, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},
		Entry{Name: "ac_voltage_s", Address: 42, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "ac_current_s", Address: 43, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		Entry{Name: "ac_power_s", Address: 44, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},
		Entry{Name: "ac_voltage_t", Address: 46, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "ac_current_t", Address: 47, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
		Entry{Name: "ac_power_t", Address: 48, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},

		Entry{Name: "line_voltage_rs", Address: 50, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "line_voltage_st", Address: 51, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
		Entry{Name: "line_voltage_tr", Address: 52, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},

		Entry{Name: "energy_today", Address: 53, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
		Entry{Name: "energy_total", Address: 55, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},

		Entry{Name: "inverter_temp", Address: 93, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
		Entry{Name: "ipm_temp", Address: 94, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
		Entry{Name: "boost_temp", Address: 95, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},

		Entry{Name: "power_factor", Address: 100, Words: 1, Scale: 1, Kind: KindDiagnostic},
		Entry{Name: "derating_mode", Address: 104, Words: 1, Scale: 1, Kind: KindDiagnostic},
		Entry{Name: "fault_code", Address: 105, Words: 1, Scale: 1, Kind: KindDiagnostic},
		Entry{Name: "warning_code", Address: 112, Words: 1, Scale: 1, Kind: KindDiagnostic},
	)

	return &Profile{
		Series: series,
		Name:   name,
		Phases: 3,
		HasPV3: pv3,
		Input:  input,
		Settings: []Setting{
			{Name: "on_off", Address: 0, Min: 0, Max: 1, Desc: "inverter on/off"},
			{Name: "active_power_rate", Address: 3, Min: 0, Max: 100, Desc: "max output power %"},
			{Name: "modbus_address", Address: 30, Min: 1, Max: 254, Desc: "slave address"},
		},
	}
}
