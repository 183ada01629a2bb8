// internal/registry/storage.go
package registry

// Hybrid (battery) series. SPH reports over the 0-124 base range plus
// the 1000-1124 storage range (protocol V1.20); MOD TL3-XH is a
// three-phase hybrid on the 3000 range with battery registers above
// 3100.

func sph() *Profile {
	return &Profile{
		Series:     "sph_3000_10000",
		Name:       "SPH 3000-10000",
		Phases:     1,
		HasBattery: true,
		Input: []Entry{
			{Name: "inverter_status", Address: 0, Words: 1, Scale: 1, Kind: KindStatus},

			{Name: "pv_total_power", Address: 1, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "pv1_voltage", Address: 3, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "pv1_current", Address: 4, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "pv1_power", Address: 5, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "pv2_voltage", Address: 7, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "pv2_current", Address: 8, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "pv2_power", Address: 9, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

			{Name: "ac_frequency", Address: 37, Words: 1, Scale: 0.01, Unit: "Hz", Kind: KindDiagnostic},
			{Name: "ac_voltage", Address: 38, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "ac_current", Address: 39, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "ac_power", Address: 40, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

			{Name: "energy_today", Address: 53, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "energy_total", Address: 55, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},

			{Name: "inverter_temp", Address: 93, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "ipm_temp", Address: 94, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "boost_temp", Address: 95, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "p_bus_voltage", Address: 98, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "n_bus_voltage", Address: 99, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "power_factor", Address: 100, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "fault_code", Address: 105, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "warning_code", Address: 112, Words: 1, Scale: 1, Kind: KindDiagnostic},

			// ---- storage range ----
			{Name: "system_work_mode", Address: 1000, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "battery_discharge_power", Address: 1009, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "battery_charge_power", Address: 1011, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "battery_voltage", Address: 1013, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "battery_soc", Address: 1014, Words: 1, Scale: 1, Unit: "%", Kind: KindDiagnostic},
			{Name: "power_to_user", Address: 1015, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "power_to_load", Address: 1021, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "power_to_grid", Address: 1029, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "self_consumption_power", Address: 1037, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "battery_temp", Address: 1040, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},

			{Name: "energy_to_user_today", Address: 1044, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "energy_to_user_total", Address: 1046, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "energy_to_grid_today", Address: 1048, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "energy_to_grid_total", Address: 1050, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "battery_discharge_today", Address: 1052, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "battery_discharge_total", Address: 1054, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "battery_charge_today", Address: 1056, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "battery_charge_total", Address: 1058, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "load_energy_today", Address: 1060, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "load_energy_total", Address: 1062, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
		},
		Settings: []Setting{
			{Name: "on_off", Address: 0, Min: 0, Max: 1, Desc: "inverter on/off"},
			{Name: "active_power_rate", Address: 3, Min: 0, Max: 100, Desc: "max output power %"},
			{Name: "modbus_address", Address: 30, Min: 1, Max: 247, Desc: "slave address"},
			{Name: "priority_mode", Address: 1044, Min: 0, Max: 2, Desc: "0=load first 1=battery first 2=grid first"},
			{Name: "ac_charge_enable", Address: 1090, Min: 0, Max: 1, Desc: "charge battery from grid"},
			{Name: "ac_charge_power", Address: 1095, Min: 0, Max: 100, Desc: "AC charge power rate %"},
			{Name: "ac_charge_soc_limit", Address: 1096, Min: 0, Max: 100, Desc: "AC charge SOC limit %"},
			{Name: "discharge_soc_limit", Address: 1105, Min: 0, Max: 100, Desc: "discharge SOC lower limit %"},
		},
	}
}

func modTL3XH() *Profile {
	return &Profile{
		Series:     "mod_6000_15000tl3_xh",
		Name:       "MOD 6000-15000TL3-XH",
		Phases:     3,
		HasBattery: true,
		HasPV3:     true,
		Input: []Entry{
			{Name: "inverter_status", Address: 3000, Words: 1, Scale: 1, Kind: KindStatus},

			{Name: "pv_total_power", Address: 3001, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "pv1_voltage", Address: 3003, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "pv1_current", Address: 3004, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "pv1_power", Address: 3005, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "pv2_voltage", Address: 3007, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "pv2_current", Address: 3008, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "pv2_power", Address: 3009, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "pv3_voltage", Address: 3011, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "pv3_current", Address: 3012, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "pv3_power", Address: 3013, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

			{Name: "ac_frequency", Address: 3025, Words: 1, Scale: 0.01, Unit: "Hz", Kind: KindDiagnostic},
			{Name: "ac_voltage_r", Address: 3026, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "ac_current_r", Address: 3027, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "ac_power_r", Address: 3028, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},
			{Name: "ac_voltage_s", Address: 3030, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "ac_current_s", Address: 3031, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "ac_power_s", Address: 3032, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},
			{Name: "ac_voltage_t", Address: 3034, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "ac_current_t", Address: 3035, Words: 1, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "ac_power_t", Address: 3036, Words: 2, Scale: 0.1, Unit: "VA", Kind: KindPower},
			{Name: "line_voltage_rs", Address: 3038, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "line_voltage_st", Address: 3039, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},
			{Name: "line_voltage_tr", Address: 3040, Words: 1, Scale: 0.1, Unit: "V", Kind: KindDiagnostic},

			{Name: "power_to_user", Address: 3041, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "power_to_grid", Address: 3043, Words: 2, Signed: true, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "power_to_load", Address: 3045, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},

			{Name: "energy_today", Address: 3049, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "energy_total", Address: 3051, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "energy_to_user_today", Address: 3067, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "energy_to_grid_today", Address: 3071, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "load_energy_today", Address: 3075, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},

			{Name: "inverter_temp", Address: 3093, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "ipm_temp", Address: 3094, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "boost_temp", Address: 3095, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "fault_code", Address: 3105, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "warning_code", Address: 3106, Words: 1, Scale: 1, Kind: KindDiagnostic},

			// ---- battery range ----
			{Name: "battery_discharge_today", Address: 3125, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "battery_discharge_total", Address: 3127, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "battery_charge_today", Address: 3129, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyDaily},
			{Name: "battery_charge_total", Address: 3131, Words: 2, Scale: 0.1, Unit: "kWh", Kind: KindEnergyTotal},
			{Name: "priority_mode", Address: 3144, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "battery_derating_mode", Address: 3165, Words: 1, Scale: 1, Kind: KindDiagnostic},
			{Name: "battery_voltage", Address: 3169, Words: 1, Scale: 0.01, Unit: "V", Kind: KindDiagnostic},
			{Name: "battery_current", Address: 3170, Words: 1, Signed: true, Scale: 0.1, Unit: "A", Kind: KindDiagnostic},
			{Name: "battery_soc", Address: 3171, Words: 1, Scale: 1, Unit: "%", Kind: KindDiagnostic},
			{Name: "battery_temp", Address: 3176, Words: 1, Scale: 0.1, Unit: "°C", Kind: KindDiagnostic},
			{Name: "battery_discharge_power", Address: 3178, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
			{Name: "battery_charge_power", Address: 3180, Words: 2, Scale: 0.1, Unit: "W", Kind: KindPower},
		},
		Settings: []Setting{
			{Name: "on_off", Address: 0, Min: 0, Max: 1, Desc: "inverter on/off"},
			{Name: "active_power_rate", Address: 3, Min: 0, Max: 100, Desc: "max output power %"},
			{Name: "modbus_address", Address: 30, Min: 1, Max: 254, Desc: "slave address"},
		},
	}
}
