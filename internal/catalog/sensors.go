package catalog

// localizedSensors holds the description labels that differ between languages.
type localizedSensors struct {
	boardTemperature   string
	batteryVoltage     string
	externalRequest    string
	extHeatCoolSwitch  string
	evuLockContact     string
	extPriorityRequest string
	eHeater1kW         string
	eHeater2kW         string
	eHeater3kW         string
	superHeating       string
	subCooling         string
	valvePosition      string
	valvePosSubCool    string
	valvePosEVDMini    string
	pvPowerHeating     string
	pvPowerCooling     string
	pvPowerHotwater    string
	elPower            string
}

// withCommonSensors returns the sensor rows in page order. The order matters:
// the settings scan only moves forward.
func withCommonSensors(l localizedSensors) []SensorDef {
	return []SensorDef{
		// inputs and outputs
		{FieldID: "B32", Key: "outside_air_temperature"},
		{FieldID: "B33", Key: "flow_temperature"},
		{FieldID: "B34", Key: "return_temperature"},
		{FieldID: "B48", Key: "water_temp_top"},
		{FieldID: "B41", Key: "water_temp_bottom"},
		{FieldID: "B53", Key: "flow_temp_HK_C"},
		{FieldID: "B71", Key: "hotgas_temperature"},
		{FieldID: "B37", Key: "airsource_temperature"},
		{FieldID: "B79", Key: "verdampfer_austritt_temperature"},
		{FieldID: "B78", Key: "verdamper_pressure"},
		{FieldID: "B78v", Key: "verdampfungs_temperatur"},
		{FieldID: "B86v", Key: "condenser_temperature"},
		{FieldID: "B86", Key: "condenser_pressure"},
		{FieldID: "B87", Key: "liquid_line_temperature"},
		{FieldID: l.boardTemperature, Key: "board_temperature"},
		{FieldID: "B2", Key: "flowmeter"},
		{FieldID: l.batteryVoltage, Key: "battery_voltage_central_unit"},

		// digital inputs
		{FieldID: l.externalRequest, Key: "external_request", Interpretation: OnOff},
		{FieldID: l.extHeatCoolSwitch, Key: "ext_switch_heating_cooling", Interpretation: OnOff},
		{FieldID: l.evuLockContact, Key: "ew_evu_lock_contact", Interpretation: InvertedOnOff},
		{FieldID: "B15", Key: "failure_eheating", Interpretation: OKProblem},
		{FieldID: "B5", Key: "dewpoint_humidity_alarm", Interpretation: OKProblem},
		{FieldID: l.extPriorityRequest, Key: "ext_hotwater_signal", Interpretation: OnOff},
		{FieldID: "B10", Key: "high_pressure_error", Interpretation: OKProblem},
		{FieldID: "M73#1", Key: "flow_pump_on", Interpretation: OnOff},

		// analogue outputs
		{FieldID: "M73#2", Key: "flow_pump_percentage"},
		{FieldID: "M13", Key: "ventilator_voltage"},
		{FieldID: "AInOut 80-81", Key: "ainout_80_81", Role: RoleServiceModeMarker},
		{FieldID: "AInOut 82-83", Key: "ainout_82_83"},
		{FieldID: "AInOut 84-85", Key: "ainout_84_85"},
		{FieldID: "AInOut 86-87", Key: "ainout_86_87"},
		{FieldID: "AInOut 88-89", Key: "ainout_88_89"},
		{FieldID: "AInOut 180-181", Key: "ainout_180_181"},

		// digital outputs
		{FieldID: "M73#3", Key: "flow_pump_activated"},
		{FieldID: "M51", Key: "4way_valve_circuit1"},
		{FieldID: "M31", Key: "pump_heating_circuitA"},
		{FieldID: "M33", Key: "pump_heating_circuitC"},
		{FieldID: "M43", Key: "mixer_heating_circuitC"},
		{FieldID: "M64", Key: "hotwater_circulation_pump", Interpretation: OnOff},
		{FieldID: "E31", Key: "siphon_heating", Interpretation: OnOff},
		{FieldID: l.eHeater1kW, Key: "e_heater_1kw_on"},
		{FieldID: l.eHeater2kW, Key: "e_heater_2kw_on"},
		{FieldID: l.eHeater3kW, Key: "e_heater_3kw_on"},
		{FieldID: "M61", Key: "valve_heating/cooling"},
		{FieldID: "M62", Key: "valve_warm/cold"},
		{FieldID: "M63", Key: "value_heating/hotwater"},

		// service parameters
		{FieldID: l.superHeating, Key: "super_heating_1", Role: RoleSectionStart},
		{FieldID: l.subCooling, Key: "sub_cooling"},
		{FieldID: l.valvePosition, Key: "valve_position"},
		{FieldID: l.valvePosSubCool, Key: "valve_pos_sub_cool"},
		{FieldID: l.valvePosEVDMini, Key: "valve_pos_evdmini"},

		// PV parameters, only present when PV is configured on the device
		{FieldID: l.pvPowerHeating, Key: "cur_exp_power_heating"},
		{FieldID: l.pvPowerCooling, Key: "cur_exp_power_cooling"},
		{FieldID: l.pvPowerHotwater, Key: "cur_exp_power_hotwater"},
		{FieldID: l.elPower, Key: "cur_el_power"},
	}
}
