package catalog

// Unit is the measurement unit of a reported value.
type Unit string

const (
	UnitNone       Unit = ""
	UnitCelsius    Unit = "celsius"
	UnitBar        Unit = "bar"
	UnitLitersMin  Unit = "liters_per_minute"
	UnitVolt       Unit = "volt"
	UnitPercent    Unit = "percent"
	UnitKilowatt   Unit = "kilowatt"
	UnitHours      Unit = "hours"
	UnitKilowattHr Unit = "kilowatt_hours"
)

// units by semantic key
var units = map[string]Unit{
	"regler_online":      UnitHours,
	"runtime_nb_1":       UnitHours,
	"runtime_nb_2":       UnitHours,
	"runtime_heating":    UnitHours,
	"runtime_cooling":    UnitHours,
	"runtime_hotwater":   UnitHours,
	"runtime_defrosting": UnitHours,

	"outside_air_temperature":         UnitCelsius,
	"flow_temperature":                UnitCelsius,
	"return_temperature":              UnitCelsius,
	"water_temp_top":                  UnitCelsius,
	"water_temp_bottom":               UnitCelsius,
	"flow_temp_HK_C":                  UnitCelsius,
	"hotgas_temperature":              UnitCelsius,
	"airsource_temperature":           UnitCelsius,
	"verdampfer_austritt_temperature": UnitCelsius,
	"verdamper_pressure":              UnitBar,
	"verdampfungs_temperatur":         UnitCelsius,
	"condenser_temperature":           UnitCelsius,
	"condenser_pressure":              UnitBar,
	"liquid_line_temperature":         UnitCelsius,
	"board_temperature":               UnitCelsius,
	"flowmeter":                       UnitLitersMin,
	"battery_voltage_central_unit":    UnitVolt,

	"flow_pump_percentage": UnitPercent,
	"ventilator_voltage":   UnitVolt,
	"ainout_80_81":         UnitPercent,
	"ainout_82_83":         UnitPercent,
	"ainout_84_85":         UnitPercent,
	"ainout_86_87":         UnitPercent,
	"ainout_88_89":         UnitPercent,
	"ainout_180_181":       UnitPercent,

	"super_heating_1":    UnitCelsius,
	"sub_cooling":        UnitCelsius,
	"valve_position":     UnitPercent,
	"valve_pos_sub_cool": UnitPercent,
	"valve_pos_evdmini":  UnitPercent,

	"cur_exp_power_heating":  UnitKilowatt,
	"cur_exp_power_cooling":  UnitKilowatt,
	"cur_exp_power_hotwater": UnitKilowatt,
	"cur_el_power":           UnitKilowatt,
	"cur_el_power_pre":       UnitKilowatt,
	"cur_heat_power":         UnitKilowatt,
}

var unitPrefixes = []struct {
	prefix string
	unit   Unit
}{
	{"flow_temp_set_hc_", UnitCelsius},
	{"stat_runtime_", UnitHours},
	{"stat_genheat_", UnitKilowattHr},
	{"stat_elcons_", UnitKilowattHr},
}
