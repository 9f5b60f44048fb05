// Package mapper decodes the digits the heat pump reports into named states
// and converts reported values into numbers for exposition.
package mapper

// Prometheus metric label names
const (
	LabelDevice = "device"
	LabelSensor = "sensor"
	LabelUnit   = "unit"
	LabelState  = "state"
)

// Heating circuit modes (hcmode)
const (
	CircuitModeOff     = "off"
	CircuitModeHeating = "heating"
	CircuitModeCooling = "cooling"
)

// System modes (sysmode)
const (
	SystemModeOff      = "off"
	SystemModeHeating  = "heating"
	SystemModeCooling  = "cooling"
	SystemModeHotwater = "hotwater"
	SystemModeDefrost  = "defrost"
)

// Compressor states (stages)
const (
	CompressorOff   = "off"
	CompressorOn    = "on"
	CompressorOnLow = "on_0"
	CompressorOn2   = "on_2"
)

// Keys of values decoded from the heat pump status page.
const (
	KeySystemMode         = "system_mode"
	KeyHeatpumpCompressor = "heatpump_compressor"
	KeyHeatPower          = "cur_heat_power"
	KeyPVExportPower      = "cur_el_power_pre"

	PrefixCircuitMode    = "mode_heatcirc_"
	PrefixCircuitFlowSet = "flow_temp_set_hc_"
)

// HeatPowerAbsent is reported for the generated heat once the device stops sending it.
const HeatPowerAbsent = "0.0"
