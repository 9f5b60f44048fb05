package parser

import (
	"idm_exporter/internal/extract"
	"idm_exporter/internal/mapper"
	"idm_exporter/internal/types"
)

// Heatpump status page markers and field names.
const (
	flowBlockMarker = `{"flow":{`

	fieldCircuitMode = "hcmode"
	fieldFlowTempSet = "temp_set"
	fieldCircuit     = "hk"
	fieldPVExport    = "cur_el_power_pre"
	fieldHeatPower   = "qheat"
	fieldStages      = "stages"
	fieldSystemMode  = "sysmode"
)

// Heatpump parses the heat pump status page. heatSeen tells whether the
// generated heat field was present on an earlier cycle; the returned flag is
// the updated value.
func (p *Parser) Heatpump(txt string, heatSeen bool) (types.Values, bool) {
	var vals types.Values
	pos := 0

	for {
		block := extract.Index(txt, flowBlockMarker, pos, len(txt))
		if block == -1 {
			break
		}
		end := extract.Index(txt, flowBlockMarker, block+len(flowBlockMarker), len(txt))
		if end == -1 {
			end = len(txt)
		}

		hk, next := extract.Field(txt, block, end, fieldCircuit)
		if next <= block {
			p.logger.Debug("Flow block without circuit id", "pos", block)
			break
		}
		pos = next

		if !mapper.ValidCircuit(hk) {
			p.logger.Debug("Ignoring flow block with invalid circuit", "hk", hk)
			continue
		}

		if set, at := extract.Field(txt, block, end, fieldFlowTempSet); at > block {
			vals.Add(mapper.PrefixCircuitFlowSet+hk, set)
		} else {
			p.logger.Debug("No set temperature in flow block", "hk", hk)
		}
		if mode, at := extract.Field(txt, block, end, fieldCircuitMode); at > block {
			vals.Add(mapper.PrefixCircuitMode+hk, mapper.CircuitMode(mode))
		}
	}

	if v, at := extract.Field(txt, pos, len(txt), fieldPVExport); at > pos {
		vals.Add(mapper.KeyPVExportPower, v)
	} else {
		p.logger.Debug("PV export power not found")
	}

	if v, at := extract.Field(txt, pos, len(txt), fieldHeatPower); at > pos {
		heatSeen = true
		vals.Add(mapper.KeyHeatPower, v)
	} else if heatSeen {
		vals.Add(mapper.KeyHeatPower, mapper.HeatPowerAbsent)
	}

	stages, at := extract.Field(txt, pos, len(txt), fieldStages)
	vals.Add(mapper.KeyHeatpumpCompressor, mapper.CompressorStatus(stages, at > pos))

	if v, at := extract.Field(txt, pos, len(txt), fieldSystemMode); at > pos {
		if mode, ok := mapper.SystemMode(v); ok {
			vals.Add(mapper.KeySystemMode, mode)
		} else {
			p.logger.Debug("Unknown system mode", "sysmode", v)
		}
	}

	return vals, heatSeen
}
