package mapper

import (
	"strings"
)

var circuitModes = map[string]string{
	"0": CircuitModeOff,
	"1": CircuitModeHeating,
	"2": CircuitModeCooling,
}

var systemModes = map[string]string{
	"0": SystemModeOff,
	"1": SystemModeHeating,
	"2": SystemModeCooling,
	"4": SystemModeHotwater,
	"8": SystemModeDefrost,
}

var compressorStates = map[string]string{
	"0": CompressorOnLow,
	"1": CompressorOn,
	"2": CompressorOn2,
}

// CircuitMode decodes an hcmode digit. Unknown digits pass through unchanged.
func CircuitMode(digit string) string {
	if m, ok := circuitModes[digit]; ok {
		return m
	}
	return digit
}

// SystemMode decodes a sysmode digit. ok is false for digits without a meaning.
func SystemMode(digit string) (mode string, ok bool) {
	mode, ok = systemModes[digit]
	return mode, ok
}

// CompressorStatus decodes the stages digit. A missing field is how the
// device reports a stopped compressor.
func CompressorStatus(digit string, present bool) string {
	if !present {
		return CompressorOff
	}
	if s, ok := compressorStates[digit]; ok {
		return s
	}
	return CompressorOff
}

// AvailableStates returns the closed set of states a decoded key can take, or nil.
func AvailableStates(key string) []string {
	switch {
	case key == KeySystemMode:
		return []string{SystemModeOff, SystemModeHeating, SystemModeCooling, SystemModeHotwater, SystemModeDefrost}
	case key == KeyHeatpumpCompressor:
		return []string{CompressorOff, CompressorOn, CompressorOnLow, CompressorOn2}
	case strings.HasPrefix(key, PrefixCircuitMode):
		return []string{CircuitModeOff, CircuitModeHeating, CircuitModeCooling}
	}
	return nil
}

// ValidCircuit reports whether s names a heating circuit A to G.
func ValidCircuit(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'G'
}
