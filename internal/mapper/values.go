package mapper

import (
	"strconv"
	"strings"

	"idm_exporter/internal/catalog"
)

// Value holds a reported value converted for exposition.
type Value struct {
	Key     string
	Unit    catalog.Unit
	Number  float64
	Numeric bool
	State   string
	States  []string
}

// Convert turns a reported key/value pair into a number when possible. Digital
// signals that were translated to text are converted back to their signal
// level; other text is kept as a state together with its possible states.
func Convert(cat *catalog.Catalog, key, value string) Value {
	v := Value{
		Key:  key,
		Unit: cat.Unit(key),
	}

	if def, ok := cat.Sensor(key); ok && def.Interpretation != catalog.Raw {
		v.State = value
		v.States = signalStates(def.Interpretation)
		if sig, ok := def.Interpretation.Signal(value); ok {
			if f, err := strconv.ParseFloat(sig, 64); err == nil {
				v.Number, v.Numeric = f, true
			}
		}
		return v
	}

	if f, ok := ParseNumber(value); ok {
		v.Number, v.Numeric = f, true
		return v
	}

	v.State = value
	v.States = AvailableStates(key)
	return v
}

// ParseNumber parses a device number, accepting a decimal comma.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func signalStates(in catalog.Interpretation) []string {
	var states []string
	for _, raw := range []string{"1", "0"} {
		if s := in.Apply(raw); s != raw {
			states = append(states, s)
		}
	}
	return states
}

// Safe returns the value if non-empty after trimming, otherwise returns the fallback.
func Safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
