package catalog

import (
	"github.com/vishalkuo/bimap"
)

// Interpretation is the rule that turns a raw device value into the reported value.
type Interpretation int

const (
	// Raw values are reported unchanged.
	Raw Interpretation = iota
	// OnOff digital signals: 1 is on.
	OnOff
	// OKProblem digital signals: 1 is healthy.
	OKProblem
	// InvertedOnOff digital signals: 1 is off.
	InvertedOnOff
)

var signalTables = map[Interpretation]*bimap.BiMap[string, string]{
	OnOff:         bimap.NewBiMapFromMap(map[string]string{"1": "on", "0": "off"}),
	OKProblem:     bimap.NewBiMapFromMap(map[string]string{"1": "OK", "0": "Problem!"}),
	InvertedOnOff: bimap.NewBiMapFromMap(map[string]string{"1": "off", "0": "on"}),
}

// Apply maps a raw value. Values outside the table pass through.
func (i Interpretation) Apply(raw string) string {
	t, ok := signalTables[i]
	if !ok {
		return raw
	}
	if v, ok := t.Get(raw); ok {
		return v
	}
	return raw
}

// Signal maps a reported value back to the raw device signal.
func (i Interpretation) Signal(reported string) (string, bool) {
	t, ok := signalTables[i]
	if !ok {
		return "", false
	}
	return t.GetInverse(reported)
}

func (i Interpretation) String() string {
	switch i {
	case OnOff:
		return "on_off"
	case OKProblem:
		return "ok_problem"
	case InvertedOnOff:
		return "inverted_on_off"
	}
	return "raw"
}
