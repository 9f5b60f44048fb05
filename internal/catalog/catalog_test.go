package catalog

import (
	"testing"
)

func TestCatalogsAreParallel(t *testing.T) {
	if len(English.Sensors) != len(German.Sensors) {
		t.Fatalf("sensor rows: en=%d de=%d", len(English.Sensors), len(German.Sensors))
	}
	for i := range English.Sensors {
		en, de := English.Sensors[i], German.Sensors[i]
		if en.Key != de.Key || en.Interpretation != de.Interpretation || en.Role != de.Role {
			t.Errorf("row %d differs: en=%+v de=%+v", i, en, de)
		}
	}

	if len(English.Extra) != len(German.Extra) {
		t.Fatalf("extra fields: en=%d de=%d", len(English.Extra), len(German.Extra))
	}
	for i := range English.Extra {
		if English.Extra[i].Key != German.Extra[i].Key {
			t.Errorf("extra %d: en=%s de=%s", i, English.Extra[i].Key, German.Extra[i].Key)
		}
	}

	if len(English.Statistics) != 4 || len(German.Statistics) != 4 {
		t.Errorf("expected 4 statistics categories, got en=%d de=%d", len(English.Statistics), len(German.Statistics))
	}
}

func TestOther(t *testing.T) {
	if English.Other() != German {
		t.Error("English.Other() should be German")
	}
	if German.Other() != English {
		t.Error("German.Other() should be English")
	}
	if ForLanguage(LanguageGerman) != German {
		t.Error("ForLanguage(de) should be German")
	}
	if ForLanguage("fr") != English {
		t.Error("ForLanguage of an unknown language should default to English")
	}
}

func TestOutputKey(t *testing.T) {
	tests := []struct {
		def  SensorDef
		want string
	}{
		{SensorDef{FieldID: "B32", Key: "outside_air_temperature"}, "B32"},
		{SensorDef{FieldID: "M73#1", Key: "flow_pump_on"}, "M73#1"},
		{SensorDef{FieldID: "Subcooling", Key: "sub_cooling"}, "sub_cooling"},
	}

	for _, tt := range tests {
		if got := tt.def.OutputKey(); got != tt.want {
			t.Errorf("OutputKey(%q) = %q, want %q", tt.def.FieldID, got, tt.want)
		}
	}
}

func TestInterpretation(t *testing.T) {
	tests := []struct {
		in   Interpretation
		raw  string
		want string
	}{
		{OnOff, "1", "on"},
		{OnOff, "0", "off"},
		{OnOff, "2", "2"},
		{OKProblem, "1", "OK"},
		{OKProblem, "0", "Problem!"},
		{InvertedOnOff, "1", "off"},
		{InvertedOnOff, "0", "on"},
		{Raw, "1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String()+"_"+tt.raw, func(t *testing.T) {
			got := tt.in.Apply(tt.raw)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if tt.in == Raw || got == tt.raw {
				return
			}
			if sig, ok := tt.in.Signal(got); !ok || sig != tt.raw {
				t.Errorf("Signal(%q) = %q, %v, want %q", got, sig, ok, tt.raw)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		key  string
		want Unit
	}{
		{"B32", UnitCelsius},
		{"B78", UnitBar},
		{"board_temperature", UnitCelsius},
		{"M73#2", UnitPercent},
		{"cur_el_power", UnitKilowatt},
		{"flow_temp_set_hc_A", UnitCelsius},
		{"stat_genheat_total_heating", UnitKilowattHr},
		{"stat_runtime_cur_year_defrost", UnitHours},
		{"software_version", UnitNone},
		{"M73#1", UnitNone},
	}

	for _, tt := range tests {
		if got := English.Unit(tt.key); got != tt.want {
			t.Errorf("Unit(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSensorLookup(t *testing.T) {
	d, ok := German.Sensor("ew_evu_lock_contact")
	if !ok {
		t.Fatal("ew_evu_lock_contact not found")
	}
	if d.FieldID != "EW/EVU Sperrkontakt" || d.Interpretation != InvertedOnOff {
		t.Errorf("unexpected row %+v", d)
	}
	if _, ok := English.Sensor("outside_air_temperature"); ok {
		t.Error("short id rows are reported under their field id, not the semantic key")
	}
}
