package catalog

// German is the catalog of the German web interface.
var German = newCatalog(Catalog{
	Language:       LanguageGerman,
	Identification: `"name":"Allgemeine Einstellungen"`,

	Extra: []ExtraField{
		{"<tr><td>Software Version</td>", "<td>", "</td></tr>", "software_version"},
		{"<tr><td>Regler Online</td>", "<td>", "h</td></tr>", "regler_online"},
		{"<tr><td>Laufzeit Stufe&nbsp1</td>", "<td>", "h</td></tr>", "runtime_nb_1"},
		{"<tr><td>Schaltzyklen Stufe&nbsp1</td>", "<td>", "</td></tr>", "switch_cycles_nb_1"},
		{"<tr><td>Laufzeit 2.Wärmeerzeuger</td>", "<td>", "h</td></tr>", "runtime_nb_2"},
		{"<tr><td>Schaltzyklen 2.Wärmeerzeuger</td>", "<td>", "</td></tr>", "switch_cycles_nb_2"},
		{"<tr><td>Laufzeit Heizen</td>", "<td>", "h</td></tr>", "runtime_heating"},
		{"<tr><td>Laufzeit Kühlen</td>", "<td>", "h</td></tr>", "runtime_cooling"},
		{"<tr><td>Laufzeit Warmwasser</td>", "<td>", "h</td></tr>", "runtime_hotwater"},
		{"<tr><td>Laufzeit Abtauen</td>", "<td>", "h</td></tr>", "runtime_defrosting"},
	},

	Sensors: withCommonSensors(localizedSensors{
		boardTemperature:   "Platinentemperatur",
		batteryVoltage:     "Batteriespannung Zentraleinheit",
		externalRequest:    "Externe Anforderung",
		extHeatCoolSwitch:  "Ext. Umschaltung H/K",
		evuLockContact:     "EW/EVU Sperrkontakt",
		extPriorityRequest: "ext. Vorrangladung",
		eHeater1kW:         "Elektroheizeinsatz 1kW",
		eHeater2kW:         "Elektroheizeinsatz 2kW",
		eHeater3kW:         "Elektroheizeinsatz 3kW",
		superHeating:       "Überhitzung 1",
		subCooling:         "Unterkühlung",
		valvePosition:      "Ventilposition",
		valvePosSubCool:    "Ventilpos. Unterk.",
		valvePosEVDMini:    "Ventilpos. EVDMini",
		pvPowerHeating:     "mom./prog. Leistung Heizen",
		pvPowerCooling:     "mom./prog. Leistung Kühlen",
		pvPowerHotwater:    "mom./prog. Leistung Vorrang",
		elPower:            "Wärmepumpe Aufnahmeleistung",
	}),

	Statistics: []StatCategory{
		{"Heizen", "heating"},
		{"Kühlen", "cooling"},
		{"Warmwasser", "hotwater"},
		{"Abtauen", "defrost"},
	},

	SetTimeTemplate: `{"datetime":"%s"}`,
})
