package catalog

// English is the catalog of the English web interface.
var English = newCatalog(Catalog{
	Language:       LanguageEnglish,
	Identification: `"name":"General Settings"`,

	Extra: []ExtraField{
		{"<tr><td>Software Version</td>", "<td>", "</td></tr>", "software_version"},
		{"<tr><td>Controller Online</td>", "<td>", "h</td></tr>", "regler_online"},
		{"<tr><td>Runtime Stage&nbsp1</td>", "<td>", "h</td></tr>", "runtime_nb_1"},
		{"<tr><td>Starts Stage&nbsp1</td>", "<td>", "</td></tr>", "switch_cycles_nb_1"},
		{"<tr><td>Runtime 2nd Stage</td>", "<td>", "h</td></tr>", "runtime_nb_2"},
		{"<tr><td>Starts 2nd Stage</td>", "<td>", "</td></tr>", "switch_cycles_nb_2"},
		{"<tr><td>Runtime Heating</td>", "<td>", "h</td></tr>", "runtime_heating"},
		{"<tr><td>Runtime Cooling</td>", "<td>", "h</td></tr>", "runtime_cooling"},
		{"<tr><td>Runtime Domestic Hot Water</td>", "<td>", "h</td></tr>", "runtime_hotwater"},
		{"<tr><td>Runtime Defrost</td>", "<td>", "h</td></tr>", "runtime_defrosting"},
	},

	Sensors: withCommonSensors(localizedSensors{
		boardTemperature:   "board temperature",
		batteryVoltage:     "Battery voltage central unit",
		externalRequest:    "external request",
		extHeatCoolSwitch:  "ext. heat/cool switch",
		evuLockContact:     "EW/EVU blocking",
		extPriorityRequest: "ext. priority request",
		eHeater1kW:         "Electric Heater 1kW",
		eHeater2kW:         "Electric Heater 2kW",
		eHeater3kW:         "Electric Heater 3kW",
		superHeating:       "Superheating 1",
		subCooling:         "Subcooling",
		valvePosition:      "Valve position",
		valvePosSubCool:    "Valve pos. subc.",
		valvePosEVDMini:    "Valve pos. EVDMini",
		// No English PV labels have been seen on a device yet; the GUI shows German ones.
		pvPowerHeating:  "mom./prog. Leistung Heizen",
		pvPowerCooling:  "mom./prog. Leistung Kühlen",
		pvPowerHotwater: "mom./prog. Leistung Vorrang",
		elPower:         "Wärmepumpe Aufnahmeleistung",
	}),

	Statistics: []StatCategory{
		{"Heating", "heating"},
		{"Cooling", "cooling"},
		{"Hot water", "hotwater"},
		{"Defrost", "defrost"},
	},

	SetTimeTemplate: `{"datetime":"%s"}`,
})
