// Package catalog holds the language specific tables used to read the iDM
// web interface: the marker that identifies a language, the extra fields with
// their own delimiters, the sensor rows and the statistics categories.
//
// A Catalog is immutable. Switching language means swapping the *Catalog the
// parser holds, so all tables always change together.
package catalog

import (
	"strings"

	"idm_exporter/internal/extract"
)

// Language identifies one web interface dialect.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

// Role marks sensor rows where the settings scan changes position.
type Role int

const (
	RoleNone Role = iota
	// RoleServiceModeMarker rows only appear when the device is in service mode.
	RoleServiceModeMarker
	// RoleSectionStart rows begin the service/PV part of the page.
	RoleSectionStart
)

// ExtraField is a settings page value with its own delimiters.
type ExtraField struct {
	Marker      string
	ValueIntro  string
	ValueEnding string
	Key         string
}

// SensorDef maps one device field id to its semantic key.
type SensorDef struct {
	FieldID        string
	Key            string
	Interpretation Interpretation
	Role           Role
}

// OutputKey is the key a value of this row is reported under: the raw id for
// short ids, the semantic key for localized descriptions.
func (d SensorDef) OutputKey() string {
	if extract.IsShortID(d.FieldID) {
		return d.FieldID
	}
	return d.Key
}

// StatCategory maps a statistics category label to its semantic category.
type StatCategory struct {
	Marker   string
	Category string
}

// Catalog is one language variant of all tables.
type Catalog struct {
	Language        Language
	Identification  string
	Extra           []ExtraField
	Sensors         []SensorDef
	Statistics      []StatCategory
	SetTimeTemplate string

	byOutputKey map[string]SensorDef
}

func newCatalog(c Catalog) *Catalog {
	c.byOutputKey = make(map[string]SensorDef, len(c.Sensors))
	for _, d := range c.Sensors {
		c.byOutputKey[d.OutputKey()] = d
	}
	return &c
}

// Other returns the catalog of the other supported language.
func (c *Catalog) Other() *Catalog {
	if c.Language == LanguageEnglish {
		return German
	}
	return English
}

// Sensor returns the sensor row reported under outputKey.
func (c *Catalog) Sensor(outputKey string) (SensorDef, bool) {
	d, ok := c.byOutputKey[outputKey]
	return d, ok
}

// Unit returns the unit of a reported key, or UnitNone.
func (c *Catalog) Unit(outputKey string) Unit {
	if d, ok := c.byOutputKey[outputKey]; ok {
		return units[d.Key]
	}
	if u, ok := units[outputKey]; ok {
		return u
	}
	for _, p := range unitPrefixes {
		if strings.HasPrefix(outputKey, p.prefix) {
			return p.unit
		}
	}
	return UnitNone
}

// ForLanguage returns the catalog for l, defaulting to English.
func ForLanguage(l Language) *Catalog {
	if l == LanguageGerman {
		return German
	}
	return English
}
