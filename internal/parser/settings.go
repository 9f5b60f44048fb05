// Package parser turns the raw pages of the iDM web interface into key/value pairs.
//
// Each page has its own routine. Values are located by position: a marker is
// searched, then the value behind it, and the scan position only ever moves
// forward. A missing value is logged and skipped; a missing structural marker
// aborts the page for this cycle.
package parser

import (
	"errors"
	"log/slog"

	"idm_exporter/internal/catalog"
	"idm_exporter/internal/extract"
	"idm_exporter/internal/types"
)

// ErrMalformedFrame is returned when a structural marker of a page is missing.
var ErrMalformedFrame = errors.New("malformed frame")

// Settings page section markers.
const (
	inputsOutputsMarker = `"edesc":"_INPUTS_OUTPUTS_INFO"`
	pvMarker            = `"edesc":"_PV"`

	// service mode pages are long; resync this far before the section start
	resyncLead = 50
)

// Parser holds the logger shared by the page routines.
type Parser struct {
	logger *slog.Logger
}

// New creates a parser.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// SettingsState is the settings page state carried from one cycle to the next.
type SettingsState struct {
	Catalog     *catalog.Catalog
	ServiceMode bool
}

// Settings parses the settings page. The returned state carries the catalog
// that matched the page and the service mode flag.
//
// When the page does not carry the current catalog's identification marker the
// other language is probed. The catalog only changes when the other marker is
// present; a page matching neither leaves the state untouched.
func (p *Parser) Settings(txt string, st SettingsState) (types.Values, SettingsState, error) {
	cat := st.Catalog

	start := extract.Index(txt, cat.Identification, 0, len(txt))
	if start == -1 {
		other := cat.Other()
		start = extract.Index(txt, other.Identification, 0, len(txt))
		if start == -1 {
			p.logger.Warn("Identification marker not found, wrong frame or unknown language",
				"language", cat.Language, "bytes", len(txt))
			return nil, st, ErrMalformedFrame
		}
		p.logger.Info("Switching catalog", "from", cat.Language, "to", other.Language)
		cat = other
		st.Catalog = other
	}

	var vals types.Values
	pos := start

	for _, f := range cat.Extra {
		v, next := extract.Bounded(txt, pos, pos+extract.ReadAheadBlock, f.Marker, f.ValueIntro, f.ValueEnding)
		if next <= pos {
			p.logger.Debug("Extra field not found", "key", f.Key, "reason", v)
			continue
		}
		vals.Add(f.Key, v)
		pos = next
	}

	section := extract.Index(txt, inputsOutputsMarker, pos, len(txt))
	if section == -1 {
		p.logger.Warn("Inputs/outputs section not found, no values extracted")
		return nil, st, ErrMalformedFrame
	}
	pos = section

	for _, d := range cat.Sensors {
		if d.Role == catalog.RoleSectionStart {
			if st.ServiceMode {
				if at := extract.Index(txt, d.FieldID, pos, len(txt)); at-resyncLead > pos {
					pos = at - resyncLead
				}
			} else {
				pv := extract.Index(txt, pvMarker, pos, len(txt))
				if pv == -1 {
					p.logger.Debug("No PV section, skipping remaining sensors")
					break
				}
				pos = pv
			}
		}

		v, next := extract.Param(txt, pos, d.FieldID)
		if next <= pos {
			p.logger.Debug("Sensor not found", "field", d.FieldID, "key", d.Key)
			continue
		}

		if d.Role == catalog.RoleServiceModeMarker && !st.ServiceMode {
			p.logger.Info("Service mode detected")
			st.ServiceMode = true
		}

		vals.Add(d.OutputKey(), d.Interpretation.Apply(v))
		pos = next
	}

	return vals, st, nil
}
