package parser

import (
	"fmt"
	"strings"
	"time"

	"idm_exporter/internal/catalog"
	"idm_exporter/internal/extract"
)

// Info page and set time answer markers.
const (
	datetimeMarker  = `"datetime":"`
	datetimeLayout  = "2006-01-02 15:04:05"
	setTimeLayout   = "2006-01-02T15:04:05.000"
	setTimeAccepted = `"success":true`
)

// DeviceTime reads the device clock from the info page. The device reports
// local wall time without a zone; loc is the zone it is interpreted in.
func DeviceTime(txt string, loc *time.Location) (time.Time, error) {
	p := extract.Index(txt, datetimeMarker, 0, len(txt))
	if p == -1 {
		return time.Time{}, fmt.Errorf("datetime: %w", ErrMalformedFrame)
	}
	p += len(datetimeMarker)
	if p+len(datetimeLayout) > len(txt) {
		return time.Time{}, fmt.Errorf("datetime truncated: %w", ErrMalformedFrame)
	}

	t, err := time.ParseInLocation(datetimeLayout, txt[p:p+len(datetimeLayout)], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime: %w", err)
	}
	return t, nil
}

// SetTimePayload renders the set time request body for t. The device expects
// local time with millisecond precision followed by a literal "Z".
func SetTimePayload(cat *catalog.Catalog, t time.Time) string {
	return fmt.Sprintf(cat.SetTimeTemplate, t.Format(setTimeLayout)+"Z")
}

// SetTimeAccepted reports whether the device acknowledged a set time request.
func SetTimeAccepted(txt string) bool {
	return strings.Contains(txt, setTimeAccepted)
}
