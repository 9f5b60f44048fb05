package parser

import (
	"strconv"

	"idm_exporter/internal/catalog"
	"idm_exporter/internal/extract"
	"idm_exporter/internal/types"
)

// Statistics page markers.
const (
	totalMarker  = `,"total":`
	yearlyMarker = `,"yearly":[`
	recordName   = `"name":`
	yearValues   = `"values":[`
	yearValueEnd = "]]"

	fieldStatValue = "value"

	// reported for a category that has no entry for the current year yet
	statEmpty = "0.0"
)

// Statistics parses one statistics page. Keys are prefix + "total_" or
// "cur_year_" + category. Categories are correlated between the total and the
// yearly section by their name; a category without a total is not reported.
func (p *Parser) Statistics(txt string, cat *catalog.Catalog, prefix string, year int) types.Values {
	totals := extract.Index(txt, totalMarker, 0, len(txt))
	if totals == -1 {
		p.logger.Warn("Statistics total section not found", "prefix", prefix)
		return nil
	}
	yearly := extract.Index(txt, yearlyMarker, totals, len(txt))
	totalsEnd := yearly
	if totalsEnd == -1 {
		totalsEnd = len(txt)
	}

	var vals types.Values
	var found []catalog.StatCategory

	for _, c := range cat.Statistics {
		start, end, ok := statRecord(txt, totals, totalsEnd, c.Marker)
		if !ok {
			// defrost is missing early in the year
			p.logger.Debug("Statistics category has no total", "prefix", prefix, "category", c.Category)
			continue
		}
		v, at := extract.Field(txt, start, end, fieldStatValue)
		if at <= start {
			p.logger.Debug("Statistics total without value", "prefix", prefix, "category", c.Category)
			continue
		}
		vals.Add(prefix+"total_"+c.Category, v)
		found = append(found, c)
	}

	if yearly == -1 {
		if len(found) > 0 {
			p.logger.Warn("Statistics yearly section not found", "prefix", prefix)
		}
		return vals
	}

	y := strconv.Itoa(year)
	for _, c := range found {
		v := statEmpty
		if start, end, ok := statRecord(txt, yearly, len(txt), c.Marker); ok {
			if cur := yearValue(txt, start, end, y); cur != "" {
				v = cur
			}
		}
		vals.Add(prefix+"cur_year_"+c.Category, v)
	}

	return vals
}

// statRecord returns the bounds of the record named marker within
// text[start:end]. A record ends where the next named record begins.
func statRecord(txt string, start, end int, marker string) (int, int, bool) {
	name := recordName + `"` + marker + `"`
	s := extract.Index(txt, name, start, end)
	if s == -1 {
		return 0, 0, false
	}
	e := extract.Index(txt, recordName, s+len(name), end)
	if e == -1 {
		e = end
	}
	return s, e, true
}

// yearValue reads the [[year,value],...] list of a yearly record and returns
// the value paired with year, or "".
func yearValue(txt string, start, end int, year string) string {
	p := extract.Index(txt, yearValues, start, end)
	if p == -1 {
		return ""
	}
	p += len(yearValues)
	stop := extract.Index(txt, yearValueEnd, p, end)
	if stop == -1 {
		stop = end
	}

	for p < stop {
		y, next := extract.Number(txt, p, stop)
		if y == "" {
			break
		}
		v, after := extract.Number(txt, next, stop)
		if y == year {
			return v
		}
		if after <= next {
			break
		}
		p = after
	}
	return ""
}
