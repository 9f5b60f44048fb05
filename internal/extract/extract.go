// Package extract implements the bounded positional substring search used to
// pull values out of the heat pump's HTML and JSON-ish pages.
//
// Every search returns the position just after the consumed value. A returned
// position equal to the search start means "not found"; callers must not
// advance their scan position in that case.
package extract

import (
	"strings"
)

// ReadAheadBlock bounds how far past the current position a single field is searched.
const ReadAheadBlock = 4092

// Table row delimiters of the settings page.
const (
	KeyIntro    = "<tr><td>"
	KeyEnding   = "</td><td>"
	DescrIntro  = "</td><td>"
	ValueIntro  = "</td><td>"
	ValueEnding = "</td><td>"
)

// MaxShortIDLen is the longest device field id that is treated as a short code.
// Longer ids are localized descriptions and are searched for literally.
const MaxShortIDLen = 5

// Bounded finds key in text[start:end], then valueIntro after it, then
// valueEnding after that, and returns the text between valueIntro and
// valueEnding together with the position just after valueEnding.
//
// On any miss it returns a short diagnostic and start.
func Bounded(text string, start, end int, key, valueIntro, valueEnding string) (string, int) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return "search window empty", start
	}

	p := index(text, key, start, end)
	if p == -1 {
		return "key <" + key + "> not found", start
	}
	p += len(key)

	vs := index(text, valueIntro, p, end)
	if vs == -1 {
		return "value intro not found", start
	}
	vs += len(valueIntro)

	ve := index(text, valueEnding, vs, end)
	if ve == -1 {
		return "value ending not found", start
	}

	return text[vs:ve], ve + len(valueEnding)
}

// Param extracts the value of a settings page row. A short id such as "B32" is
// wrapped in the row key delimiters; a long id is a localized description and
// is used as the marker directly.
func Param(text string, start int, id string) (string, int) {
	return Bounded(text, start, start+ReadAheadBlock, Marker(id), ValueIntro, ValueEnding)
}

// Marker builds the search marker for a device field id. Any "#n"
// disambiguator of a short id is dropped; the position in the page tells
// repeated ids apart.
func Marker(id string) string {
	if IsShortID(id) {
		if i := strings.IndexByte(id, '#'); i != -1 {
			id = id[:i]
		}
		return KeyIntro + id + KeyEnding
	}
	return DescrIntro + id
}

// IsShortID reports whether id is a short device code rather than a description.
func IsShortID(id string) bool {
	return len(id) <= MaxShortIDLen
}

// Index returns the position of substr in text[start:end], or -1.
func Index(text, substr string, start, end int) int {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		return -1
	}
	return index(text, substr, start, end)
}

func index(text, substr string, start, end int) int {
	i := strings.Index(text[start:end], substr)
	if i == -1 {
		return -1
	}
	return start + i
}
