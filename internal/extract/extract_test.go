package extract

import (
	"strings"
	"testing"

	. "github.com/karlseguin/expect"
)

type Tests struct{}

func Test_Extract(t *testing.T) {
	Expectify(new(Tests), t)
}

const row = `<tr><td>Software Version</td><td>1.2.3</td></tr>`

func (Tests) BoundedReturnsValueBetweenDelimiters() {
	v, next := Bounded(row, 0, len(row), "<tr><td>Software Version</td>", "<td>", "</td></tr>")
	Expect(v).ToEqual("1.2.3")
	Expect(next).ToEqual(len(row))
}

func (Tests) BoundedMissingKeyDoesNotAdvance() {
	_, next := Bounded(row, 3, len(row), "<tr><td>Regler Online</td>", "<td>", "h</td></tr>")
	Expect(next).ToEqual(3)
}

func (Tests) BoundedMissingIntroDoesNotAdvance() {
	_, next := Bounded(row, 0, len(row), "<tr><td>Software Version</td>", "<th>", "</td></tr>")
	Expect(next).ToEqual(0)
}

func (Tests) BoundedMissingEndingDoesNotAdvance() {
	_, next := Bounded(row, 0, len(row), "<tr><td>Software Version</td>", "<td>", "h</td></tr>")
	Expect(next).ToEqual(0)
}

func (Tests) BoundedRespectsWindow() {
	text := strings.Repeat("x", 100) + row
	_, next := Bounded(text, 0, 50, "<tr><td>Software Version</td>", "<td>", "</td></tr>")
	Expect(next).ToEqual(0)

	v, next := Bounded(text, 0, len(text)+500, "<tr><td>Software Version</td>", "<td>", "</td></tr>")
	Expect(v).ToEqual("1.2.3")
	Expect(next).ToEqual(len(text))
}

func (Tests) BoundedEmptyWindow() {
	_, next := Bounded(row, len(row)+10, len(row), "x", "y", "z")
	Expect(next).ToEqual(len(row) + 10)
}

func (Tests) ParseShortID() {
	text := `<tr><td>B32</td><td>Aussentemperatur</td><td>-3.4</td><td>°C</td></tr>`
	v, next := Param(text, 0, "B32")
	Expect(v).ToEqual("-3.4")
	Expect(next > 0).ToEqual(true)
}

func (Tests) ParseShortIDWithDisambiguator() {
	text := `<tr><td>M73</td><td>Pumpe</td><td>1</td><td></td></tr><tr><td>M73</td><td>Pumpe</td><td>55</td><td>%</td></tr>`
	v, next := Param(text, 0, "M73#1")
	Expect(v).ToEqual("1")
	v, _ = Param(text, next, "M73#2")
	Expect(v).ToEqual("55")
}

func (Tests) ParseLongID() {
	text := `<tr><td>x</td><td>board temperature</td><td>41.5</td><td>°C</td></tr>`
	v, _ := Param(text, 0, "board temperature")
	Expect(v).ToEqual("41.5")
}

func (Tests) Markers() {
	Expect(Marker("B32")).ToEqual("<tr><td>B32</td><td>")
	Expect(Marker("M73#3")).ToEqual("<tr><td>M73</td><td>")
	Expect(Marker("Subcooling")).ToEqual("</td><td>Subcooling")
	Expect(IsShortID("B78v")).ToEqual(true)
	Expect(IsShortID("AInOut 80-81")).ToEqual(false)
}

func (Tests) FieldQuotedAndBare() {
	text := `{"flow":{"hcmode":"1","temp_set":32.5},"hk":"A"}`
	v, next := Field(text, 0, len(text), "hcmode")
	Expect(v).ToEqual("1")
	v, next = Field(text, next, len(text), "temp_set")
	Expect(v).ToEqual("32.5")
	v, _ = Field(text, next, len(text), "hk")
	Expect(v).ToEqual("A")
}

func (Tests) FieldMissing() {
	text := `{"stages":1}`
	v, next := Field(text, 2, len(text), "sysmode")
	Expect(v).ToEqual("")
	Expect(next).ToEqual(2)
}

func (Tests) NumberSkipsSeparators() {
	text := `[[2025,812.3],[2026,98.7]]`
	year, pos := Number(text, 0, len(text))
	Expect(year).ToEqual("2025")
	v, pos := Number(text, pos, len(text))
	Expect(v).ToEqual("812.3")
	year, pos = Number(text, pos, len(text))
	Expect(year).ToEqual("2026")
	v, pos = Number(text, pos, len(text))
	Expect(v).ToEqual("98.7")
	v, _ = Number(text, pos, len(text))
	Expect(v).ToEqual("")
}
