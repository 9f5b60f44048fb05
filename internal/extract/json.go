package extract

// Field finds `"name":` in text[start:end] and returns its value, which may be
// quoted or bare. A bare value ends at the next ',', '}' or ']'.
func Field(text string, start, end int, name string) (string, int) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return "", start
	}

	key := `"` + name + `":`
	p := index(text, key, start, end)
	if p == -1 {
		return "", start
	}
	p += len(key)
	for p < end && text[p] == ' ' {
		p++
	}
	if p >= end {
		return "", start
	}

	if text[p] == '"' {
		p++
		q := index(text, `"`, p, end)
		if q == -1 {
			return "", start
		}
		return text[p:q], q + 1
	}

	q := p
	for q < end && text[q] != ',' && text[q] != '}' && text[q] != ']' {
		q++
	}
	if q == p {
		return "", start
	}
	return text[p:q], q
}

// Number skips list separators (',', '[', ']', '"' and blanks) starting at pos
// and then reads digits and '.' only. It returns the number text and the
// position after it. An empty result means no number was found before end.
func Number(text string, pos, end int) (string, int) {
	if end > len(text) {
		end = len(text)
	}
	for pos < end && isSeparator(text[pos]) {
		pos++
	}
	s := pos
	for pos < end && isNumeric(text[pos]) {
		pos++
	}
	return text[s:pos], pos
}

func isSeparator(c byte) bool {
	switch c {
	case ',', '[', ']', '"', ' ', '\n', '\r', '\t':
		return true
	}
	return false
}

func isNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}
