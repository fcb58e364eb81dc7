// Package markup parses the colour syntax used in exercise notes:
// *red*text*red*, *blue*text*blue* and *yellow*text*yellow*.
package markup

import "strings"

// Color of a span. The zero value is plain text.
type Color string

const (
	Plain  Color = ""
	Red    Color = "red"
	Blue   Color = "blue"
	Yellow Color = "yellow"
)

var colors = []Color{Red, Blue, Yellow}

// Span is a run of text with one colour.
type Span struct {
	Text  string
	Color Color
}

func marker(c Color) string {
	return "*" + string(c) + "*"
}

// Parse splits text into spans. A colour opens at its marker and closes at
// the next marker of the same colour; unmatched markers stay literal.
// Empty coloured runs are dropped.
func Parse(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	for len(text) > 0 {
		c, start, end := nextColoured(text)
		if c == Plain {
			plain.WriteString(text)
			break
		}
		plain.WriteString(text[:start])
		inner := text[start+len(marker(c)) : end]
		if inner != "" {
			flush()
			spans = append(spans, Span{Text: inner, Color: c})
		}
		text = text[end+len(marker(c)):]
	}
	flush()
	return spans
}

// nextColoured finds the earliest opening marker that has a matching
// closing marker. end is the index of the closing marker.
func nextColoured(text string) (Color, int, int) {
	best, bestStart, bestEnd := Plain, -1, -1
	for _, c := range colors {
		m := marker(c)
		start := strings.Index(text, m)
		if start < 0 {
			continue
		}
		rel := strings.Index(text[start+len(m):], m)
		if rel < 0 {
			continue
		}
		if bestStart < 0 || start < bestStart {
			best, bestStart, bestEnd = c, start, start+len(m)+rel
		}
	}
	return best, bestStart, bestEnd
}

// Strip returns the text with all matched colour markers removed.
func Strip(text string) string {
	var b strings.Builder
	for _, s := range Parse(text) {
		b.WriteString(s.Text)
	}
	return b.String()
}
