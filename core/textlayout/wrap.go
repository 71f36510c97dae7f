package textlayout

import "strings"

// Width in pixels of a string in some fixed font.
type MeasureFn func(s string) float64

// Greedy word wrap. Newlines always break; words accumulate on a line while it measures within maxWidth. A single word wider than maxWidth gets a line of its own. Runs of spaces collapse into one.
func Wrap(text string, maxWidth float64, measure MeasureFn) []string {
	lines := []string{}
	for _, para := range strings.Split(text, "\n") {
		lines = wrapParagraph(lines, para, maxWidth, measure)
	}
	return lines
}

func wrapParagraph(lines []string, para string, maxWidth float64, measure MeasureFn) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		test := line + " " + w
		if measure(test) <= maxWidth {
			line = test
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

//----------

type Line struct {
	Text  string
	X, Y  float64 // line top-left
	Width float64 // measured
}

// Wraps and positions lines: line i starts at y + i*lineHeight.
func Layout(text string, x, y, maxWidth, lineHeight float64, measure MeasureFn) []Line {
	u := Wrap(text, maxWidth, measure)
	lines := make([]Line, 0, len(u))
	for i, s := range u {
		lines = append(lines, Line{
			Text:  s,
			X:     x,
			Y:     y + float64(i)*lineHeight,
			Width: measure(s),
		})
	}
	return lines
}
