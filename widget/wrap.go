package widget

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// wrapText breaks s into lines no wider than width by turning spaces into
// newlines. The result has the same rune count as s, so a revealed prefix of
// the source maps onto the same prefix of the wrapped text.
func wrapText(s string, width float64, measure func(string) float64) string {
	if width <= 0 {
		return s
	}

	out := []byte(s)
	lineStart := 0
	lastSpace := -1
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case '\n':
			lineStart = i + 1
			lastSpace = -1
			continue
		case ' ':
			if measure(string(out[lineStart:i])) > width && lastSpace >= 0 {
				out[lastSpace] = '\n'
				lineStart = lastSpace + 1
			}
			lastSpace = i
		}
	}
	if lastSpace >= 0 && measure(string(out[lineStart:])) > width {
		out[lastSpace] = '\n'
	}
	return string(out)
}

func faceMeasure(face text.Face) func(string) float64 {
	return func(s string) float64 {
		return text.Advance(s, face)
	}
}

// revealPrefix returns the first n runes of s.
func revealPrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func optionLabel(text string, selected bool) string {
	text = strings.TrimSpace(text)
	if selected {
		return "> " + text
	}
	return "  " + text
}
