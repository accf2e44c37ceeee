package layout

import "strings"

// ellipsis marks clipped content in the rendered output.
const ellipsis = "…"

// Wrap breaks text into lines no wider than maxWidth, measured with m.
//
// Explicit newlines are hard breaks: each paragraph wraps independently and
// empty paragraphs survive as empty lines. Within a paragraph the wrap is
// greedy: words accumulate onto the current line while the measured
// candidate still fits, and the first word that does not fit starts the
// next line. A single word wider than maxWidth is placed alone on its own
// line, never split and never dropped.
func Wrap(text string, maxWidth float64, font FontSpec, m Measurer) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth, font, m)...)
	}
	return lines
}

func wrapParagraph(s string, maxWidth float64, font FontSpec, m Measurer) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.TextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// TruncateToWidth shortens s so that it fits maxWidth with a trailing
// ellipsis marker. Returns s unchanged when it already fits. When even a
// single rune plus the marker is too wide, returns the marker alone so the
// clip stays visible.
func TruncateToWidth(s string, maxWidth float64, font FontSpec, m Measurer) string {
	if m.TextWidth(s, font) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if m.TextWidth(candidate, font) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}
