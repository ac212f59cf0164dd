package mcp

import (
	"strings"
	"unicode"
)

// cleanOutput removes frame-only rows from a snapshot, collapses runs of
// blank lines to two and trims leading/trailing blank lines.
func cleanOutput(raw string) string {
	lines := strings.Split(raw, "\n")
	var out []string
	blankCount := 0

	for _, line := range lines {
		if isChromeLine(line) {
			continue
		}
		line = strings.TrimRightFunc(stripChromeEdges(stripControlChars(line)), unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			blankCount++
			if blankCount <= 2 {
				out = append(out, "")
			}
			continue
		}
		blankCount = 0
		out = append(out, line)
	}

	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// isChromeLine returns true if a line consists entirely of box-drawing
// characters (plus whitespace) such as a frame's top or bottom edge.
func isChromeLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if !isChromeRune(r) {
			return false
		}
	}
	return true
}

// isChromeRune returns true for box-drawing and block elements.
func isChromeRune(r rune) bool {
	// Box Drawing: U+2500–U+257F
	if r >= 0x2500 && r <= 0x257F {
		return true
	}
	// Block Elements: U+2580–U+259F
	return r >= 0x2580 && r <= 0x259F
}

// stripChromeEdges blanks frame verticals so only window text remains.
func stripChromeEdges(line string) string {
	return strings.Map(func(r rune) rune {
		if isChromeRune(r) {
			return ' '
		}
		return r
	}, line)
}

// stripControlChars removes control characters from a line, preserving tabs.
func stripControlChars(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
