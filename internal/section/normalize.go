// Package section provides text normalization and generic section location
// for resume documents.
package section

import (
	"regexp"
	"strings"
)

var (
	excessBlankLines = regexp.MustCompile(`\n{4,}`)
	newlineRuns      = regexp.MustCompile(`\n+`)
)

// Normalize canonicalizes line endings and collapses runs of more than two
// consecutive blank lines down to two. Paragraph breaks survive so that
// downstream blank-line heuristics still work.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return excessBlankLines.ReplaceAllString(text, "\n\n\n")
}

// CollapseNewlines removes blank lines entirely, joining the text into
// single-newline-separated lines. The experience pipeline works on this
// denser view.
func CollapseNewlines(text string) string {
	return strings.TrimSpace(newlineRuns.ReplaceAllString(text, "\n"))
}

// Lines splits text on newlines without dropping blank lines.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
