package extract

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses a raw narrative into a single-line canonical string:
// carriage returns become newlines, every whitespace run becomes one space,
// and leading/trailing whitespace is trimmed. Total over any input.
func Normalize(text string) string {
	t := strings.ReplaceAll(text, "\r", "\n")
	t = whitespaceRun.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
