package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength bounds requirement titles, ellipsis included.
const MaxTitleLength = 70

var (
	sentenceEndPattern = regexp.MustCompile(`[.!?](?:\s|$)`)
	listMarkerPattern  = regexp.MustCompile(`^[ \t]*(?:\d+[.)]|[-*•+])[ \t]+`)
	spacePattern       = regexp.MustCompile(`\s+`)
)

// Truncate shortens s to at most max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max-3])) + "..."
}

// FirstSentence returns the first sentence of the first line of text.
func FirstSentence(text string) string {
	line := strings.TrimSpace(text)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if loc := sentenceEndPattern.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]+1])
	}
	return line
}

// Sentences splits text into trimmed sentences.
func Sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start : loc[0]+1]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StripListMarker removes a leading numbered or bulleted list marker.
func StripListMarker(text string) string {
	return listMarkerPattern.ReplaceAllString(text, "")
}

func collapseSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
