package extraction

import (
	"regexp"
	"strings"
)

var (
	// headerPattern matches numbered headers, "Label:" headers, [Tag] headers
	// and markdown headings at the start of a line.
	headerPattern = regexp.MustCompile(`(?m)^[ \t]*(?:\d+\.[ \t]+|[A-Z][A-Za-z0-9 ]{0,40}:|\[[^\]\n]+\]|#{1,3}[ \t]+)`)

	blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)
)

// SplitSections breaks a document into ordered sections. When at least two
// headers are found the document is split at each header; otherwise it is
// split on blank lines. Text before the first header is kept as its own
// section when not blank.
func SplitSections(text string) []string {
	text = normalizeNewlines(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	matches := headerPattern.FindAllStringIndex(text, -1)
	if len(matches) >= 2 {
		var sections []string
		if pre := strings.TrimSpace(text[:matches[0][0]]); pre != "" {
			sections = append(sections, pre)
		}
		for i, m := range matches {
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			if section := strings.TrimSpace(text[m[0]:end]); section != "" {
				sections = append(sections, section)
			}
		}
		return sections
	}

	if paragraphs := SplitParagraphs(text); len(paragraphs) > 0 {
		return paragraphs
	}
	return []string{strings.TrimSpace(text)}
}

// SplitParagraphs splits text on blank lines, discarding empty paragraphs.
func SplitParagraphs(text string) []string {
	text = normalizeNewlines(text)

	var paragraphs []string
	for _, p := range blankLinePattern.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
