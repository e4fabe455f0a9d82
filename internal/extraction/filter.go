package extraction

import (
	"regexp"
	"strings"
)

// requirementKeywords are matched as case-insensitive substrings
var requirementKeywords = []string{
	"requirement",
	"feature",
	"specification",
	"functional",
	"user story",
	"use case",
	"acceptance criteria",
	"capability",
	"must",
	"shall",
	"should",
	"will",
	"needs to",
	"need to",
	"able to",
}

var (
	numberedLinePattern = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+\S`)
	bulletedLinePattern = regexp.MustCompile(`(?m)^[ \t]*[-*•+][ \t]+\S`)
	modalPattern        = regexp.MustCompile(`(?i)\b(?:shall|should|must|will)\b`)
)

// HasRequirementKeyword reports whether text mentions any requirement keyword
func HasRequirementKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range requirementKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsRequirementSection reports whether a section is likely to carry
// requirements: a keyword, a numbered or bulleted list, or a modal statement.
func IsRequirementSection(section string) bool {
	return HasRequirementKeyword(section) ||
		numberedLinePattern.MatchString(section) ||
		bulletedLinePattern.MatchString(section) ||
		modalPattern.MatchString(section)
}

// FilterRequirementSections keeps requirement-bearing sections in order.
func FilterRequirementSections(sections []string) []string {
	var kept []string
	for _, s := range sections {
		if IsRequirementSection(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
