// Package extraction turns raw document text into requirement records.
package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/todmy/req-analyzer/pkg/models"
)

const minTitleLength = 5

// strategy is one way of pulling (title, description) pairs out of a section
type strategy func(section string) []fragment

type fragment struct {
	title       string
	description string
}

var (
	numberedItemPattern  = regexp.MustCompile(`(?m)^[ \t]*(\d+[.)])[ \t]+([^\n]+)((?:\n[ \t]+[^\n]+)*)`)
	bulletedItemPattern  = regexp.MustCompile(`(?m)^[ \t]*([-*•+])[ \t]+([^\n]+)((?:\n[ \t]+[^\n]+)*)`)
	modalSentencePattern = regexp.MustCompile(`(?i)[^.!?\n]*\b(?:shall|should|must|will)\b[^.!?\n]*[.!?]?`)
)

// strategies are tried in order; the first that yields a usable fragment wins.
var strategies = []strategy{
	listItems(numberedItemPattern),
	listItems(bulletedItemPattern),
	modalSentences,
}

func listItems(pattern *regexp.Regexp) strategy {
	return func(section string) []fragment {
		var out []fragment
		for _, m := range pattern.FindAllStringSubmatch(section, -1) {
			title := strings.TrimSpace(m[2])
			desc := collapseSpace(m[3])
			if desc == "" {
				desc = title
			}
			out = append(out, fragment{title: title, description: desc})
		}
		return out
	}
}

func modalSentences(section string) []fragment {
	var out []fragment
	for _, m := range modalSentencePattern.FindAllString(section, -1) {
		s := strings.TrimSpace(m)
		out = append(out, fragment{title: s, description: s})
	}
	return out
}

// FormatID renders the n-th requirement id
func FormatID(n int) string {
	return fmt.Sprintf("REQ-%d", n)
}

// Extractor runs the full extraction over one document
type Extractor struct {
	document string
}

// NewExtractor creates an extractor for a document
func NewExtractor(document string) *Extractor {
	return &Extractor{document: normalizeNewlines(document)}
}

// Extract splits the document, keeps requirement-bearing sections and
// extracts requirements from each. Ids start at REQ-1 on every call.
func (e *Extractor) Extract() []models.Requirement {
	sections := FilterRequirementSections(SplitSections(e.document))
	if len(sections) == 0 && strings.TrimSpace(e.document) != "" {
		sections = []string{e.document}
	}

	requirements := []models.Requirement{}
	next := 1
	for _, section := range sections {
		var found []models.Requirement
		found, next = e.extractSection(section, next)
		requirements = append(requirements, found...)
	}
	return requirements
}

// extractSection extracts requirements from one section, numbering them from
// next, and returns the id to use after the last one.
func (e *Extractor) extractSection(section string, next int) ([]models.Requirement, int) {
	var out []models.Requirement
	for _, f := range sectionFragments(section) {
		out = append(out, e.newRequirement(FormatID(next), f))
		next++
	}
	return out, next
}

// sectionFragments treats a leading numbered item followed by more text as a
// heading. The text below it is extracted first; the heading only counts
// when the body yields nothing and the heading reads like a requirement.
func sectionFragments(section string) []fragment {
	loc := numberedItemPattern.FindStringIndex(section)
	if loc == nil || strings.TrimSpace(section[:loc[0]]) != "" {
		return runStrategies(section)
	}

	body := strings.TrimSpace(section[loc[1]:])
	if body == "" {
		return runStrategies(section)
	}
	if found := runStrategies(body); len(found) > 0 {
		return found
	}

	heading := section[loc[0]:loc[1]]
	if !HasRequirementKeyword(heading) && !modalPattern.MatchString(heading) {
		return nil
	}
	return runStrategies(heading)
}

// runStrategies returns the fragments of the first strategy with at least one
// title long enough to keep.
func runStrategies(text string) []fragment {
	for _, s := range strategies {
		var kept []fragment
		for _, f := range s(text) {
			if utf8.RuneCountInString(f.title) >= minTitleLength {
				kept = append(kept, f)
			}
		}
		if len(kept) > 0 {
			return kept
		}
	}
	return nil
}

func (e *Extractor) newRequirement(id string, f fragment) models.Requirement {
	text := f.title + " " + f.description
	return models.Requirement{
		ID:           id,
		Title:        Truncate(f.title, MaxTitleLength),
		Description:  f.description,
		Priority:     ClassifyPriority(text),
		Type:         ClassifyType(text),
		Source:       models.SourceDocumentAnalysis,
		Stakeholders: InferStakeholders(f.title, f.description, e.document),
		Dependencies: []models.Dependency{},
	}
}
