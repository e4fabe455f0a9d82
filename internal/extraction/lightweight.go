package extraction

import (
	"strings"

	"github.com/todmy/req-analyzer/pkg/models"
)

// ExtractLightweight is the short-document extractor: every paragraph with a
// requirement keyword or a list marker becomes exactly one requirement titled
// by its first sentence. No stakeholders or dependencies are inferred.
func ExtractLightweight(document string) []models.Requirement {
	requirements := []models.Requirement{}
	next := 1

	for _, p := range SplitParagraphs(document) {
		if !HasRequirementKeyword(p) && !numberedLinePattern.MatchString(p) && !bulletedLinePattern.MatchString(p) {
			continue
		}

		body := strings.TrimSpace(StripListMarker(p))
		title := FirstSentence(body)
		if title == "" {
			continue
		}

		text := title + " " + body
		requirements = append(requirements, models.Requirement{
			ID:          FormatID(next),
			Title:       Truncate(title, MaxTitleLength),
			Description: body,
			Priority:    ClassifyPriority(text),
			Type:        ClassifyType(text),
		})
		next++
	}

	return requirements
}
