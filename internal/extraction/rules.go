package extraction

import (
	"regexp"

	"github.com/todmy/req-analyzer/pkg/models"
)

// PriorityRule maps a keyword pattern to a priority
type PriorityRule struct {
	Pattern  *regexp.Regexp
	Priority models.Priority
}

// TypeRule maps a keyword pattern to a requirement type
type TypeRule struct {
	Pattern *regexp.Regexp
	Type    models.RequirementType
}

// PriorityRules are evaluated in order; High is checked before Low.
var PriorityRules = []PriorityRule{
	{
		Pattern:  regexp.MustCompile(`(?i)\b(?:critical|highest|must|essential|mandatory|required|crucial|necessary)\b`),
		Priority: models.PriorityHigh,
	},
	{
		Pattern:  regexp.MustCompile(`(?i)\b(?:may|could|nice to have|optional|if possible|consider|future|enhancement)\b`),
		Priority: models.PriorityLow,
	},
}

// TypeRules are evaluated in precedence order; the first match wins.
var TypeRules = []TypeRule{
	{
		Pattern: regexp.MustCompile(`(?i)\b(?:functional(?:ity)?|functions?|features?|capabilit(?:y|ies)|ability to|allows?|enables?|provides?|supports?)\b`),
		Type:    models.TypeFunctional,
	},
	{
		Pattern: regexp.MustCompile(`(?i)\b(?:performance|performant|fast|faster|speed|response times?|latency|throughput|load|concurren(?:t|cy)|scalab(?:le|ility)|milliseconds?|seconds?|ms)\b`),
		Type:    models.TypePerformance,
	},
	{
		Pattern: regexp.MustCompile(`(?i)\b(?:security|secure|authenticat\w*|authoriz\w*|encrypt\w*|passwords?|permissions?|access control|privacy|credentials?|tokens?)\b`),
		Type:    models.TypeSecurity,
	},
	{
		Pattern: regexp.MustCompile(`(?i)\b(?:usability|usable|user[- ]friendly|intuitive|easy to use|accessib\w*|user interface|ui|ux|navigation|responsive design)\b`),
		Type:    models.TypeUsability,
	},
	{
		Pattern: regexp.MustCompile(`(?i)\b(?:reliab\w*|availability|available|uptime|recover\w*|backups?|fault[- ]tolerant|failover|redundan\w*|robust\w*|stability)\b`),
		Type:    models.TypeReliability,
	},
}

// ClassifyPriority returns the priority for a requirement's combined text.
func ClassifyPriority(text string) models.Priority {
	for _, rule := range PriorityRules {
		if rule.Pattern.MatchString(text) {
			return rule.Priority
		}
	}
	return models.PriorityMedium
}

// ClassifyType returns the requirement type for a requirement's combined text.
func ClassifyType(text string) models.RequirementType {
	for _, rule := range TypeRules {
		if rule.Pattern.MatchString(text) {
			return rule.Type
		}
	}
	return models.TypeFunctional
}
