package testgen

import (
	"regexp"
	"strings"

	"github.com/todmy/req-analyzer/pkg/models"
)

const (
	RecommendManual     = "Manual Testing Recommended"
	RecommendVisual     = "Visual Automation Recommended"
	RecommendAutomated  = "Automation Recommended"
	RecommendUI         = "UI Automation Recommended"
	RecommendDataDriven = "Data-Driven Automation Recommended"
	RecommendComplex    = "Complex Automation Required"
	RecommendCandidate  = "Automation Candidate"
)

var (
	conditionalPattern = regexp.MustCompile(`(?i)\b(?:if|when|unless|otherwise|else|depending|conditions?|conditional|whether|either)\b`)
	interactionPattern = regexp.MustCompile(`(?i)\b(?:click\w*|select\w*|type|typing|enter|navigate|scroll\w*|drag\w*|drop|hover\w*|press\w*|tap\w*|button|form|submit\w*)\b`)
	visualPattern      = regexp.MustCompile(`(?i)\b(?:visual\w*|layout|appearance|colou?rs?|screenshots?|images?|render\w*|fonts?|alignment|pixels?|look and feel|styl\w*)\b`)
	dataDrivenPattern  = regexp.MustCompile(`(?i)\b(?:data ?sets?|multiple inputs|various|different values|combinations?|csv|data table|parameteri[sz]ed|range of|each of)\b`)
)

// Factors are the complexity signals of a test case
type Factors struct {
	StepCount      int
	HasConditional bool
	HasInteraction bool
	HasVisual      bool
	IsDataDriven   bool
}

// AnalyzeFactors computes the complexity signals of a test case.
func AnalyzeFactors(tc models.TestCase) Factors {
	return Factors{
		StepCount:      countSteps(tc.Steps),
		HasConditional: conditionalPattern.MatchString(tc.Steps),
		HasInteraction: interactionPattern.MatchString(tc.Steps),
		HasVisual:      visualPattern.MatchString(tc.Steps) || visualPattern.MatchString(tc.ExpectedResult),
		IsDataDriven:   dataDrivenPattern.MatchString(tc.Steps) || dataDrivenPattern.MatchString(tc.Description),
	}
}

func countSteps(steps string) int {
	steps = strings.TrimSpace(steps)
	if steps == "" {
		return 0
	}
	return strings.Count(steps, "\n") + 1
}

// AutomationRule maps a predicate over factors to a recommendation
type AutomationRule struct {
	Matches        func(Factors) bool
	Recommendation string
}

// AutomationRules are evaluated in order; the first match wins.
var AutomationRules = []AutomationRule{
	{func(f Factors) bool { return f.HasVisual && f.HasConditional }, RecommendManual},
	{func(f Factors) bool { return f.HasVisual }, RecommendVisual},
	{func(f Factors) bool { return f.StepCount <= 3 && !f.HasConditional }, RecommendAutomated},
	{func(f Factors) bool { return f.HasInteraction && !f.HasConditional }, RecommendUI},
	{func(f Factors) bool { return f.IsDataDriven }, RecommendDataDriven},
	{func(f Factors) bool { return f.StepCount > 10 }, RecommendComplex},
}

// RecommendAutomation classifies how suitable a test case is for automation.
func RecommendAutomation(tc models.TestCase) string {
	f := AnalyzeFactors(tc)
	for _, rule := range AutomationRules {
		if rule.Matches(f) {
			return rule.Recommendation
		}
	}
	return RecommendCandidate
}
