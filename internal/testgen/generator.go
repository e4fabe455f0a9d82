// Package testgen synthesizes candidate test cases for requirements and
// rates each one for automation.
package testgen

import (
	"regexp"

	"github.com/todmy/req-analyzer/pkg/models"
)

var (
	inputPattern      = regexp.MustCompile(`(?i)\b(?:inputs?|enter\w*|fields?|forms?|values?|data|parameters?|submit\w*|typ(?:e|es|ed|ing))\b`)
	maximumPattern    = regexp.MustCompile(`(?i)\b(?:maximum|max|limit\w*|at most|up to|exceed\w*|no more than)\b`)
	minimumPattern    = regexp.MustCompile(`(?i)\b(?:minimum|min|at least|no less than)\b`)
	thresholdPattern  = regexp.MustCompile(`(?i)\b(?:threshold\w*|range|boundar(?:y|ies)|length|size|characters?)\b`)
	validationPattern = regexp.MustCompile(`(?i)\b(?:valid\w*|invalid|verif\w*|check\w*|errors?|format\w*|required|constraints?|sanitiz\w*)\b`)
)

var (
	negativeSteps = []string{
		"Set up the test environment and preconditions",
		"Identify the valid input for the requirement",
		"Prepare invalid or unexpected input data",
		"Attempt to execute the functionality with the invalid input",
		"Verify the system rejects the input with an appropriate error message",
	}
	negativeExpected = "The system rejects the invalid input gracefully, reports a clear error and leaves data unchanged"
)

// Generator synthesizes test cases for requirements
type Generator struct{}

// NewGenerator creates a new test case generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the test cases for every requirement in order, each with
// its automation recommendation.
func (g *Generator) Generate(requirements []models.Requirement) []models.TestCase {
	testCases := []models.TestCase{}
	for _, r := range requirements {
		for _, tc := range g.ForRequirement(r) {
			tc.AutomationRecommendation = RecommendAutomation(tc)
			testCases = append(testCases, tc)
		}
	}
	return testCases
}

// ForRequirement returns the functional test and, when the description
// warrants them, an edge-case test and a negative test.
func (g *Generator) ForRequirement(r models.Requirement) []models.TestCase {
	functional := models.TestCase{
		Title:          "Verify " + r.Title,
		Description:    "Verify that the system satisfies the requirement: " + r.Description,
		Priority:       r.Priority,
		Steps:          GenerateTestSteps(r.Description),
		ExpectedResult: GenerateExpectedResult(r.Description),
		RequirementID:  r.ID,
	}
	out := []models.TestCase{functional}

	if NeedsEdgeCase(r.Description) {
		out = append(out, models.TestCase{
			Title:          "Edge Case: " + r.Title,
			Description:    "Verify behavior at the boundaries of: " + r.Description,
			Priority:       functional.Priority.Lower(),
			Steps:          edgeCaseSteps(r.Description),
			ExpectedResult: "The system handles boundary values correctly without errors or data loss",
			RequirementID:  r.ID,
		})
	}

	if NeedsNegative(r.Description) {
		out = append(out, models.TestCase{
			Title:          "Negative Test: " + r.Title,
			Description:    "Verify that invalid input is rejected for: " + r.Description,
			Priority:       functional.Priority.Lower(),
			Steps:          numberSteps(negativeSteps),
			ExpectedResult: negativeExpected,
			RequirementID:  r.ID,
		})
	}

	return out
}

// NeedsEdgeCase reports whether a description mentions input or limits.
func NeedsEdgeCase(description string) bool {
	return inputPattern.MatchString(description) ||
		maximumPattern.MatchString(description) ||
		minimumPattern.MatchString(description) ||
		thresholdPattern.MatchString(description)
}

// NeedsNegative reports whether a description mentions validation or input.
func NeedsNegative(description string) bool {
	return validationPattern.MatchString(description) || inputPattern.MatchString(description)
}

func edgeCaseSteps(description string) string {
	steps := []string{"Set up the test environment and preconditions"}
	switch {
	case maximumPattern.MatchString(description):
		steps = append(steps,
			"Identify the maximum allowed value or limit",
			"Test with a value exactly at the maximum",
			"Test with a value just above the maximum",
			"Verify the maximum is accepted and the value above it is rejected",
		)
	case minimumPattern.MatchString(description):
		steps = append(steps,
			"Identify the minimum allowed value or limit",
			"Test with a value exactly at the minimum",
			"Test with a value just below the minimum",
			"Verify the minimum is accepted and the value below it is rejected",
		)
	default:
		steps = append(steps,
			"Identify the input boundaries",
			"Test with empty and minimal input",
			"Test with extremely large input",
			"Verify the system handles each boundary gracefully",
		)
	}
	return numberSteps(steps)
}
