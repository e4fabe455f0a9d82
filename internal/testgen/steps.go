package testgen

import (
	"fmt"
	"regexp"
	"strings"
)

// actionTemplate is the step and expectation table for one kind of action
type actionTemplate struct {
	name     string
	pattern  *regexp.Regexp
	steps    []string
	expected string
}

// actionTemplates are matched against the requirement description in order.
var actionTemplates = []actionTemplate{
	{
		name:    "login",
		pattern: regexp.MustCompile(`(?i)\b(?:log ?in|login|sign ?in|authenticat\w*)\b`),
		steps: []string{
			"Navigate to the login page",
			"Enter valid username and password",
			"Click the login button",
		},
		expected: "User is authenticated and redirected to the landing page",
	},
	{
		name:    "create",
		pattern: regexp.MustCompile(`(?i)\b(?:creat\w*|add\w*|register\w*|new)\b`),
		steps: []string{
			"Navigate to the creation form",
			"Fill in all required fields with valid data",
			"Submit the form",
		},
		expected: "The new record is created and shown with the entered data",
	},
	{
		name:    "edit",
		pattern: regexp.MustCompile(`(?i)\b(?:edit\w*|updat\w*|modif\w*|chang\w*)\b`),
		steps: []string{
			"Open an existing record",
			"Change one or more fields",
			"Save the changes",
		},
		expected: "The record is updated and the changes are persisted",
	},
	{
		name:    "delete",
		pattern: regexp.MustCompile(`(?i)\b(?:delet\w*|remov\w*)\b`),
		steps: []string{
			"Open an existing record",
			"Choose the delete action",
			"Confirm the deletion",
		},
		expected: "The record is removed and no longer listed",
	},
	{
		name:    "search",
		pattern: regexp.MustCompile(`(?i)\b(?:search\w*|find\w*|filter\w*|quer(?:y|ies))\b`),
		steps: []string{
			"Open the search interface",
			"Enter search criteria",
			"Run the search",
		},
		expected: "Matching results are returned and non-matching items are excluded",
	},
	{
		name:    "display",
		pattern: regexp.MustCompile(`(?i)\b(?:display\w*|show\w*|view\w*|list\w*)\b`),
		steps: []string{
			"Navigate to the relevant page",
			"Load the content to be shown",
		},
		expected: "The expected information is presented completely and accurately",
	},
	{
		name:    "export",
		pattern: regexp.MustCompile(`(?i)\b(?:export\w*|download\w*|report\w*)\b`),
		steps: []string{
			"Open the data to be exported",
			"Choose the export format",
			"Start the export",
		},
		expected: "A file in the chosen format is produced with the correct data",
	},
	{
		name:    "upload",
		pattern: regexp.MustCompile(`(?i)\b(?:upload\w*|import\w*|attach\w*)\b`),
		steps: []string{
			"Open the upload dialog",
			"Choose a valid file",
			"Confirm the upload",
		},
		expected: "The file is accepted and its content is available in the system",
	},
}

var (
	genericSteps = []string{
		"Navigate to the relevant feature",
		"Perform the action described in the requirement",
		"Observe the system behavior",
	}
	genericExpected = "The system behaves as described in the requirement"

	setupStep   = "Set up the test environment and preconditions"
	verifySteps = []string{
		"Verify the system response",
		"Confirm the outcome matches the requirement",
	}
)

func matchAction(description string) *actionTemplate {
	for i := range actionTemplates {
		if actionTemplates[i].pattern.MatchString(description) {
			return &actionTemplates[i]
		}
	}
	return nil
}

// GenerateTestSteps builds the numbered procedure for a functional test.
func GenerateTestSteps(description string) string {
	steps := []string{setupStep}
	if t := matchAction(description); t != nil {
		steps = append(steps, t.steps...)
	} else {
		steps = append(steps, genericSteps...)
	}
	steps = append(steps, verifySteps...)
	return numberSteps(steps)
}

// GenerateExpectedResult picks the expected outcome for a functional test.
func GenerateExpectedResult(description string) string {
	if t := matchAction(description); t != nil {
		return t.expected
	}
	return genericExpected
}

func numberSteps(steps []string) string {
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(lines, "\n")
}
