package testgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todmy/req-analyzer/pkg/models"
)

func TestForRequirement_EdgeAndNegative(t *testing.T) {
	r := models.Requirement{
		ID:          "REQ-1",
		Title:       "Item limit",
		Description: "User must enter a maximum of 10 items",
		Priority:    models.PriorityHigh,
	}

	tcs := NewGenerator().ForRequirement(r)
	require.Len(t, tcs, 3)

	functional, edge, negative := tcs[0], tcs[1], tcs[2]
	assert.Equal(t, "Verify Item limit", functional.Title)
	assert.Equal(t, models.PriorityHigh, functional.Priority)

	assert.Equal(t, models.PriorityMedium, edge.Priority)
	assert.Contains(t, edge.Steps, "maximum")

	assert.Equal(t, models.PriorityMedium, negative.Priority)
	assert.Equal(t, 5, len(strings.Split(negative.Steps, "\n")))

	for _, tc := range tcs {
		assert.Equal(t, "REQ-1", tc.RequirementID)
	}
}

func TestForRequirement_FunctionalOnly(t *testing.T) {
	r := models.Requirement{ID: "REQ-2", Title: "Nightly job", Description: "The job runs nightly", Priority: models.PriorityLow}

	tcs := NewGenerator().ForRequirement(r)
	require.Len(t, tcs, 1)
	assert.Equal(t, models.PriorityLow, tcs[0].Priority)
}

func TestForRequirement_PriorityFloor(t *testing.T) {
	r := models.Requirement{ID: "REQ-3", Title: "Form", Description: "Validate the form fields", Priority: models.PriorityLow}

	for _, tc := range NewGenerator().ForRequirement(r) {
		assert.Equal(t, models.PriorityLow, tc.Priority)
	}
}

func TestEdgeCaseSteps_Variants(t *testing.T) {
	assert.Contains(t, edgeCaseSteps("a minimum of 3 characters"), "minimum")
	assert.Contains(t, edgeCaseSteps("value length"), "Identify the input boundaries")
	assert.Contains(t, edgeCaseSteps("up to 5 files, at least one"), "maximum")
}

func TestGenerateTestSteps(t *testing.T) {
	steps := strings.Split(GenerateTestSteps("Users can log in with SSO"), "\n")

	require.Len(t, steps, 6)
	assert.Equal(t, "1. Set up the test environment and preconditions", steps[0])
	assert.Equal(t, "2. Navigate to the login page", steps[1])
	assert.Equal(t, "6. Confirm the outcome matches the requirement", steps[5])

	generic := strings.Split(GenerateTestSteps("The job runs nightly"), "\n")
	assert.Equal(t, "2. Navigate to the relevant feature", generic[1])
}

func TestGenerateTestSteps_FirstFamilyWins(t *testing.T) {
	// "delete" and "search" both match; delete is earlier in the table
	steps := GenerateTestSteps("Search for and delete stale records")
	assert.Contains(t, steps, "Confirm the deletion")
	assert.Equal(t, "The record is removed and no longer listed", GenerateExpectedResult("Search for and delete stale records"))
}

func TestRecommendAutomation(t *testing.T) {
	tests := []struct {
		name string
		tc   models.TestCase
		want string
	}{
		{
			name: "visual and conditional",
			tc:   models.TestCase{Steps: "1. Check layout\n2. If wide, compare"},
			want: RecommendManual,
		},
		{
			name: "visual via expected result",
			tc:   models.TestCase{Steps: "1. Open page", ExpectedResult: "Colors match the brand"},
			want: RecommendVisual,
		},
		{
			name: "short and unconditional",
			tc:   models.TestCase{Steps: "1. Call API\n2. Read response"},
			want: RecommendAutomated,
		},
		{
			name: "user interaction",
			tc:   models.TestCase{Steps: "1. Open page\n2. Click the save button\n3. Select an option\n4. Confirm"},
			want: RecommendUI,
		},
		{
			name: "data driven",
			tc: models.TestCase{
				Steps:       "1. Open page\n2. When ready click go\n3. Wait\n4. Done",
				Description: "Run against a CSV dataset",
			},
			want: RecommendDataDriven,
		},
		{
			name: "long procedure",
			tc:   models.TestCase{Steps: strings.TrimSuffix(strings.Repeat("If ready proceed\n", 11), "\n")},
			want: RecommendComplex,
		},
		{
			name: "fallback",
			tc:   models.TestCase{Steps: "1. Start\n2. Unless stopped continue\n3. Wait\n4. End"},
			want: RecommendCandidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendAutomation(tt.tc))
		})
	}
}

func TestGenerate_AnnotatesEveryTestCase(t *testing.T) {
	reqs := []models.Requirement{
		{ID: "REQ-1", Title: "Login", Description: "Users log in with a password", Priority: models.PriorityMedium},
		{ID: "REQ-2", Title: "Export", Description: "Export the invoice list", Priority: models.PriorityHigh},
	}

	tcs := NewGenerator().Generate(reqs)
	require.NotEmpty(t, tcs)
	for _, tc := range tcs {
		assert.NotEmpty(t, tc.AutomationRecommendation)
	}
	assert.Empty(t, NewGenerator().Generate(nil))
}

func TestMatchAction(t *testing.T) {
	tests := map[string]string{
		"Users can sign in with SSO":          "login",
		"Managers add new projects":           "create",
		"Admins can update user profiles":     "edit",
		"Remove archived invoices":            "delete",
		"Customers filter orders by date":     "search",
		"The dashboard shows the order total": "display",
		"Download the report as PDF":          "export",
		"Attach a scanned receipt":            "upload",
	}

	for description, want := range tests {
		t.Run(want, func(t *testing.T) {
			action := matchAction(description)
			require.NotNil(t, action)
			assert.Equal(t, want, action.name)
		})
	}

	assert.Nil(t, matchAction("The job runs nightly"))
}
