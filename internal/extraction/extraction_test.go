package extraction

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todmy/req-analyzer/pkg/models"
)

func TestSplitSections_Headers(t *testing.T) {
	doc := "Intro text\n# Overview\nSome words.\n## Login\nThe system must allow login.\n"

	sections := SplitSections(doc)
	require.Len(t, sections, 3)
	assert.Equal(t, "Intro text", sections[0])
	assert.True(t, strings.HasPrefix(sections[1], "# Overview"))
	assert.True(t, strings.HasPrefix(sections[2], "## Login"))
}

func TestSplitSections_ParagraphFallback(t *testing.T) {
	doc := "first paragraph\n\n\n  \nsecond paragraph\r\n\r\nthird"

	assert.Equal(t, []string{"first paragraph", "second paragraph", "third"}, SplitSections(doc))
}

func TestSplitSections_SingleHeaderIsNotEnough(t *testing.T) {
	doc := "# Only heading\nbody line"

	assert.Equal(t, []string{"# Only heading\nbody line"}, SplitSections(doc))
}

func TestSplitSections_Empty(t *testing.T) {
	assert.Empty(t, SplitSections("   \n\n  "))
}

func TestFilterRequirementSections(t *testing.T) {
	sections := []string{
		"Background about the company.",
		"The system shall export reports.",
		"- bullet item here",
		"1) numbered entry",
		"This Feature list",
	}

	got := FilterRequirementSections(sections)
	assert.Equal(t, sections[1:], got)
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		text string
		want models.Priority
	}{
		{"The system must log in users", models.PriorityHigh},
		{"This is a critical path", models.PriorityHigh},
		{"Users may export data", models.PriorityLow},
		{"A nice to have dark mode", models.PriorityLow},
		{"It is required but optional in future", models.PriorityHigh},
		{"The system should show errors", models.PriorityMedium},
		{"mustard colored buttons", models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.text))
		})
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		text string
		want models.RequirementType
	}{
		{"Pages load within 2 seconds", models.TypePerformance},
		{"Passwords are encrypted at rest", models.TypeSecurity},
		{"The interface is intuitive", models.TypeUsability},
		{"Nightly backups are taken", models.TypeReliability},
		{"The feature supports fast encryption", models.TypeFunctional},
		{"Something unrelated", models.TypeFunctional},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyType(tt.text))
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 100)

	got := Truncate(long, MaxTitleLength)
	assert.Equal(t, MaxTitleLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, "short", Truncate("short", MaxTitleLength))
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "First one.", FirstSentence("First one. Second one."))
	assert.Equal(t, "no punctuation", FirstSentence("no punctuation\nnext line"))
	assert.Equal(t, "Version 1.2 is out.", FirstSentence("Version 1.2 is out. Next"))
}

func TestInferStakeholders_Local(t *testing.T) {
	got := InferStakeholders("Admins can reset passwords", "Users and managers are notified", "")
	assert.ElementsMatch(t, []string{"Admins", "Users", "Managers"}, got)
}

func TestInferStakeholders_DocumentFallback(t *testing.T) {
	doc := "Reports are reviewed by auditors weekly. Nothing else here."

	got := InferStakeholders("Generate reports", "Generate reports", doc)
	assert.Equal(t, []string{"Auditors"}, got)
}

func TestInferStakeholders_NoneFound(t *testing.T) {
	got := InferStakeholders("Generate reports", "Generate reports", "Unrelated text.")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractor_NumberedList(t *testing.T) {
	doc := "Requirements\n\n" +
		"1. The system must allow users to log in\n" +
		"   using their corporate credentials.\n" +
		"2. The system should export reports as CSV.\n" +
		"3. Tiny\n"

	reqs := NewExtractor(doc).Extract()
	require.Len(t, reqs, 2)

	assert.Equal(t, "REQ-1", reqs[0].ID)
	assert.Equal(t, "The system must allow users to log in", reqs[0].Title)
	assert.Equal(t, "using their corporate credentials.", reqs[0].Description)
	assert.Equal(t, models.PriorityHigh, reqs[0].Priority)
	assert.Equal(t, models.SourceDocumentAnalysis, reqs[0].Source)
	assert.Contains(t, reqs[0].Stakeholders, "Users")

	assert.Equal(t, "REQ-2", reqs[1].ID)
	assert.Equal(t, reqs[1].Title, reqs[1].Description)
}

func TestExtractor_ModalSentences(t *testing.T) {
	doc := "Overview of the platform. The portal shall send reminders daily. It looks nice."

	reqs := NewExtractor(doc).Extract()
	require.Len(t, reqs, 1)
	assert.Equal(t, "The portal shall send reminders daily.", reqs[0].Title)
}

const headedDocument = "1. Introduction\n" +
	"This document describes the customer portal.\n\n" +
	"2. Login\n" +
	"The system must allow users to log in with a password.\n" +
	"The system shall lock an account after five failed attempts.\n\n" +
	"3. Reports\n" +
	"The system should export monthly reports as CSV.\n" +
	"The portal will display a summary dashboard."

func TestExtractor_ModalSentencesUnderNumberedHeadings(t *testing.T) {
	reqs := NewExtractor(headedDocument).Extract()
	require.Len(t, reqs, 4)

	titles := make([]string, len(reqs))
	for i, r := range reqs {
		titles[i] = r.Title
		assert.Equal(t, FormatID(i+1), r.ID)
	}
	assert.Equal(t, []string{
		"The system must allow users to log in with a password.",
		"The system shall lock an account after five failed attempts.",
		"The system should export monthly reports as CSV.",
		"The portal will display a summary dashboard.",
	}, titles)
	assert.Equal(t, models.PriorityHigh, reqs[0].Priority)
}

func TestExtractor_NumberedHeadingKeptWhenBodyHasNone(t *testing.T) {
	doc := "1. Users must be able to reset passwords\nSee the appendix for details.\n\n2. Tiny\nNothing here."

	reqs := NewExtractor(doc).Extract()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Users must be able to reset passwords", reqs[0].Title)
}

func TestExtractor_FreshIDsPerCall(t *testing.T) {
	doc := "- The system must do the first thing\n- The system must do the second thing"
	e := NewExtractor(doc)

	first := e.Extract()
	second := e.Extract()
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestExtractor_TitleBound(t *testing.T) {
	doc := "- The system must " + strings.Repeat("really ", 30) + "work"

	reqs := NewExtractor(doc).Extract()
	require.Len(t, reqs, 1)
	assert.LessOrEqual(t, utf8.RuneCountInString(reqs[0].Title), MaxTitleLength)
	assert.Contains(t, reqs[0].Description, "work")
}

func TestExtractLightweight_ScenarioA(t *testing.T) {
	doc := "1. The system must allow users to log in.\n\n2. The system should display an error for invalid credentials."

	reqs := ExtractLightweight(doc)
	require.Len(t, reqs, 2)

	assert.Equal(t, "REQ-1", reqs[0].ID)
	assert.Equal(t, "The system must allow users to log in.", reqs[0].Title)
	assert.Equal(t, models.PriorityHigh, reqs[0].Priority)
	assert.Equal(t, models.PriorityMedium, reqs[1].Priority)

	for _, r := range reqs {
		assert.Empty(t, r.Source)
		assert.Nil(t, r.Stakeholders)
		assert.Nil(t, r.Dependencies)
	}
}

func TestExtractLightweight_SkipsPlainParagraphs(t *testing.T) {
	reqs := ExtractLightweight("Just a note about lunch.\n\nAnother remark.")
	assert.Empty(t, reqs)
	assert.NotNil(t, reqs)
}
