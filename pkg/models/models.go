package models

import (
	"encoding/json"
	"time"
)

// Priority is the importance of a requirement or test case
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority from highest to lowest
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Lower returns the priority one level down, never below Low
func (p Priority) Lower() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RequirementType is the category a requirement falls into
type RequirementType string

const (
	TypeFunctional  RequirementType = "Functional"
	TypePerformance RequirementType = "Performance"
	TypeSecurity    RequirementType = "Security"
	TypeUsability   RequirementType = "Usability"
	TypeReliability RequirementType = "Reliability"
)

// RequirementTypes lists every type in classification precedence order
var RequirementTypes = []RequirementType{
	TypeFunctional,
	TypePerformance,
	TypeSecurity,
	TypeUsability,
	TypeReliability,
}

// DependencyType describes how two requirements are linked
type DependencyType string

const (
	DependencyRelated    DependencyType = "related"
	DependencyDependsOn  DependencyType = "depends-on"
	DependencyReferences DependencyType = "references"
)

// SourceDocumentAnalysis marks requirements produced by the full NLP path
const SourceDocumentAnalysis = "Document Analysis"

// Dependency is a link from one requirement to another
type Dependency struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       DependencyType `json:"type"`
	Similarity *float64       `json:"similarity,omitempty"`
}

// Requirement is a discrete requirement extracted from a document.
// Source, Stakeholders and Dependencies are only populated on the NLP path;
// requirements with a Source always serialise both lists, empty or not.
type Requirement struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Priority     Priority        `json:"priority"`
	Type         RequirementType `json:"type"`
	Source       string          `json:"source,omitempty"`
	Stakeholders []string        `json:"stakeholders,omitempty"`
	Dependencies []Dependency    `json:"dependencies,omitempty"`
}

func (r Requirement) MarshalJSON() ([]byte, error) {
	type plain Requirement
	if r.Source == "" {
		return json.Marshal(plain(r))
	}

	stakeholders := r.Stakeholders
	if stakeholders == nil {
		stakeholders = []string{}
	}
	dependencies := r.Dependencies
	if dependencies == nil {
		dependencies = []Dependency{}
	}

	return json.Marshal(struct {
		plain
		Stakeholders []string     `json:"stakeholders"`
		Dependencies []Dependency `json:"dependencies"`
	}{plain(r), stakeholders, dependencies})
}

// Text returns title and description joined for keyword matching
func (r Requirement) Text() string {
	return r.Title + " " + r.Description
}

// TestCase is a candidate test synthesized for a requirement
type TestCase struct {
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	Priority                 Priority `json:"priority"`
	Steps                    string   `json:"steps"`
	ExpectedResult           string   `json:"expectedResult"`
	RequirementID            string   `json:"requirementId"`
	AutomationRecommendation string   `json:"automationRecommendation"`
}

// DocumentMetadata holds fields detected in the raw document text
type DocumentMetadata struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Version  string   `json:"version"`
	Keywords []string `json:"keywords"`
}

// Statistics aggregates counts over an analysis
type Statistics struct {
	TotalRequirements   int            `json:"totalRequirements"`
	ByType              map[string]int `json:"byType"`
	ByPriority          map[string]int `json:"byPriority"`
	TotalDependencies   int            `json:"totalDependencies"`
	AverageDependencies float64        `json:"averageDependencies"`
	HighPriorityCount   int            `json:"highPriorityCount"`
	ComplexityScore     int            `json:"complexityScore"`
}

// Analysis is the document-level output of the NLP path
type Analysis struct {
	DocumentMetadata DocumentMetadata    `json:"documentMetadata"`
	Statistics       Statistics          `json:"statistics"`
	ByType           map[string][]string `json:"byType"`
	ByPriority       map[string][]string `json:"byPriority"`
}

// ProcessingPath names the extractor that produced a result
type ProcessingPath string

const (
	PathNLP         ProcessingPath = "nlp"
	PathLightweight ProcessingPath = "lightweight"
)

// ResultMetadata describes a single pipeline run
type ResultMetadata struct {
	AnalysisID        string         `json:"analysisId"`
	FileName          string         `json:"fileName"`
	ProcessedDate     time.Time      `json:"processedDate"`
	ProcessingPath    ProcessingPath `json:"processingPath"`
	RequirementsCount int            `json:"requirementsCount"`
	TestCasesCount    int            `json:"testCasesCount"`
}

// Result is the response of one pipeline run
type Result struct {
	Requirements []Requirement  `json:"requirements"`
	TestCases    []TestCase     `json:"testCases"`
	Analysis     *Analysis      `json:"analysis,omitempty"`
	Metadata     ResultMetadata `json:"metadata"`
}
