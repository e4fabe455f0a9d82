// Package dependency links requirements that are lexically similar or that
// refer to each other explicitly.
package dependency

import (
	"regexp"
	"strings"

	"github.com/todmy/req-analyzer/internal/nlp"
	"github.com/todmy/req-analyzer/internal/similarity"
	"github.com/todmy/req-analyzer/pkg/models"
)

// Config holds linker configuration
type Config struct {
	// Threshold is the TF-IDF cosine similarity a pair must exceed
	Threshold float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Threshold: similarity.DefaultThreshold}
}

// Linker computes dependencies between requirements
type Linker struct {
	config Config
}

// NewLinker creates a new dependency linker
func NewLinker(config Config) *Linker {
	if config.Threshold <= 0 {
		config.Threshold = DefaultConfig().Threshold
	}
	return &Linker{config: config}
}

// Link returns a copy of requirements with Dependencies filled in. Explicit
// id references come first, then title references, then similar
// requirements; each target id appears at most once.
func (l *Linker) Link(requirements []models.Requirement) []models.Requirement {
	out := make([]models.Requirement, len(requirements))
	copy(out, requirements)
	if len(out) == 0 {
		return out
	}

	texts := make([]string, len(out))
	for i, r := range out {
		texts[i] = r.Text()
	}
	matrix := similarity.CosineSimilarityMatrix(nlp.NewCorpus(texts).Vectors())

	idPatterns := make([]*regexp.Regexp, len(out))
	for i, r := range out {
		idPatterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(r.ID) + `\b`)
	}

	for i := range out {
		var deps []models.Dependency
		text := texts[i]
		lower := strings.ToLower(text)

		for j, other := range out {
			if i == j || other.ID == out[i].ID {
				continue
			}
			if idPatterns[j].MatchString(text) {
				deps = append(deps, models.Dependency{ID: other.ID, Title: other.Title, Type: models.DependencyDependsOn})
			}
			if other.Title != "" && strings.Contains(lower, strings.ToLower(other.Title)) {
				deps = append(deps, models.Dependency{ID: other.ID, Title: other.Title, Type: models.DependencyReferences})
			}
		}

		for _, j := range similarity.Neighbors(matrix, i, l.config.Threshold) {
			if out[j].ID == out[i].ID {
				continue
			}
			sim := similarity.Round(matrix[i][j])
			deps = append(deps, models.Dependency{
				ID:         out[j].ID,
				Title:      out[j].Title,
				Type:       models.DependencyRelated,
				Similarity: &sim,
			})
		}

		out[i].Dependencies = Dedupe(deps)
	}

	return out
}

// Dedupe keeps the first dependency for each target id.
func Dedupe(deps []models.Dependency) []models.Dependency {
	seen := make(map[string]bool, len(deps))
	result := make([]models.Dependency, 0, len(deps))
	for _, d := range deps {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		result = append(result, d)
	}
	return result
}
