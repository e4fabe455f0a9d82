// Package analysis groups extracted requirements and derives document-level
// metadata and statistics.
package analysis

import (
	"github.com/todmy/req-analyzer/pkg/models"
)

// Categorized groups requirements by type and priority
type Categorized struct {
	All        []models.Requirement
	ByType     map[models.RequirementType][]models.Requirement
	ByPriority map[models.Priority][]models.Requirement
}

// Categorize buckets requirements. Every type and priority has a bucket,
// even when empty.
func Categorize(requirements []models.Requirement) Categorized {
	c := Categorized{
		All:        requirements,
		ByType:     make(map[models.RequirementType][]models.Requirement, len(models.RequirementTypes)),
		ByPriority: make(map[models.Priority][]models.Requirement, len(models.Priorities)),
	}
	for _, t := range models.RequirementTypes {
		c.ByType[t] = []models.Requirement{}
	}
	for _, p := range models.Priorities {
		c.ByPriority[p] = []models.Requirement{}
	}

	for _, r := range requirements {
		c.ByType[r.Type] = append(c.ByType[r.Type], r)
		c.ByPriority[r.Priority] = append(c.ByPriority[r.Priority], r)
	}

	return c
}

// IDs returns the requirement ids of each bucket, keyed by bucket name
func IDs[K ~string](buckets map[K][]models.Requirement) map[string][]string {
	out := make(map[string][]string, len(buckets))
	for k, reqs := range buckets {
		ids := make([]string, 0, len(reqs))
		for _, r := range reqs {
			ids = append(ids, r.ID)
		}
		out[string(k)] = ids
	}
	return out
}
