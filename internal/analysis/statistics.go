package analysis

import (
	"math"

	"github.com/todmy/req-analyzer/pkg/models"
)

// ComputeStatistics aggregates counts over categorized requirements.
func ComputeStatistics(c Categorized) models.Statistics {
	stats := models.Statistics{
		TotalRequirements: len(c.All),
		ByType:            make(map[string]int, len(c.ByType)),
		ByPriority:        make(map[string]int, len(c.ByPriority)),
	}

	for t, reqs := range c.ByType {
		stats.ByType[string(t)] = len(reqs)
	}
	for p, reqs := range c.ByPriority {
		stats.ByPriority[string(p)] = len(reqs)
	}

	for _, r := range c.All {
		stats.TotalDependencies += len(r.Dependencies)
	}

	stats.AverageDependencies = float64(stats.TotalDependencies) / float64(max(1, stats.TotalRequirements))
	stats.HighPriorityCount = len(c.ByPriority[models.PriorityHigh])
	stats.ComplexityScore = ComplexityScore(stats.TotalRequirements, stats.AverageDependencies, stats.HighPriorityCount)

	return stats
}

// ComplexityScore weighs requirement count, dependency density and the
// number of high priority requirements.
func ComplexityScore(total int, avgDependencies float64, highPriority int) int {
	return int(math.Round(0.6*float64(total) + 10*avgDependencies + 1.5*float64(highPriority)))
}
