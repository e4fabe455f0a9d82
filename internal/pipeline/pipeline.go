// Package pipeline turns a plain-text document into requirements and
// candidate test cases.
package pipeline

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/todmy/req-analyzer/internal/analysis"
	"github.com/todmy/req-analyzer/internal/dependency"
	"github.com/todmy/req-analyzer/internal/extraction"
	"github.com/todmy/req-analyzer/internal/similarity"
	"github.com/todmy/req-analyzer/internal/testgen"
	"github.com/todmy/req-analyzer/pkg/models"
)

// Config holds pipeline configuration
type Config struct {
	// LightweightThreshold is the largest document, in characters, handled
	// by the lightweight extractor
	LightweightThreshold int
	// SimilarityThreshold is the TF-IDF similarity a related pair must exceed
	SimilarityThreshold float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		LightweightThreshold: 1000,
		SimilarityThreshold:  similarity.DefaultThreshold,
	}
}

// Processor runs the document pipeline
type Processor interface {
	Process(text, fileName string) (*models.Result, error)
}

// Service is the default Processor
type Service struct {
	config    Config
	linker    *dependency.Linker
	metadata  *analysis.MetadataExtractor
	generator *testgen.Generator
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new pipeline service
func NewService(config Config, logger *zap.Logger) *Service {
	if config.LightweightThreshold <= 0 {
		config.LightweightThreshold = DefaultConfig().LightweightThreshold
	}
	if config.SimilarityThreshold <= 0 {
		config.SimilarityThreshold = DefaultConfig().SimilarityThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		config:    config,
		linker:    dependency.NewLinker(dependency.Config{Threshold: config.SimilarityThreshold}),
		metadata:  analysis.NewMetadataExtractor(nil, logger),
		generator: testgen.NewGenerator(),
		logger:    logger,
		now:       time.Now,
	}
}

// Process analyzes a document. Short documents go through the lightweight
// extractor, longer ones through the full NLP path. A failure in any stage
// fails the whole run.
func (s *Service) Process(text, fileName string) (result *models.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to process document: %v", r)
		}
	}()

	result = s.analyze(text)
	Stamp(result, fileName, s.now())

	s.logger.Debug("document processed",
		zap.String("file", fileName),
		zap.String("path", string(result.Metadata.ProcessingPath)),
		zap.Int("requirements", len(result.Requirements)),
		zap.Int("test_cases", len(result.TestCases)),
	)

	return result, nil
}

func (s *Service) analyze(text string) *models.Result {
	result := &models.Result{}

	if utf8.RuneCountInString(text) <= s.config.LightweightThreshold {
		result.Requirements = extraction.ExtractLightweight(text)
		result.Metadata.ProcessingPath = models.PathLightweight
	} else {
		requirements := s.linker.Link(extraction.NewExtractor(text).Extract())
		categorized := analysis.Categorize(requirements)

		result.Requirements = requirements
		result.Analysis = &models.Analysis{
			DocumentMetadata: s.metadata.Extract(text),
			Statistics:       analysis.ComputeStatistics(categorized),
			ByType:           analysis.IDs(categorized.ByType),
			ByPriority:       analysis.IDs(categorized.ByPriority),
		}
		result.Metadata.ProcessingPath = models.PathNLP
	}

	result.TestCases = s.generator.Generate(result.Requirements)
	return result
}

// Stamp fills in the per-run metadata of a result.
func Stamp(result *models.Result, fileName string, at time.Time) {
	result.Metadata.AnalysisID = uuid.New().String()
	result.Metadata.FileName = fileName
	result.Metadata.ProcessedDate = at.UTC()
	result.Metadata.RequirementsCount = len(result.Requirements)
	result.Metadata.TestCasesCount = len(result.TestCases)
}
