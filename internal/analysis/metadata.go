package analysis

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/todmy/req-analyzer/internal/extraction"
	"github.com/todmy/req-analyzer/internal/keywords"
	"github.com/todmy/req-analyzer/pkg/models"
)

const (
	maxKeywords      = 10
	maxMetadataTitle = 100
)

// KeywordExtractor ranks the keywords of a text
type KeywordExtractor interface {
	Extract(text string, topK int) ([]string, error)
}

var (
	titleLabelPattern   = regexp.MustCompile(`(?im)^[ \t]*title[ \t]*:[ \t]*(.+)$`)
	titleHeadingPattern = regexp.MustCompile(`(?m)^[ \t]*#[ \t]+(.+)$`)
	authorPattern       = regexp.MustCompile(`(?im)^[ \t]*(?:authors?|prepared by|written by|by)[ \t]*:[ \t]*(.+)$`)
	dateLabelPattern    = regexp.MustCompile(`(?im)^[ \t]*(?:date|created|created on|last updated|updated|revised|revision date)[ \t]*:[ \t]*(.+)$`)
	dateTokenPattern    = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
	versionPattern      = regexp.MustCompile(`(?i)\b(?:version|v)[ \t]*:[ \t]*([0-9A-Za-z][0-9A-Za-z.\-]*)`)
)

// MetadataExtractor pulls title, author, date, version and keywords from text
type MetadataExtractor struct {
	keywords KeywordExtractor
	logger   *zap.Logger
}

// NewMetadataExtractor creates a metadata extractor. A nil keyword extractor
// uses the English keyword utility.
func NewMetadataExtractor(kw KeywordExtractor, logger *zap.Logger) *MetadataExtractor {
	if kw == nil {
		kw = keywords.NewExtractor(keywords.DefaultOptions())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetadataExtractor{keywords: kw, logger: logger}
}

// Extract returns the metadata found in text; missing fields stay empty.
func (m *MetadataExtractor) Extract(text string) models.DocumentMetadata {
	md := models.DocumentMetadata{
		Title:   firstGroup(text, titleLabelPattern, titleHeadingPattern),
		Author:  firstGroup(text, authorPattern),
		Date:    firstGroup(text, dateLabelPattern),
		Version: firstGroup(text, versionPattern),
	}

	if md.Title == "" {
		md.Title = extraction.Truncate(extraction.FirstSentence(text), maxMetadataTitle)
	}
	if md.Date == "" {
		md.Date = dateTokenPattern.FindString(text)
	}

	md.Keywords = m.extractKeywords(text)
	return md
}

func (m *MetadataExtractor) extractKeywords(text string) []string {
	kws, err := m.keywords.Extract(text, maxKeywords)
	if err != nil {
		m.logger.Debug("keyword extraction failed, counting manually", zap.Error(err))
		kws = keywords.CountFrequent(text, maxKeywords)
	}
	if kws == nil {
		kws = []string{}
	}
	return kws
}

func firstGroup(text string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
