// Package keywords ranks the most frequent content words of a document.
package keywords

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/todmy/req-analyzer/internal/nlp"
)

// ErrUnsupportedLanguage is returned for any language without a stop-word table
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Options configures keyword extraction
type Options struct {
	Language          string
	RemoveDigits      bool
	ReturnChangedCase bool
	RemoveDuplicates  bool
	MinLength         int
}

// DefaultOptions returns the English configuration used for document metadata
func DefaultOptions() Options {
	return Options{
		Language:          "english",
		RemoveDigits:      true,
		ReturnChangedCase: true,
		RemoveDuplicates:  true,
		MinLength:         2,
	}
}

// Keyword represents a keyword with its occurrence count
type Keyword struct {
	Word  string
	Count int
}

// Extractor extracts keywords from text by stop-word filtering and frequency
type Extractor struct {
	opts      Options
	stopWords map[string]bool
}

// NewExtractor creates a new keyword extractor
func NewExtractor(opts Options) *Extractor {
	if opts.Language == "" {
		opts.Language = DefaultOptions().Language
	}
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultOptions().MinLength
	}

	return &Extractor{opts: opts, stopWords: nlp.StopWords}
}

// Extract returns up to topK keywords ordered by descending frequency,
// ties broken by first appearance.
func (e *Extractor) Extract(text string, topK int) ([]string, error) {
	if !strings.EqualFold(e.opts.Language, "english") {
		return nil, fmt.Errorf("extract keywords: %w: %s", ErrUnsupportedLanguage, e.opts.Language)
	}

	ranked := e.rank(e.tokenize(text))

	words := make([]string, 0, len(ranked))
	for _, kw := range ranked {
		words = append(words, kw.Word)
	}

	if topK > 0 && topK < len(words) {
		words = words[:topK]
	}

	return words, nil
}

func (e *Extractor) tokenize(text string) []string {
	if e.opts.ReturnChangedCase {
		text = strings.ToLower(text)
	}

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	result := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, "'")
		if e.opts.RemoveDigits {
			word = strings.Map(func(r rune) rune {
				if unicode.IsDigit(r) {
					return -1
				}
				return r
			}, word)
		}
		if len(word) < e.opts.MinLength || e.stopWords[strings.ToLower(word)] {
			continue
		}
		result = append(result, word)
	}

	return result
}

func (e *Extractor) rank(tokens []string) []Keyword {
	counts := make(map[string]int)
	var order []string
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	keywords := make([]Keyword, 0, len(order))
	for _, w := range order {
		if e.opts.RemoveDuplicates {
			keywords = append(keywords, Keyword{Word: w, Count: counts[w]})
			continue
		}
		for i := 0; i < counts[w]; i++ {
			keywords = append(keywords, Keyword{Word: w, Count: counts[w]})
		}
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	return keywords
}

// CountFrequent is the manual fallback used when extraction fails: words
// longer than three characters, counted and sorted by descending frequency.
func CountFrequent(text string, topK int) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range nlp.Words(text) {
		if len([]rune(w)) <= 3 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topK > 0 && topK < len(order) {
		order = order[:topK]
	}
	return order
}
