// Package nlp holds the text primitives used to compare requirements:
// word tokenization, stemming and TF-IDF vectors.
package nlp

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Words splits text into lowercase alphanumeric words.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Tokenize returns the stemmed, stop-word-free tokens of text.
func Tokenize(text string) []string {
	words := Words(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 || StopWords[w] {
			continue
		}
		tokens = append(tokens, Stem(w))
	}
	return tokens
}

// Stem reduces a lowercase word to its Porter2 stem.
func Stem(word string) string {
	return english.Stem(word, false)
}
