package nlp

import (
	"math"
	"sort"
)

// Corpus is a set of tokenized documents with document frequencies
// computed once, so that any document can be turned into a TF-IDF vector
// over the shared vocabulary.
type Corpus struct {
	docs  [][]string
	df    map[string]int
	vocab []string
	index map[string]int
}

// NewCorpus tokenizes texts and builds the vocabulary.
func NewCorpus(texts []string) *Corpus {
	c := &Corpus{
		docs:  make([][]string, len(texts)),
		df:    make(map[string]int),
		index: make(map[string]int),
	}

	for i, text := range texts {
		c.docs[i] = Tokenize(text)
		seen := make(map[string]bool)
		for _, term := range c.docs[i] {
			if !seen[term] {
				c.df[term]++
				seen[term] = true
			}
		}
	}

	for term := range c.df {
		c.vocab = append(c.vocab, term)
	}
	sort.Strings(c.vocab)
	for i, term := range c.vocab {
		c.index[term] = i
	}

	return c
}

// Len returns the number of documents in the corpus
func (c *Corpus) Len() int {
	return len(c.docs)
}

// IDF returns the smoothed inverse document frequency of a term.
// It is always positive, so terms shared by every document still count.
func (c *Corpus) IDF(term string) float64 {
	n := float64(len(c.docs))
	return math.Log((1+n)/(1+float64(c.df[term]))) + 1
}

// Vector returns the TF-IDF vector of document i over the corpus vocabulary.
// TF is the term count normalized by document length.
func (c *Corpus) Vector(i int) []float64 {
	vec := make([]float64, len(c.vocab))
	doc := c.docs[i]
	if len(doc) == 0 {
		return vec
	}

	tf := make(map[string]int)
	for _, term := range doc {
		tf[term]++
	}
	for term, count := range tf {
		vec[c.index[term]] = float64(count) / float64(len(doc)) * c.IDF(term)
	}

	return vec
}

// Vectors returns the TF-IDF vector of every document.
func (c *Corpus) Vectors() [][]float64 {
	vectors := make([][]float64, len(c.docs))
	for i := range c.docs {
		vectors[i] = c.Vector(i)
	}
	return vectors
}
