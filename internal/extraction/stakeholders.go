package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/todmy/req-analyzer/internal/nlp"
)

// stakeholderPatterns are the role families: end users, engineering and QA,
// business and governance.
var stakeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:end[- ]users?|users?|customers?|clients?|visitors?|members?|guests?|buyers?|subscribers?|patients?|students?)\b`),
	regexp.MustCompile(`(?i)\b(?:developers?|engineers?|testers?|qa|administrators?|admins?|operators?|devops|architects?|support staff)\b`),
	regexp.MustCompile(`(?i)\b(?:managers?|stakeholders?|product owners?|business analysts?|analysts?|executives?|auditors?|compliance officers?|regulators?|sponsors?|owners?)\b`),
}

// InferStakeholders finds the roles a requirement concerns. When the
// requirement names none itself, sentences of the source document that share
// a title word longer than three characters are searched instead.
func InferStakeholders(title, description, document string) []string {
	found := newStakeholderSet()
	found.addMatches(title + " " + description)
	if len(found.list) > 0 {
		return found.list
	}

	var titleWords []string
	for _, w := range nlp.Words(title) {
		if utf8.RuneCountInString(w) > 3 {
			titleWords = append(titleWords, w)
		}
	}
	if len(titleWords) == 0 {
		return found.list
	}

	for _, sentence := range Sentences(document) {
		lower := strings.ToLower(sentence)
		for _, w := range titleWords {
			if strings.Contains(lower, w) {
				found.addMatches(sentence)
				break
			}
		}
	}

	return found.list
}

type stakeholderSet struct {
	seen map[string]bool
	list []string
}

func newStakeholderSet() *stakeholderSet {
	return &stakeholderSet{seen: make(map[string]bool), list: []string{}}
}

func (s *stakeholderSet) addMatches(text string) {
	for _, p := range stakeholderPatterns {
		for _, m := range p.FindAllString(text, -1) {
			role := capitalize(m)
			if !s.seen[role] {
				s.seen[role] = true
				s.list = append(s.list, role)
			}
		}
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(strings.ToLower(s))
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s)[size:]
}
