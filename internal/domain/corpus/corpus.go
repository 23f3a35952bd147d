// Package corpus turns seeker profiles and job postings into the normalized
// token bags the similarity engine scores.
package corpus

import (
	"strings"
	"unicode"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"
)

// Document is a whitespace-free, lowercased token sequence. An empty document
// is valid and scores zero against everything.
type Document []string

func (d Document) Empty() bool {
	return len(d) == 0
}

// Tokenize splits text into lowercased tokens on non-alphanumeric boundaries.
func Tokenize(text string) Document {
	var out Document
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			out = append(out, word.String())
			word.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// FromSeeker builds the document for a seeker profile: skill tokens followed
// by the free-text experience and education fields.
func FromSeeker(p seeker.Profile) Document {
	parts := make([]string, 0, len(p.Skills)+2)
	parts = append(parts, p.Skills...)
	parts = append(parts, p.Experience, p.Education)
	return Tokenize(strings.Join(parts, " "))
}

// FromJob builds the document for a job posting: required-skill tokens
// followed by the free-text description.
func FromJob(j job.Posting) Document {
	parts := make([]string, 0, len(j.SkillsRequired)+1)
	parts = append(parts, j.SkillsRequired...)
	parts = append(parts, j.Description)
	return Tokenize(strings.Join(parts, " "))
}
