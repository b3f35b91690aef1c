// Package quiz holds the knowledge-check questions shown between gameplay
// bursts: the question record, answer checking, the question file loader
// and the built-in fallback set.
package quiz

import (
	"fmt"
	"strings"
)

// Question is a single quiz record.
type Question struct {
	ID     string `yaml:"id" json:"id"`
	Text   string `yaml:"text" json:"text"`
	Answer string `yaml:"answer" json:"answer"`
}

// Check reports whether input matches the expected answer. Leading and
// trailing whitespace is ignored; case and inner whitespace are not.
func (q Question) Check(input string) bool {
	return strings.TrimSpace(input) == q.Answer
}

func (q Question) complete() bool {
	return q.ID != "" && q.Text != "" && q.Answer != ""
}

// Rand is the random source used to pick questions. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Source supplies questions to the game.
type Source interface {
	Count() int
	Random(rng Rand) Question
}

// Set is an immutable, non-empty question collection.
type Set struct {
	questions []Question
}

// NewSet builds a set from records, skipping incomplete ones.
// An empty result falls back to the built-in set.
func NewSet(questions []Question) *Set {
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.complete() {
			kept = append(kept, q)
		}
	}
	if len(kept) == 0 {
		return Fallback()
	}
	return &Set{questions: kept}
}

// FallbackCount is the size of the built-in question set.
const FallbackCount = 20

// FallbackAnswer is the answer to every built-in question.
const FallbackAnswer = "abc123"

// Fallback returns the deterministic built-in set used when no question
// file is available.
func Fallback() *Set {
	qs := make([]Question, FallbackCount)
	for i := range qs {
		id := fmt.Sprintf("Q%d", i+1)
		qs[i] = Question{ID: id, Text: id, Answer: FallbackAnswer}
	}
	return &Set{questions: qs}
}

// Count returns the number of questions.
func (s *Set) Count() int {
	return len(s.questions)
}

// Random picks a question uniformly using rng.
func (s *Set) Random(rng Rand) Question {
	return s.questions[rng.Intn(len(s.questions))]
}

// All returns a copy of the questions in file order.
func (s *Set) All() []Question {
	return append([]Question(nil), s.questions...)
}
