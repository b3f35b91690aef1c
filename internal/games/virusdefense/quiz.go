package virusdefense

import (
	"unicode"

	"github.com/vovakirdan/virus-defense/internal/quiz"
)

// QuizPhase is the state of the quiz interruption.
type QuizPhase int

const (
	QuizIdle QuizPhase = iota
	QuizAwaitingAnswer
	QuizShowingResult
)

func (p QuizPhase) String() string {
	switch p {
	case QuizIdle:
		return "idle"
	case QuizAwaitingAnswer:
		return "awaiting_answer"
	case QuizShowingResult:
		return "showing_result"
	default:
		return "unknown"
	}
}

// QuizController runs one question at a time:
// Idle -> AwaitingAnswer -> ShowingResult -> Idle.
// It knows nothing about timers or lives; the engine acts on its results.
type QuizController struct {
	Phase    QuizPhase
	Question quiz.Question
	Input    string
	Correct  bool

	Asked    int
	Answered int
	Right    int
}

// Begin shows q. It does nothing unless the controller is idle.
func (c *QuizController) Begin(q quiz.Question) bool {
	if c.Phase != QuizIdle {
		return false
	}
	c.Phase = QuizAwaitingAnswer
	c.Question = q
	c.Input = ""
	c.Correct = false
	c.Asked++
	return true
}

// AppendChar adds a letter, digit or whitespace rune to the answer.
func (c *QuizController) AppendChar(r rune) bool {
	if c.Phase != QuizAwaitingAnswer {
		return false
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
		return false
	}
	c.Input += string(r)
	return true
}

// Backspace removes the last rune of the answer.
func (c *QuizController) Backspace() bool {
	if c.Phase != QuizAwaitingAnswer || c.Input == "" {
		return false
	}
	runes := []rune(c.Input)
	c.Input = string(runes[:len(runes)-1])
	return true
}

// Submit checks the typed answer and moves to ShowingResult.
// ok is false when no answer was awaited.
func (c *QuizController) Submit() (correct, ok bool) {
	if c.Phase != QuizAwaitingAnswer {
		return false, false
	}
	c.Correct = c.Question.Check(c.Input)
	c.Phase = QuizShowingResult
	c.Answered++
	if c.Correct {
		c.Right++
	}
	return c.Correct, true
}

// Finish ends the result display.
func (c *QuizController) Finish() bool {
	if c.Phase != QuizShowingResult {
		return false
	}
	c.clear()
	return true
}

// ForceIdle abandons any outstanding question.
func (c *QuizController) ForceIdle() {
	c.clear()
}

func (c *QuizController) clear() {
	c.Phase = QuizIdle
	c.Question = quiz.Question{}
	c.Input = ""
}
