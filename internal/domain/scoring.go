package domain

import (
	"fmt"
	"time"
)

// SubmissionResult holds the outcome of scoring a submission. Correct answers
// are snapshotted at submission time and never recomputed later. Immutable
// once constructed.
type SubmissionResult struct {
	QuizID         string
	Topic          string
	UserAnswers    []int
	CorrectAnswers []int
	Score          int
	TotalQuestions int
	Percentage     float64
	SubmittedAt    time.Time
	Feedback       []string
}

// ScoreSubmission compares userAnswers against the quiz questions in original
// order and produces a result with per-question feedback.
func ScoreSubmission(quizID, topic string, questions []Question, userAnswers []int) (*SubmissionResult, error) {
	if len(userAnswers) != len(questions) {
		return nil, NewAnswerCountMismatchError(len(questions), len(userAnswers))
	}

	correctAnswers := make([]int, len(questions))
	feedback := make([]string, len(questions))
	score := 0
	for i, q := range questions {
		correctAnswers[i] = q.CorrectAnswer
		if userAnswers[i] == q.CorrectAnswer {
			score++
			feedback[i] = fmt.Sprintf("Correct! %s", q.Explanation)
		} else {
			feedback[i] = fmt.Sprintf("Incorrect. The correct answer was option %c. %s",
				OptionLetter(q.CorrectAnswer), q.Explanation)
		}
	}

	total := len(questions)
	return &SubmissionResult{
		QuizID:         quizID,
		Topic:          topic,
		UserAnswers:    userAnswers,
		CorrectAnswers: correctAnswers,
		Score:          score,
		TotalQuestions: total,
		Percentage:     float64(score) / float64(total) * 100,
		SubmittedAt:    time.Now(),
		Feedback:       feedback,
	}, nil
}

// OptionLetter maps an option index to its display letter: 0 → 'A', 1 → 'B', …
func OptionLetter(index int) rune {
	return rune('A' + index)
}
