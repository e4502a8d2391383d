package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringQuestions() []Question {
	return []Question{
		{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Explanation: "E1"},
		{Question: "Q2?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Explanation: "E2"},
		{Question: "Q3?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3, Explanation: "E3"},
	}
}

func TestScoreSubmission_AllCorrect(t *testing.T) {
	result, err := ScoreSubmission("quiz-1", "Math", scoringQuestions(), []int{0, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 100.0, result.Percentage)
	for _, fb := range result.Feedback {
		assert.True(t, strings.HasPrefix(fb, "Correct!"))
	}
}

func TestScoreSubmission_Mixed(t *testing.T) {
	result, err := ScoreSubmission("quiz-1", "Math", scoringQuestions(), []int{0, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.InDelta(t, 200.0/3.0, result.Percentage, 0.0001)
	assert.True(t, strings.HasPrefix(result.Feedback[0], "Correct!"))
	assert.Equal(t, "Incorrect. The correct answer was option B. E2", result.Feedback[1])
	assert.True(t, strings.HasPrefix(result.Feedback[2], "Correct!"))
}

func TestScoreSubmission_SnapshotsCorrectAnswers(t *testing.T) {
	result, err := ScoreSubmission("quiz-1", "Math", scoringQuestions(), []int{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, result.CorrectAnswers)
	assert.Equal(t, []int{1, 1, 1}, result.UserAnswers)
	assert.Equal(t, "quiz-1", result.QuizID)
	assert.Equal(t, "Math", result.Topic)
	assert.False(t, result.SubmittedAt.IsZero())
}

func TestScoreSubmission_AnswerCountMismatch(t *testing.T) {
	_, err := ScoreSubmission("quiz-1", "Math", scoringQuestions(), []int{0, 1})
	assertDomainErrorCode(t, err, CodeAnswerCountMismatch)

	_, err = ScoreSubmission("quiz-1", "Math", scoringQuestions(), []int{0, 1, 2, 3})
	assertDomainErrorCode(t, err, CodeAnswerCountMismatch)
}

func TestScoreSubmission_FeedbackCoversWholeOptionRange(t *testing.T) {
	questions := []Question{
		{Question: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3, Explanation: "E"},
	}
	result, err := ScoreSubmission("quiz-1", "Math", questions, []int{0})
	require.NoError(t, err)
	assert.Equal(t, "Incorrect. The correct answer was option D. E", result.Feedback[0])
}

func TestOptionLetter(t *testing.T) {
	assert.Equal(t, 'A', OptionLetter(0))
	assert.Equal(t, 'B', OptionLetter(1))
	assert.Equal(t, 'C', OptionLetter(2))
	assert.Equal(t, 'D', OptionLetter(3))
}
