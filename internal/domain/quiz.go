package domain

import (
	"fmt"
	"strings"
	"time"
)

// OptionsPerQuestion is the required option count for every question. The
// correct-answer index must fall in [0, OptionsPerQuestion).
const OptionsPerQuestion = 4

// blockedTopics is checked as a case-insensitive substring match against the
// requested topic.
var blockedTopics = []string{
	"vagina", "nipple", "sphincter", "feces", "penis", "breast",
	"sexual", "porn", "nude", "explicit", "nsfw", "adult",
}

// Question is a single multiple-choice question.
type Question struct {
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// GeneratedQuiz is a quiz produced by the generation pipeline. QuizID is
// assigned by the service before persistence; when the persistence write
// fails the quiz still lives on in the snapshot cache under that id.
type GeneratedQuiz struct {
	QuizID            string
	Topic             string
	Questions         []Question
	GeneratedAt       time.Time
	WikipediaContext  *ContextSummary
	WikipediaEnhanced bool
}

// ValidateTopic rejects empty and block-listed topics.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return NewInvalidInputError("Topic is required")
	}
	lower := strings.ToLower(topic)
	for _, blocked := range blockedTopics {
		if strings.Contains(lower, blocked) {
			return NewInappropriateTopicError()
		}
	}
	return nil
}

// AssembleQuiz validates the object parsed from the model's reply and builds a
// GeneratedQuiz. The topic is always the caller's original topic, never text
// from an enhanced prompt, and GeneratedAt is stamped here, not at persistence.
// The mapping is structural: question, options, correct_answer and explanation
// values survive unchanged.
func AssembleQuiz(topic string, parsed map[string]interface{}) (*GeneratedQuiz, error) {
	if err := ValidateTopic(topic); err != nil {
		return nil, err
	}

	rawQuestions, ok := parsed["questions"]
	if !ok {
		return nil, NewInvalidShapeError("Invalid quiz structure: missing 'questions' field")
	}
	list, ok := rawQuestions.([]interface{})
	if !ok {
		return nil, NewInvalidShapeError("Invalid quiz structure: 'questions' is not a list")
	}
	if len(list) == 0 {
		return nil, NewInvalidShapeError("Invalid quiz structure: 'questions' is empty")
	}

	questions := make([]Question, 0, len(list))
	for i, entry := range list {
		q, err := assembleQuestion(i, entry)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return &GeneratedQuiz{
		Topic:       topic,
		Questions:   questions,
		GeneratedAt: time.Now(),
	}, nil
}

func assembleQuestion(index int, entry interface{}) (Question, error) {
	obj, ok := entry.(map[string]interface{})
	if !ok {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d", index))
	}
	for _, key := range []string{"question", "options", "correct_answer", "explanation"} {
		if _, present := obj[key]; !present {
			return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: missing %q", index, key))
		}
	}

	text, ok := obj["question"].(string)
	if !ok {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: 'question' is not a string", index))
	}
	explanation, ok := obj["explanation"].(string)
	if !ok {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: 'explanation' is not a string", index))
	}

	rawOptions, ok := obj["options"].([]interface{})
	if !ok {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: 'options' is not a list", index))
	}
	if len(rawOptions) != OptionsPerQuestion {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: expected %d options, got %d", index, OptionsPerQuestion, len(rawOptions)))
	}
	options := make([]string, 0, OptionsPerQuestion)
	for _, o := range rawOptions {
		s, ok := o.(string)
		if !ok {
			return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: option is not a string", index))
		}
		options = append(options, s)
	}

	rawAnswer, ok := obj["correct_answer"].(float64)
	if !ok {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: 'correct_answer' is not a number", index))
	}
	answer := int(rawAnswer)
	if float64(answer) != rawAnswer || answer < 0 || answer >= OptionsPerQuestion {
		return Question{}, NewInvalidShapeError(fmt.Sprintf("Invalid question format at index %d: 'correct_answer' must be an index 0-%d", index, OptionsPerQuestion-1))
	}

	return Question{
		Question:      text,
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   explanation,
	}, nil
}
