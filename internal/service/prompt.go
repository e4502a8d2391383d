package service

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"
)

const quizJSONInstructions = `Respond with ONLY this JSON format:
{
    "questions": [
        {
            "question": "Question text?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Why this answer is correct"
        }
    ]
}

The correct_answer should be the index (0-3) of the correct option.`

// quizSystemMessage pins the model to emitting a single JSON object.
const quizSystemMessage = "You are a JSON generator. You must respond with ONLY valid, " +
	"complete JSON. Never include explanatory text, markdown formatting, or any content " +
	"outside the JSON object. Ensure all JSON syntax is correct with proper quotes, " +
	"commas, and brackets."

// BuildQuizPrompt renders the plain generation prompt for a topic.
func BuildQuizPrompt(topic string) string {
	return fmt.Sprintf(`Create a multiple-choice quiz about %q with exactly 5 questions.

Each question should have 4 options (A, B, C, D) with only one correct answer.
Include an explanation for the correct answer.

%s`, topic, quizJSONInstructions)
}

// BuildEnhancedQuizPrompt renders the generation prompt enriched with
// encyclopedia context. An empty summary falls back to the plain prompt.
func BuildEnhancedQuizPrompt(topic string, summary *domain.ContextSummary) string {
	if summary.IsEmpty() {
		return BuildQuizPrompt(topic)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a multiple-choice quiz about %q with exactly 5 questions.\n\n", topic)

	if summary.Summary != "" {
		fmt.Fprintf(&sb, "Use the following factual context about the topic:\n%s\n\n", summary.Summary)
	}
	if len(summary.KeyFacts) > 0 {
		sb.WriteString("Key facts:\n")
		for _, fact := range summary.KeyFacts {
			fmt.Fprintf(&sb, "- %s\n", fact)
		}
		sb.WriteString("\n")
	}
	if len(summary.RelatedTopics) > 0 {
		fmt.Fprintf(&sb, "Related topics you may draw on: %s\n\n", strings.Join(summary.RelatedTopics, ", "))
	}

	sb.WriteString("Ground every question in the context above and vary the difficulty.\n")
	sb.WriteString("Each question should have 4 options (A, B, C, D) with only one correct answer.\n")
	sb.WriteString("Include an explanation for the correct answer.\n\n")
	sb.WriteString(quizJSONInstructions)
	return sb.String()
}
