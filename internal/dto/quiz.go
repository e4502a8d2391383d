package dto

import "time"

// QuizRequest is the body of POST /quiz/generate.
// @Description Quiz generation request
type QuizRequest struct {
	Topic             string   `json:"topic"`
	Model             string   `json:"model,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	WikipediaEnhanced bool     `json:"wikipediaEnhanced,omitempty"`
	EnhancedPrompt    string   `json:"enhancedPrompt,omitempty"`
}

// QuizQuestion is one question in a generated quiz.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// WikipediaContext is the enrichment context attached to an enhanced quiz.
type WikipediaContext struct {
	Articles      []ArticleResponse `json:"articles"`
	KeyFacts      []string          `json:"key_facts"`
	RelatedTopics []string          `json:"related_topics"`
	Summary       string            `json:"summary"`
}

// QuizResponse is the body returned by POST /quiz/generate.
// @Description Generated quiz
type QuizResponse struct {
	QuizID            string            `json:"quiz_id,omitempty"`
	Topic             string            `json:"topic"`
	Questions         []QuizQuestion    `json:"questions"`
	GeneratedAt       string            `json:"generated_at"`
	WikipediaContext  *WikipediaContext `json:"wikipedia_context,omitempty"`
	WikipediaEnhanced bool              `json:"wikipedia_enhanced"`
}

// QuizSubmission is the body of POST /quiz/submit. Answers are ordered to
// match the original question order.
type QuizSubmission struct {
	QuizID  string `json:"quiz_id"`
	Answers []int  `json:"answers"`
}

// QuizResult is the scored outcome of a submission.
// @Description Scored quiz submission
type QuizResult struct {
	QuizID         string   `json:"quiz_id"`
	Topic          string   `json:"topic"`
	UserAnswers    []int    `json:"user_answers"`
	CorrectAnswers []int    `json:"correct_answers"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"total_questions"`
	Percentage     float64  `json:"percentage"`
	SubmittedAt    string   `json:"submitted_at"`
	Feedback       []string `json:"feedback"`
}

// QuizResultsResponse is the body of GET /quiz/results.
type QuizResultsResponse struct {
	Results []QuizResult `json:"results"`
	Total   int          `json:"total"`
}

// QuizHistory is one row of GET /quiz/history.
type QuizHistory struct {
	ID                string    `json:"id"`
	Topic             string    `json:"topic"`
	Model             string    `json:"model,omitempty"`
	Temperature       float64   `json:"temperature"`
	CreatedAt         time.Time `json:"created_at"`
	QuestionCount     int       `json:"question_count"`
	SubmissionCount   int       `json:"submission_count"`
	AverageScore      *float64  `json:"average_score,omitempty"`
	WikipediaEnhanced bool      `json:"wikipediaEnhanced"`
}

// QuizDetailQuestion is one question row in GET /quiz/history/{id}.
type QuizDetailQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	QuestionOrder int      `json:"question_order"`
}

// QuizDetailSubmission is one submission row in GET /quiz/history/{id}.
type QuizDetailSubmission struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// QuizDetail is the body of GET /quiz/history/{id}.
type QuizDetail struct {
	ID               string                 `json:"id"`
	Topic            string                 `json:"topic"`
	Model            string                 `json:"model,omitempty"`
	Temperature      float64                `json:"temperature"`
	CreatedAt        time.Time              `json:"created_at"`
	Questions        []QuizDetailQuestion   `json:"questions"`
	Submissions      []QuizDetailSubmission `json:"submissions"`
	TotalSubmissions int                    `json:"total_submissions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
