package domain

// QuizSource identifies where a quiz was resolved from when scoring a
// submission: the durable store, or the in-memory snapshot cache kept as a
// fallback for quizzes whose persistence write failed. Callers type-switch on
// the concrete variant instead of probing for attributes.
type QuizSource interface {
	isQuizSource()
}

// StoredQuiz is a quiz loaded from the persistence gateway.
type StoredQuiz struct {
	ID        string
	Topic     string
	Questions []Question
}

func (StoredQuiz) isQuizSource() {}

// CachedQuiz is a quiz served from the snapshot cache.
type CachedQuiz struct {
	Snapshot *GeneratedQuiz
}

func (CachedQuiz) isQuizSource() {}
