package service

import (
	"context"
	"encoding/json"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

const defaultResultsLimit = 50

// AnonymousUserID attributes submissions made without an authenticated user.
const AnonymousUserID = "anonymous"

// QuizService drives quiz generation, submission scoring and history.
type QuizService interface {
	Generate(ctx context.Context, req dto.QuizRequest, forceModel string) (*dto.QuizResponse, error)
	Submit(ctx context.Context, submission dto.QuizSubmission, userID string) (*dto.QuizResult, error)
	GetResults(ctx context.Context) (*dto.QuizResultsResponse, error)
	GetHistory(ctx context.Context, skip, limit int) ([]dto.QuizHistory, error)
	GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetail, error)
}

type quizService struct {
	completion     domain.CompletionClient
	gatherer       ContextGatherer
	quizRepo       repository.QuizRepository
	submissionRepo repository.SubmissionRepository
	quizCache      QuizCacheService
}

// NewQuizService wires the generation pipeline together.
func NewQuizService(
	completion domain.CompletionClient,
	gatherer ContextGatherer,
	quizRepo repository.QuizRepository,
	submissionRepo repository.SubmissionRepository,
	quizCache QuizCacheService,
) QuizService {
	return &quizService{
		completion:     completion,
		gatherer:       gatherer,
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
		quizCache:      quizCache,
	}
}

// Generate runs the full pipeline: validate the topic, optionally gather
// encyclopedia context, ask the model for questions, validate its reply and
// persist the result. A failed persistence write is logged, not surfaced; the
// quiz gets a fresh id and lives on in the snapshot cache.
func (s *quizService) Generate(ctx context.Context, req dto.QuizRequest, forceModel string) (*dto.QuizResponse, error) {
	if err := domain.ValidateTopic(req.Topic); err != nil {
		return nil, err
	}

	var summary *domain.ContextSummary
	if req.WikipediaEnhanced {
		summary = s.gatherer.GatherContext(ctx, req.Topic)
	}

	prompt := BuildQuizPrompt(req.Topic)
	switch {
	case req.WikipediaEnhanced && req.EnhancedPrompt != "":
		prompt = req.EnhancedPrompt
	case req.WikipediaEnhanced:
		prompt = BuildEnhancedQuizPrompt(req.Topic, summary)
	}

	model := req.Model
	if forceModel != "" {
		model = forceModel
	}
	// Resolve the default up front so the persisted metadata matches the
	// temperature actually used for the completion call. An explicit zero
	// falls back too; the client would substitute its default anyway.
	temperature := s.completion.DefaultTemperature()
	if req.Temperature != nil && *req.Temperature != 0 {
		temperature = *req.Temperature
	}

	result, err := s.completion.Complete(ctx, domain.CompletionRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: quizSystemMessage},
			{Role: domain.RoleUser, Content: prompt},
		},
		Model:       model,
		Temperature: temperature,
	})
	if err != nil {
		return nil, domain.NewUpstreamFailureError(err)
	}

	raw, err := util.ExtractJSONObject(result.Content)
	if err != nil {
		return nil, domain.NewMalformedResponseError(err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, domain.NewMalformedResponseError(err)
	}

	quiz, err := domain.AssembleQuiz(req.Topic, parsed)
	if err != nil {
		return nil, err
	}
	quiz.QuizID = util.NewULID()
	quiz.WikipediaEnhanced = req.WikipediaEnhanced
	if !summary.IsEmpty() {
		quiz.WikipediaContext = summary
	}

	if err := s.persistQuiz(ctx, quiz, result.Model, temperature); err != nil {
		// The quiz is still served; the snapshot cache covers submissions.
		logger.Get().Error("failed to persist quiz, serving from cache only",
			zap.String("quiz_id", quiz.QuizID),
			zap.String("topic", quiz.Topic),
			zap.Error(err))
	}

	if err := s.quizCache.SetSnapshot(ctx, quiz); err != nil {
		logger.Get().Warn("failed to cache quiz snapshot",
			zap.String("quiz_id", quiz.QuizID), zap.Error(err))
	}

	logger.Get().Info("quiz generated",
		zap.String("quiz_id", quiz.QuizID),
		zap.String("topic", quiz.Topic),
		zap.String("model", result.Model),
		zap.Int("questions", len(quiz.Questions)))

	return quizResponse(quiz), nil
}

func (s *quizService) persistQuiz(ctx context.Context, quiz *domain.GeneratedQuiz, model string, temperature float64) error {
	record := &models.Quiz{
		ID:                quiz.QuizID,
		Topic:             quiz.Topic,
		Model:             model,
		Temperature:       temperature,
		WikipediaEnhanced: quiz.WikipediaEnhanced,
		CreatedAt:         quiz.GeneratedAt,
	}
	questions := make([]*models.QuizQuestion, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions = append(questions, &models.QuizQuestion{
			ID:            util.NewULID(),
			QuizID:        quiz.QuizID,
			Question:      q.Question,
			Options:       models.StringSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			QuestionOrder: i,
		})
	}
	return s.quizRepo.CreateQuizWithQuestions(ctx, record, questions)
}

// Submit resolves the quiz from the durable store or the snapshot cache,
// scores the answers and records the attempt. Recording is best-effort.
func (s *quizService) Submit(ctx context.Context, submission dto.QuizSubmission, userID string) (*dto.QuizResult, error) {
	if submission.QuizID == "" {
		return nil, domain.NewInvalidInputError("quiz_id is required")
	}
	if userID == "" {
		userID = AnonymousUserID
	}

	source, err := s.resolveQuizSource(ctx, submission.QuizID)
	if err != nil {
		return nil, err
	}

	var result *domain.SubmissionResult
	switch quiz := source.(type) {
	case domain.StoredQuiz:
		result, err = domain.ScoreSubmission(quiz.ID, quiz.Topic, quiz.Questions, submission.Answers)
		if err != nil {
			return nil, err
		}
		s.recordSubmission(ctx, quiz, result, userID)
	case domain.CachedQuiz:
		snap := quiz.Snapshot
		result, err = domain.ScoreSubmission(snap.QuizID, snap.Topic, snap.Questions, submission.Answers)
		if err != nil {
			return nil, err
		}
		// No durable quiz row exists to attach the submission to.
		logger.Get().Info("scored submission against cached quiz",
			zap.String("quiz_id", snap.QuizID))
	}

	return quizResult(result), nil
}

func (s *quizService) resolveQuizSource(ctx context.Context, quizID string) (domain.QuizSource, error) {
	stored, err := s.quizRepo.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		logger.Get().Warn("quiz lookup failed, trying snapshot cache",
			zap.String("quiz_id", quizID), zap.Error(err))
	}
	if stored != nil {
		questions := make([]domain.Question, 0, len(stored.Questions))
		for _, q := range stored.Questions {
			questions = append(questions, domain.Question{
				Question:      q.Question,
				Options:       []string(q.Options),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			})
		}
		return domain.StoredQuiz{ID: stored.ID, Topic: stored.Topic, Questions: questions}, nil
	}

	snapshot, err := s.quizCache.GetSnapshot(ctx, quizID)
	if err != nil {
		logger.Get().Warn("snapshot cache lookup failed",
			zap.String("quiz_id", quizID), zap.Error(err))
	}
	if snapshot != nil {
		return domain.CachedQuiz{Snapshot: snapshot}, nil
	}

	return nil, domain.NewQuizNotFoundError(quizID)
}

func (s *quizService) recordSubmission(ctx context.Context, quiz domain.StoredQuiz, result *domain.SubmissionResult, userID string) {
	stored, err := s.quizRepo.GetQuestionsByQuizID(ctx, quiz.ID)
	if err != nil {
		logger.Get().Error("failed to load questions for submission record",
			zap.String("quiz_id", quiz.ID), zap.Error(err))
		return
	}

	record := &models.QuizSubmission{
		ID:             util.NewULID(),
		QuizID:         quiz.ID,
		UserID:         userID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		SubmittedAt:    result.SubmittedAt,
	}
	answers := make([]*models.QuizAnswer, 0, len(result.UserAnswers))
	for i, answer := range result.UserAnswers {
		if i >= len(stored) {
			break
		}
		answers = append(answers, &models.QuizAnswer{
			ID:           util.NewULID(),
			SubmissionID: record.ID,
			QuestionID:   stored[i].ID,
			UserAnswer:   answer,
			IsCorrect:    answer == result.CorrectAnswers[i],
		})
	}

	if err := s.submissionRepo.CreateSubmission(ctx, record, answers); err != nil {
		logger.Get().Error("failed to record submission",
			zap.String("quiz_id", quiz.ID), zap.Error(err))
	}
}

// GetResults rebuilds scored results from persisted submissions, newest first.
func (s *quizService) GetResults(ctx context.Context) (*dto.QuizResultsResponse, error) {
	submissions, err := s.submissionRepo.ListSubmissions(ctx, 0, defaultResultsLimit)
	if err != nil {
		return nil, domain.NewInternalError("failed to load submissions", err)
	}

	quizzes := make(map[string]*models.Quiz)
	results := make([]dto.QuizResult, 0, len(submissions))
	for _, sub := range submissions {
		quiz, ok := quizzes[sub.QuizID]
		if !ok {
			quiz, err = s.quizRepo.GetQuizWithQuestions(ctx, sub.QuizID)
			if err != nil {
				return nil, domain.NewInternalError("failed to load quiz for results", err)
			}
			quizzes[sub.QuizID] = quiz
		}
		if quiz == nil {
			continue
		}
		results = append(results, rebuildResult(quiz, sub))
	}

	return &dto.QuizResultsResponse{Results: results, Total: len(results)}, nil
}

// rebuildResult reconstructs a scored result from a stored submission and its
// quiz's questions.
func rebuildResult(quiz *models.Quiz, sub models.QuizSubmission) dto.QuizResult {
	byQuestionID := make(map[string]int, len(sub.Answers))
	for _, answer := range sub.Answers {
		byQuestionID[answer.QuestionID] = answer.UserAnswer
	}

	userAnswers := make([]int, len(quiz.Questions))
	correctAnswers := make([]int, len(quiz.Questions))
	feedback := make([]string, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correctAnswers[i] = q.CorrectAnswer
		answer, ok := byQuestionID[q.ID]
		if !ok {
			answer = -1
		}
		userAnswers[i] = answer
		if answer == q.CorrectAnswer {
			feedback[i] = "Correct! " + q.Explanation
		} else {
			feedback[i] = "Incorrect. The correct answer was option " +
				string(domain.OptionLetter(q.CorrectAnswer)) + ". " + q.Explanation
		}
	}

	return dto.QuizResult{
		QuizID:         sub.QuizID,
		Topic:          quiz.Topic,
		UserAnswers:    userAnswers,
		CorrectAnswers: correctAnswers,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		Percentage:     sub.Percentage,
		SubmittedAt:    sub.SubmittedAt.Format(time.RFC3339),
		Feedback:       feedback,
	}
}

// GetHistory lists generated quizzes newest first with per-quiz aggregates.
func (s *quizService) GetHistory(ctx context.Context, skip, limit int) ([]dto.QuizHistory, error) {
	quizzes, err := s.quizRepo.ListQuizzes(ctx, skip, limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz history", err)
	}

	history := make([]dto.QuizHistory, 0, len(quizzes))
	for _, quiz := range quizzes {
		questionCount, err := s.quizRepo.CountQuestions(ctx, quiz.ID)
		if err != nil {
			return nil, domain.NewInternalError("failed to count questions", err)
		}
		stats, err := s.submissionRepo.GetStatsByQuizID(ctx, quiz.ID)
		if err != nil {
			return nil, domain.NewInternalError("failed to load submission stats", err)
		}
		history = append(history, dto.QuizHistory{
			ID:                quiz.ID,
			Topic:             quiz.Topic,
			Model:             quiz.Model,
			Temperature:       quiz.Temperature,
			CreatedAt:         quiz.CreatedAt,
			QuestionCount:     int(questionCount),
			SubmissionCount:   int(stats.Count),
			AverageScore:      stats.AverageScore,
			WikipediaEnhanced: quiz.WikipediaEnhanced,
		})
	}
	return history, nil
}

// GetQuizDetail returns one quiz with its questions and submissions.
func (s *quizService) GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetail, error) {
	quiz, err := s.quizRepo.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Quiz not found")
	}

	submissions, err := s.submissionRepo.GetByQuizID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz submissions", err)
	}

	detail := &dto.QuizDetail{
		ID:               quiz.ID,
		Topic:            quiz.Topic,
		Model:            quiz.Model,
		Temperature:      quiz.Temperature,
		CreatedAt:        quiz.CreatedAt,
		Questions:        make([]dto.QuizDetailQuestion, 0, len(quiz.Questions)),
		Submissions:      make([]dto.QuizDetailSubmission, 0, len(submissions)),
		TotalSubmissions: len(submissions),
	}
	for _, q := range quiz.Questions {
		detail.Questions = append(detail.Questions, dto.QuizDetailQuestion{
			ID:            q.ID,
			Question:      q.Question,
			Options:       []string(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			QuestionOrder: q.QuestionOrder,
		})
	}
	for _, sub := range submissions {
		detail.Submissions = append(detail.Submissions, dto.QuizDetailSubmission{
			ID:             sub.ID,
			UserID:         sub.UserID,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			Percentage:     sub.Percentage,
			SubmittedAt:    sub.SubmittedAt,
		})
	}
	return detail, nil
}

func quizResponse(quiz *domain.GeneratedQuiz) *dto.QuizResponse {
	questions := make([]dto.QuizQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	resp := &dto.QuizResponse{
		QuizID:            quiz.QuizID,
		Topic:             quiz.Topic,
		Questions:         questions,
		GeneratedAt:       quiz.GeneratedAt.Format(time.RFC3339),
		WikipediaEnhanced: quiz.WikipediaEnhanced,
	}
	if !quiz.WikipediaContext.IsEmpty() {
		resp.WikipediaContext = wikipediaContextDTO(quiz.WikipediaContext)
	}
	return resp
}

func wikipediaContextDTO(summary *domain.ContextSummary) *dto.WikipediaContext {
	articles := make([]dto.ArticleResponse, 0, len(summary.Articles))
	for _, a := range summary.Articles {
		articles = append(articles, articleResponse(&a))
	}
	return &dto.WikipediaContext{
		Articles:      articles,
		KeyFacts:      summary.KeyFacts,
		RelatedTopics: summary.RelatedTopics,
		Summary:       summary.Summary,
	}
}

func articleResponse(a *domain.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		Title:     a.Title,
		Extract:   a.Extract,
		URL:       a.URL,
		PageID:    a.PageID,
		LastRevID: a.LastRevID,
		Sections:  a.Sections,
	}
}

func quizResult(result *domain.SubmissionResult) *dto.QuizResult {
	return &dto.QuizResult{
		QuizID:         result.QuizID,
		Topic:          result.Topic,
		UserAnswers:    result.UserAnswers,
		CorrectAnswers: result.CorrectAnswers,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		SubmittedAt:    result.SubmittedAt.Format(time.RFC3339),
		Feedback:       result.Feedback,
	}
}
