package repository

import (
	"context"
	"testing"
	"time"

	"quizforge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionRepository_CreateSubmission(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "quiz_submissions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "quiz_answers"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.CreateSubmission(context.Background(),
		&models.QuizSubmission{
			ID:             "S1",
			QuizID:         "01A",
			UserID:         "user-1",
			Score:          1,
			TotalQuestions: 2,
			Percentage:     50.0,
			SubmittedAt:    time.Now(),
		},
		[]*models.QuizAnswer{
			{ID: "A1", SubmissionID: "S1", QuestionID: "Q1", UserAnswer: 0, IsCorrect: true},
			{ID: "A2", SubmissionID: "S1", QuestionID: "Q2", UserAnswer: 0, IsCorrect: false},
		})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_CreateSubmission_NoAnswers(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "quiz_submissions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateSubmission(context.Background(),
		&models.QuizSubmission{ID: "S1", QuizID: "01A", SubmittedAt: time.Now()}, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_ListSubmissions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	subRows := sqlmock.NewRows([]string{"id", "quiz_id", "user_id", "score", "total_questions", "percentage"}).
		AddRow("S2", "01A", "user-1", 2, 2, 100.0).
		AddRow("S1", "01A", "anonymous", 1, 2, 50.0)
	mock.ExpectQuery(`SELECT \* FROM "quiz_submissions" ORDER BY submitted_at DESC LIMIT \$1`).
		WillReturnRows(subRows)

	answerRows := sqlmock.NewRows([]string{"id", "submission_id", "question_id", "user_answer", "is_correct"}).
		AddRow("A1", "S2", "Q1", 0, true).
		AddRow("A2", "S1", "Q1", 1, false)
	mock.ExpectQuery(`SELECT \* FROM "quiz_answers" WHERE "quiz_answers"\."submission_id" IN`).
		WillReturnRows(answerRows)

	submissions, err := repo.ListSubmissions(context.Background(), 0, 50)

	require.NoError(t, err)
	require.Len(t, submissions, 2)
	require.Len(t, submissions[0].Answers, 1)
	assert.Equal(t, "Q1", submissions[0].Answers[0].QuestionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_ListByUserID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "quiz_id", "user_id"}).
		AddRow("S1", "01A", "user-1")
	mock.ExpectQuery(`SELECT \* FROM "quiz_submissions" WHERE user_id = \$1 ORDER BY submitted_at DESC LIMIT \$2`).
		WithArgs("user-1", 20).
		WillReturnRows(rows)

	submissions, err := repo.ListByUserID(context.Background(), "user-1", 0, 20)

	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, "user-1", submissions[0].UserID)
}

func TestSubmissionRepository_GetStatsByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	rows := sqlmock.NewRows([]string{"count", "average_score"}).AddRow(4, 71.5)
	mock.ExpectQuery(`SELECT COUNT\(id\) AS count, AVG\(percentage\) AS average_score FROM "quiz_submissions" WHERE quiz_id = \$1`).
		WithArgs("01A").
		WillReturnRows(rows)

	stats, err := repo.GetStatsByQuizID(context.Background(), "01A")

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Count)
	require.NotNil(t, stats.AverageScore)
	assert.InDelta(t, 71.5, *stats.AverageScore, 0.001)
}

func TestSubmissionRepository_GetStatsByQuizID_NoSubmissions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubmissionRepository(db)

	rows := sqlmock.NewRows([]string{"count", "average_score"}).AddRow(0, nil)
	mock.ExpectQuery(`SELECT COUNT\(id\) AS count, AVG\(percentage\) AS average_score`).
		WithArgs("01A").
		WillReturnRows(rows)

	stats, err := repo.GetStatsByQuizID(context.Background(), "01A")

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.Nil(t, stats.AverageScore)
}
