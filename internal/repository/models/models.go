package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string as a JSON document in a single column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Quiz is a persisted quiz.
type Quiz struct {
	ID                string    `gorm:"primaryKey;size:26"`
	Topic             string    `gorm:"size:255;not null"`
	Model             string    `gorm:"size:100"`
	Temperature       float64   `gorm:"default:0.2"`
	WikipediaEnhanced bool      `gorm:"default:false"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time

	Questions   []QuizQuestion   `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Submissions []QuizSubmission `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion is one persisted question. Options are stored as JSON.
type QuizQuestion struct {
	ID            string      `gorm:"primaryKey;size:26"`
	QuizID        string      `gorm:"size:26;not null;index"`
	Question      string      `gorm:"type:text;not null"`
	Options       StringSlice `gorm:"type:jsonb;not null"`
	CorrectAnswer int         `gorm:"not null"`
	Explanation   string      `gorm:"type:text"`
	QuestionOrder int         `gorm:"not null;default:0"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizSubmission is a persisted quiz attempt.
type QuizSubmission struct {
	ID             string    `gorm:"primaryKey;size:26"`
	QuizID         string    `gorm:"size:26;not null;index"`
	UserID         string    `gorm:"size:100"`
	Score          int       `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	Percentage     float64   `gorm:"not null"`
	SubmittedAt    time.Time `gorm:"not null"`

	Answers []QuizAnswer `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

// QuizAnswer is one per-question answer inside a submission.
type QuizAnswer struct {
	ID           string `gorm:"primaryKey;size:26"`
	SubmissionID string `gorm:"size:26;not null;index"`
	QuestionID   string `gorm:"size:26;not null"`
	UserAnswer   int    `gorm:"not null"`
	IsCorrect    bool   `gorm:"not null"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}

// ChatSession groups the messages of one conversation.
type ChatSession struct {
	ID           string `gorm:"primaryKey;size:26"`
	UserID       string `gorm:"size:100"`
	Model        string `gorm:"size:100"`
	SystemPrompt string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Messages []ChatMessage `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is one persisted conversation message.
type ChatMessage struct {
	ID           string `gorm:"primaryKey;size:26"`
	SessionID    string `gorm:"size:26;not null;index"`
	Role         string `gorm:"size:50;not null"`
	Content      string `gorm:"type:text;not null"`
	Model        string `gorm:"size:100"`
	Usage        string `gorm:"type:jsonb"`
	FinishReason string `gorm:"size:100"`
	CreatedAt    time.Time
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// User is an account created through Google OAuth.
type User struct {
	ID                    string `gorm:"primaryKey;size:26"`
	GoogleID              string `gorm:"size:255;not null;uniqueIndex"`
	Email                 string `gorm:"size:255;not null"`
	Name                  sql.NullString
	ProfilePictureURL     sql.NullString
	EncryptedAccessToken  sql.NullString `gorm:"type:text"`
	EncryptedRefreshToken sql.NullString `gorm:"type:text"`
	TokenExpiresAt        sql.NullTime
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (User) TableName() string {
	return "users"
}
