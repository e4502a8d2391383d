package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Quiz pipeline errors
	CodeInappropriateTopic  ErrorCode = "INAPPROPRIATE_TOPIC"
	CodeMalformedResponse   ErrorCode = "MALFORMED_RESPONSE"
	CodeInvalidShape        ErrorCode = "INVALID_SHAPE"
	CodeUpstreamFailure     ErrorCode = "UPSTREAM_FAILURE"
	CodeAnswerCountMismatch ErrorCode = "ANSWER_COUNT_MISMATCH"
	CodeQuizNotFound        ErrorCode = "QUIZ_NOT_FOUND"
)

// DomainError represents a domain-specific error distinguishable by code,
// so the HTTP boundary can choose the right status for each kind.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInappropriateTopicError() *DomainError {
	return NewError(CodeInappropriateTopic,
		"This topic is not appropriate for quiz generation. Please choose a different topic.", nil)
}

func NewMalformedResponseError(cause error) *DomainError {
	return NewError(CodeMalformedResponse, "Failed to parse quiz response. Please try again.", cause)
}

func NewInvalidShapeError(message string) *DomainError {
	return NewError(CodeInvalidShape, message, nil)
}

func NewUpstreamFailureError(cause error) *DomainError {
	return NewError(CodeUpstreamFailure, "Completion service request failed", cause)
}

func NewAnswerCountMismatchError(expected, got int) *DomainError {
	return NewError(CodeAnswerCountMismatch,
		fmt.Sprintf("Must submit exactly %d answers, got %d", expected, got), nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound,
		fmt.Sprintf("Quiz not found: %s. Please generate a quiz first.", quizID), nil)
}
