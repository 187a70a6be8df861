package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeInternal   ErrorCode = "INTERNAL_ERROR"

	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	CodeNoCategories     ErrorCode = "NO_CATEGORIES"
	CodeMissingField     ErrorCode = "MISSING_FIELD"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
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

func NewBadRequestError(message string, cause error) *DomainError {
	return NewError(CodeBadRequest, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewQuestionNotFoundError(id int64) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("question not found with ID: %d", id), nil)
}

func NewNoCategoriesError() *DomainError {
	return NewError(CodeNoCategories, "no categories available", nil)
}

// NewMissingFieldError reports required request fields that were absent.
func NewMissingFieldError(fields ...string) *DomainError {
	return NewError(CodeMissingField, fmt.Sprintf("missing required fields: %v", fields), nil)
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
