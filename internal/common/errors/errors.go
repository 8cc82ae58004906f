// Package errors provides standardized error handling for the babybook core.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeChapterNotFound  ErrorCode = "CHAPTER_NOT_FOUND"
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeRecordNotFound   ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeBabyNotSet       ErrorCode = "BABY_NOT_SET"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeStoreLoadFailed    ErrorCode = "STORE_LOAD_FAILED"
	ErrCodeStorePersistFailed ErrorCode = "STORE_PERSIST_FAILED"
	ErrCodeBlobDecodeFailed   ErrorCode = "BLOB_DECODE_FAILED"
	ErrCodeBlobUnavailable    ErrorCode = "BLOB_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewChapterNotFoundError creates a non-retryable lookup error.
func NewChapterNotFoundError(chapterID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChapterNotFound,
		Message:   "Chapter not found in catalog",
		Details:   fmt.Sprintf("chapterId: %s", chapterID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable lookup error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in catalog",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordNotFoundError creates a non-retryable lookup error.
func NewRecordNotFoundError(kind, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordNotFound,
		Message:   "Record not found",
		Details:   fmt.Sprintf("kind: %s, id: %s", kind, id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBabyNotSetError signals that no current baby has been selected yet.
func NewBabyNotSetError() *StandardError {
	return &StandardError{
		Code:      ErrCodeBabyNotSet,
		Message:   "No current baby is set",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreLoadFailedError creates a retryable blob store read error.
func NewStoreLoadFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreLoadFailed,
		Message:   "Failed to load records from blob store",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorePersistFailedError creates a retryable blob store write error.
func NewStorePersistFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorePersistFailed,
		Message:   "Failed to persist records to blob store",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBlobDecodeFailedError creates a non-retryable decode error. A corrupt
// blob stays corrupt, retrying cannot help.
func NewBlobDecodeFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBlobDecodeFailed,
		Message:   "Stored blob could not be decoded",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBlobUnavailableError creates a retryable connection error.
func NewBlobUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBlobUnavailable,
		Message:   "Blob store unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API facade returns.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeChapterNotFound, ErrCodeTemplateNotFound, ErrCodeRecordNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeBabyNotSet:
		return http.StatusConflict
	case ErrCodeBlobUnavailable, ErrCodeStoreLoadFailed, ErrCodeStorePersistFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsStandard extracts a *StandardError from an error chain.
func AsStandard(err error) (*StandardError, bool) {
	var std *StandardError
	if errors.As(err, &std) {
		return std, true
	}
	return nil, false
}

// IsRetryable reports whether the error is worth retrying.
func IsRetryable(err error) bool {
	if std, ok := AsStandard(err); ok {
		return std.Retryable
	}
	return false
}
