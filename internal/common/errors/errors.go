// Package errors provides standardized error handling for the concierge
// pipeline: which failures drain a job, which abort the run and leave the
// message on the queue for retry.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Job body cannot ever become well-formed; the message is drained.
	ErrCodeMalformedJob ErrorCode = "MALFORMED_JOB"

	// A search hit has no details-store record; the run aborts without ack.
	ErrCodeRestaurantLookupFailed ErrorCode = "RESTAURANT_LOOKUP_FAILED"

	// Transport failures; the run aborts without ack and the job retries.
	ErrCodeQueueReceiveFailed     ErrorCode = "QUEUE_RECEIVE_FAILED"
	ErrCodeQueueDeleteFailed      ErrorCode = "QUEUE_DELETE_FAILED"
	ErrCodeSearchQueryFailed      ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeJobDispatchFailed      ErrorCode = "JOB_DISPATCH_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// NewMalformedJobError creates a non-retryable error for a job body missing
// required fields. Such messages are acknowledged and never retried.
func NewMalformedJobError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedJob,
		Message:   "Job message is missing required fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRestaurantLookupError creates an error for a search hit whose details
// record is absent. The run fails without ack so the job is retried.
func NewRestaurantLookupError(restaurantID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRestaurantLookupFailed,
		Message:   "Restaurant details record not found",
		Details:   fmt.Sprintf("restaurantID: %s, error: %v", restaurantID, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewQueueReceiveError creates a retryable queue receive error.
func NewQueueReceiveError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueueReceiveFailed,
		Message:   "Queue receive failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewQueueDeleteError creates a retryable queue acknowledgment error.
func NewQueueDeleteError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueueDeleteFailed,
		Message:   "Queue delete failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewSearchQueryError creates a retryable search index error.
func NewSearchQueryError(term string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Search index query failed",
		Details:   fmt.Sprintf("term: %s, error: %v", term, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNotificationSendError creates a retryable notification delivery error.
func NewNotificationSendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewJobDispatchError creates a retryable enqueue error. The dialog handler
// propagates it to the transport rather than retrying itself.
func NewJobDispatchError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobDispatchFailed,
		Message:   "Job enqueue failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf extracts the error code from err, or empty if it is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsRetryable reports whether the run holding err should leave the message on
// the queue. Unknown errors default to retryable so nothing is lost silently.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return true
}
