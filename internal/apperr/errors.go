// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP handlers. Every operation either propagates one of these types or
// swallows the failure after logging; the per-operation policy lives in the
// service package.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is
var (
	// ErrNotFound indicates a single-record lookup found no matching document
	ErrNotFound = errors.New("record not found")

	// ErrTimeout indicates a client-enforced wait budget expired before the
	// awaited operation settled; the underlying operation is not cancelled
	ErrTimeout = errors.New("operation timed out")
)

// ValidationError indicates caller-supplied data failed a precondition.
// It is always raised before any I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WriteFailedError indicates the remote record store rejected or could not
// complete a write. It carries the underlying store error for display.
type WriteFailedError struct {
	Op  string // create, update, delete, increment_like
	Err error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *WriteFailedError) Unwrap() error {
	return e.Err
}

// WriteFailed wraps a store error with the failed operation name
func WriteFailed(op string, err error) *WriteFailedError {
	return &WriteFailedError{Op: op, Err: err}
}

// UploadReason sub-classifies an object-storage upload failure
type UploadReason string

const (
	UploadUnauthorized    UploadReason = "unauthorized"
	UploadUnauthenticated UploadReason = "unauthenticated"
	UploadQuotaExceeded   UploadReason = "quota_exceeded"
	UploadNotFound        UploadReason = "not_found"
	UploadUnknown         UploadReason = "unknown"
)

// uploadMessages maps sub-reasons to their user-facing messages
var uploadMessages = map[UploadReason]string{
	UploadUnauthorized:    "storage access denied, check bucket permissions",
	UploadUnauthenticated: "storage credentials missing or expired",
	UploadQuotaExceeded:   "storage quota exceeded",
	UploadNotFound:        "uploaded object could not be resolved",
	UploadUnknown:         "image upload failed",
}

// UploadFailedError indicates an object-storage write failed
type UploadFailedError struct {
	Reason UploadReason
	Err    error
}

func (e *UploadFailedError) Error() string {
	msg, ok := uploadMessages[e.Reason]
	if !ok {
		msg = uploadMessages[UploadUnknown]
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UploadFailedError) Unwrap() error {
	return e.Err
}

// UploadFailed wraps a storage error with its sub-reason
func UploadFailed(reason UploadReason, err error) *UploadFailedError {
	return &UploadFailedError{Reason: reason, Err: err}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsWriteFailed reports whether err is a WriteFailedError
func IsWriteFailed(err error) bool {
	var we *WriteFailedError
	return errors.As(err, &we)
}

// IsUploadFailed reports whether err is an UploadFailedError
func IsUploadFailed(err error) bool {
	var ue *UploadFailedError
	return errors.As(err, &ue)
}
