package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotALender indicates that the counterparty of a capital operation is not
// flagged as a lender partner. Rejected before any mutation.
var ErrNotALender = errors.New("partner is not a lender")

// ErrInsufficientBalance indicates that a withdrawal or disbursement amount
// exceeds the lender's available balance. Rejected before any mutation.
var ErrInsufficientBalance = errors.New("insufficient available balance")

// InvariantViolationError reports a broken ledger invariant detected after a
// posting was computed. It is not recoverable: the enclosing transaction must
// roll back and the condition escalated, since continuing risks misallocated money.
type InvariantViolationError struct {
	Invariant string // short identifier of the broken rule, e.g. "principal-conservation"
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("ledger invariant %s violated: %s", e.Invariant, e.Detail)
}

// NewInvariantViolation builds an InvariantViolationError with a formatted detail.
func NewInvariantViolation(invariant, format string, args ...any) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}

// AppError wraps an underlying error with a status code and message for transport layers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
