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

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Pre-save gate errors for transactions. These are detected before any
// persistence call and surfaced to the caller as typed failures.
var (
	ErrMissingParty         = errors.New("transaction requires a party")
	ErrEmptyLineItems       = errors.New("transaction requires at least one line item")
	ErrMissingPaymentMethod = errors.New("transaction requires a payment method")
	ErrMissingWarehouse     = errors.New("transaction requires a warehouse")
	ErrInvalidAmount        = errors.New("amount is invalid")
	ErrDuplicateWarehouse   = errors.New("source and destination warehouses cannot be the same")
	ErrSameAccountTransfer  = errors.New("sender and receiver payment methods cannot be the same")
)

// ErrUnbalancedJournal is the sentinel matched by errors.Is for any
// *UnbalancedJournalError regardless of cause.
var ErrUnbalancedJournal = errors.New("journal voucher is not balanced")

// UnbalanceCause distinguishes why a journal draft failed the balance check.
type UnbalanceCause string

const (
	// UnbalanceZeroTotal means both debit and credit sums are zero.
	UnbalanceZeroTotal UnbalanceCause = "ZERO_TOTAL"
	// UnbalanceMismatch means debit and credit sums differ.
	UnbalanceMismatch UnbalanceCause = "MISMATCH"
)

// UnbalancedJournalError reports a failed journal balance check along with
// the debit/credit totals that were observed.
type UnbalancedJournalError struct {
	Cause       UnbalanceCause
	TotalDebit  string
	TotalCredit string
}

func (e *UnbalancedJournalError) Error() string {
	if e.Cause == UnbalanceZeroTotal {
		return "journal voucher is not balanced: debit and credit totals must be greater than zero"
	}
	return fmt.Sprintf("journal voucher is not balanced: total debit %s does not equal total credit %s", e.TotalDebit, e.TotalCredit)
}

// Is lets errors.Is(err, ErrUnbalancedJournal) match any cause.
func (e *UnbalancedJournalError) Is(target error) bool {
	return target == ErrUnbalancedJournal
}

// AppError wraps a lower-level error with an HTTP-ish status code and a
// human-readable message. Used mainly by the persistence layer.
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
