package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRows              = sql.ErrNoRows
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidAccountType  = errors.New("unable to find account type")
	ErrInvalidCurrency     = errors.New("unable to find currency")
	ErrInvalidLeg          = errors.New("invalid transaction leg")
	ErrUnbalancedJournal   = errors.New("journal legs do not sum to zero")
	ErrMixedGroupTypes     = errors.New("all journals in a group must share one transaction type")
	ErrEmptyGroup          = errors.New("transaction group has no journals")
	ErrInvalidRepetition   = errors.New("invalid repetition")
	ErrRecurrenceInactive  = errors.New("recurrence is not active")
	ErrNotAnOccurrence     = errors.New("date is not an occurrence of the recurrence")
	ErrAlreadyMaterialized = errors.New("recurrence already materialized for date")
	ErrMissingOwner        = errors.New("missing owner")
)

// ConfigurationError is returned when an account type or currency cannot be
// resolved. It aborts the whole operation.
type ConfigurationError struct {
	Op  string
	Err error
}

func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError reports a source or destination account that is not legal
// for the transaction type. Message is the validator's own explanation.
type ValidationError struct {
	Leg     int
	Role    string
	Message string
}

func NewInvalidLegError(leg int, role, message string) *ValidationError {
	return &ValidationError{Leg: leg, Role: role, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s invalid: %s", e.Role, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidLeg
}

// NotFoundError is returned when a referenced entity is absent and no fallback exists.
type NotFoundError struct {
	Entity string
	Key    string
}

func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrDataNotFound
}

// IsPermanent reports whether retrying err cannot succeed.
func IsPermanent(err error) bool {
	var (
		cfgErr *ConfigurationError
		valErr *ValidationError
		nfErr  *NotFoundError
	)
	return errors.As(err, &cfgErr) ||
		errors.As(err, &valErr) ||
		errors.As(err, &nfErr) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnbalancedJournal) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRepetition) ||
		errors.Is(err, ErrMixedGroupTypes) ||
		errors.Is(err, ErrEmptyGroup) ||
		errors.Is(err, ErrAlreadyMaterialized) ||
		errors.Is(err, ErrNotAnOccurrence) ||
		errors.Is(err, ErrRecurrenceInactive)
}
