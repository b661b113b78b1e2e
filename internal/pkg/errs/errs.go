package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectAlreadyExists  = errors.New("object already exists")
	ErrConflict             = errors.New("conflict")
	ErrAccessDenied         = errors.New("access denied")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// chain returns the sentinel followed by the cause, skipping a nil cause.
// Every error type in this package unwraps through it so errors.Is matches
// both the category sentinel and the named domain error stored as cause.
func chain(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize flattens newlines so values never break single-line log records.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return chain(ErrValueIsRequired, e.Cause)
}

// ValueIsInvalidError reports a malformed value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return chain(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return chain(ErrValueIsOutOfRange, e.Cause)
}

// ObjectNotFoundError reports that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
	}
	return withCause(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() []error {
	return chain(ErrObjectNotFound, e.Cause)
}

// ObjectAlreadyExistsError reports a unique-key collision.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, sanitize(e.ID))
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectAlreadyExistsError) Unwrap() []error {
	return chain(ErrObjectAlreadyExists, e.Cause)
}

// ConflictError reports that the current state of an object forbids the change,
// either because of a business rule or because a concurrent writer got there first.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConflict, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ConflictError) Unwrap() []error {
	return chain(ErrConflict, e.Cause)
}

// AccessDeniedError reports an authenticated caller lacking role or ownership.
type AccessDeniedError struct {
	Subject string
	Action  string
	Cause   error
}

func NewAccessDeniedError(subject, action string) *AccessDeniedError {
	return &AccessDeniedError{Subject: subject, Action: action}
}

func NewAccessDeniedErrorWithCause(subject, action string, cause error) *AccessDeniedError {
	return &AccessDeniedError{Subject: subject, Action: action, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s may not %s", ErrAccessDenied, sanitize(e.Subject), e.Action), e.Cause)
}

func (e *AccessDeniedError) Unwrap() []error {
	return chain(ErrAccessDenied, e.Cause)
}

// AuthenticationFailedError reports bad or missing credentials.
// The message never names which half of the credential pair was wrong.
type AuthenticationFailedError struct {
	Cause error
}

func NewAuthenticationFailedError() *AuthenticationFailedError {
	return &AuthenticationFailedError{}
}

func NewAuthenticationFailedErrorWithCause(cause error) *AuthenticationFailedError {
	return &AuthenticationFailedError{Cause: cause}
}

func (e *AuthenticationFailedError) Error() string {
	return withCause(ErrAuthenticationFailed.Error(), e.Cause)
}

func (e *AuthenticationFailedError) Unwrap() []error {
	return chain(ErrAuthenticationFailed, e.Cause)
}
