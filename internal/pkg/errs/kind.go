package errs

import "errors"

// Kind is the caller-facing classification of an error.
type Kind int

const (
	// KindNone is reported for a nil error.
	KindNone Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthentication
	KindAuthorization
	// KindInfrastructure covers everything not classified above, typically
	// storage failures the caller may retry as a whole.
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindInfrastructure:
		return "infrastructure"
	}
	return "unknown"
}

// KindOf classifies err by the sentinels in its chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAccessDenied):
		return KindAuthorization
	case errors.Is(err, ErrAuthenticationFailed):
		return KindAuthentication
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectAlreadyExists), errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	}
	return KindInfrastructure
}
