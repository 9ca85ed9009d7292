package httperr

import "errors"

// Domain error taxonomy. Usecases return these; handlers translate them
// to HTTP statuses. Persistence failures pass through untouched.

type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindConflict
	KindForbidden
)

type DomainError struct {
	Kind    Kind
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

func ErrNotFound(message string) error {
	return DomainError{Kind: KindNotFound, Message: message}
}

func ErrValidation(message string) error {
	return DomainError{Kind: KindValidation, Message: message}
}

func ErrConflict(message string) error {
	return DomainError{Kind: KindConflict, Message: message}
}

func ErrForbidden(message string) error {
	return DomainError{Kind: KindForbidden, Message: message}
}

func is(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsValidation(err error) bool { return is(err, KindValidation) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsForbidden(err error) bool  { return is(err, KindForbidden) }
