package scheduling

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected operation so the API layer can pick a
// response code without parsing messages.
type Kind int

const (
	KindValidation Kind = iota + 1 // malformed input, caller-fixable
	KindConflict                   // business rule violated
	KindCapacity                   // date range cannot fit the session count
	KindNotFound                   // referenced record absent
	KindTransient                  // store timeout/connectivity, safe to retry
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewCapacity(format string, args ...interface{}) error {
	return &Error{Kind: KindCapacity, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewTransient(msg string, err error) error {
	return &Error{Kind: KindTransient, Message: msg, Err: err}
}

func HasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsValidation(err error) bool { return HasKind(err, KindValidation) }
func IsConflict(err error) bool   { return HasKind(err, KindConflict) }
func IsCapacity(err error) bool   { return HasKind(err, KindCapacity) }
func IsNotFound(err error) bool   { return HasKind(err, KindNotFound) }
func IsTransient(err error) bool  { return HasKind(err, KindTransient) }
