package dictionary

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindValidation is an empty or whitespace-only query. No request is issued.
	KindValidation ErrorKind = iota + 1
	// KindNotFound means the service reports no such word.
	KindNotFound
	// KindTransport covers every other network or service failure.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var ErrEmptyWord = errors.New("word is empty")

// LookupError is a classified failure of one lookup.
type LookupError struct {
	Kind       ErrorKind
	Word       string
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("lookup %q: %s", e.Word, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func NewValidationError(word string) *LookupError {
	return &LookupError{Kind: KindValidation, Word: word, Err: ErrEmptyWord}
}

func NewNotFoundError(word string, statusCode int) *LookupError {
	return &LookupError{Kind: KindNotFound, Word: word, StatusCode: statusCode}
}

func NewTransportError(word string, statusCode int, err error) *LookupError {
	return &LookupError{Kind: KindTransport, Word: word, StatusCode: statusCode, Err: err}
}

// KindOf classifies err. Errors outside the taxonomy are transport failures.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return 0, false
	}
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind, true
	}
	return KindTransport, true
}

func IsValidation(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
}

func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}
