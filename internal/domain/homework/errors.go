// internal/domain/homework/errors.go
package homework

import "errors"

// Kind tags a failure with the stage of the poll cycle that produced it.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindTransport     Kind = "transport"
	KindStatusCode    Kind = "status_code"
	KindDecode        Kind = "decode"
	KindSchema        Kind = "schema"
	KindMissingData   Kind = "missing_data"
	KindEmptyResult   Kind = "empty_result"
	KindMissingField  Kind = "missing_field"
	KindUnknownStatus Kind = "unknown_status"
	KindConfiguration Kind = "configuration"
)

// Error is the tagged failure returned by every stage of a poll cycle.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrTransport     = &Error{Kind: KindTransport}
	ErrStatusCode    = &Error{Kind: KindStatusCode}
	ErrDecode        = &Error{Kind: KindDecode}
	ErrSchema        = &Error{Kind: KindSchema}
	ErrMissingData   = &Error{Kind: KindMissingData}
	ErrEmptyResult   = &Error{Kind: KindEmptyResult}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus}
	ErrConfiguration = &Error{Kind: KindConfiguration}
)

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
