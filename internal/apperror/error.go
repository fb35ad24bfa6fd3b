package apperror

import (
	"errors"

	"github.com/project/ticket-service/internal/utils"
)

// Error is a failure with a catalogue code. It is what the HTTP layer turns
// into a non-200 response.
type Error struct {
	// Code is the catalogue entry.
	Code Code

	// Args fill the placeholders of Code.Msg.
	Args []any

	// Err is the optional underlying cause. It is logged, never sent to the
	// client.
	Err error
}

// New returns an *Error for code with message arguments args.
func New(code Code, args ...any) *Error {
	return &Error{Code: code, Args: args}
}

// Wrap returns an *Error for code that keeps err as its cause.
func Wrap(err error, code Code, args ...any) *Error {
	return &Error{Code: code, Args: args, Err: err}
}

// Message returns the client facing message: the code template formatted
// with the error arguments.
func (e *Error) Message() string {
	return utils.FormatMessage(e.Code.Msg, e.Args...)
}

// HTTPStatus returns the HTTP status derived from the code.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Error implements error. The cause, if any, is appended.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message() + ": " + e.Err.Error()
	}
	return e.Message()
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
//
//	errors.Is(err, apperror.New(apperror.EventNotFound))
//
// matches regardless of arguments.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code.Code == e.Code.Code
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries code anywhere in its chain.
func HasCode(err error, code Code) bool {
	return errors.Is(err, &Error{Code: code})
}
