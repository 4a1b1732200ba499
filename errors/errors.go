package errors

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAPIError        = errors.New("api error")
	ErrClipboard       = errors.New("clipboard error")
	ErrUnpublishable   = errors.New("unpublishable survey")
	ErrInvalidCommand  = errors.New("invalid command")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnsupportedType = errors.New("unsupported format")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func NewAPIError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrAPIError,
		msg:        msg,
		cause:      cause,
	}
}

func NewNotFoundError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrNotFound,
		msg:        msg,
		cause:      cause,
	}
}

func NewClipboardError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrClipboard,
		msg:        msg,
		cause:      cause,
	}
}

func NewConfigError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrInvalidConfig,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
