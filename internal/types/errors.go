package types

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

type ErrorKind string

const (
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindAPI        ErrorKind = "api"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindAmbiguity  ErrorKind = "ambiguity"
	ErrorKindConfig     ErrorKind = "config"
)

func (k ErrorKind) Code() errbuilder.ErrCode {
	switch k {
	case ErrorKindValidation:
		return errbuilder.CodeFailedPrecondition
	case ErrorKindNotFound:
		return errbuilder.CodeNotFound
	case ErrorKindAmbiguity:
		return errbuilder.CodeAlreadyExists
	case ErrorKindConfig:
		return errbuilder.CodeInvalidArgument
	default:
		return errbuilder.CodeInternal
	}
}

// MenuError tags a pipeline failure with its kind. The wrapped builder
// carries the matching errbuilder code so generic code-based handling keeps
// working.
type MenuError struct {
	Kind ErrorKind
	Msg  string
	// Candidates lists the available ids or names relevant to the failure.
	Candidates []string
	// Payload is the raw remote error document for api errors.
	Payload string

	cause error
	coded error
}

func (e *MenuError) Error() string {
	if e.cause != nil {
		return e.Msg + ": " + e.cause.Error()
	}
	return e.Msg
}

func (e *MenuError) Unwrap() []error {
	out := []error{e.coded}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

func (e *MenuError) Code() errbuilder.ErrCode {
	return e.Kind.Code()
}

func newMenuError(kind ErrorKind, msg string, cause error) *MenuError {
	var coded error
	if cause != nil {
		coded = errbuilder.New().
			WithCode(kind.Code()).
			WithMsg(msg).
			WithCause(cause)
	} else {
		coded = errbuilder.New().
			WithCode(kind.Code()).
			WithMsg(msg)
	}
	return &MenuError{
		Kind:  kind,
		Msg:   msg,
		cause: cause,
		coded: coded,
	}
}

func NewTransportError(msg string, cause error) *MenuError {
	return newMenuError(ErrorKindTransport, msg, cause)
}

func NewAPIError(payload string) *MenuError {
	err := newMenuError(ErrorKindAPI, "graphql api error: "+payload, nil)
	err.Payload = payload
	return err
}

func NewValidationError(msg string, available []string) *MenuError {
	err := newMenuError(ErrorKindValidation, msg, nil)
	err.Candidates = available
	return err
}

func NewNotFoundError(msg string, available []string) *MenuError {
	err := newMenuError(ErrorKindNotFound, msg, nil)
	err.Candidates = available
	return err
}

func NewAmbiguityError(msg string, candidates []string) *MenuError {
	err := newMenuError(ErrorKindAmbiguity, msg, nil)
	err.Candidates = candidates
	return err
}

func NewConfigError(msg string) *MenuError {
	return newMenuError(ErrorKindConfig, msg, nil)
}

// KindOf returns the kind of the first MenuError in err's chain, or "" when
// err carries none.
func KindOf(err error) ErrorKind {
	var menuErr *MenuError
	if errors.As(err, &menuErr) {
		return menuErr.Kind
	}
	return ""
}
