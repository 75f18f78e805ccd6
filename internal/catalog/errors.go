package catalog

import (
	"errors"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
	"github.com/rogerio-castellano/bowling-catalog/internal/repo"
)

// Kind classifies the outcome of a catalog operation.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindNoMatch    Kind = "no_match"
	KindBadRequest Kind = "bad_request"
	KindConflict   Kind = "conflict"
	KindUnexpected Kind = "unexpected"
)

// Error is a classified catalog failure. Message is safe to show to clients;
// Err, when set, is the underlying cause and is only meant for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err. Unrecognised errors are KindUnexpected; nil has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	var pe *query.ParamError
	switch {
	case errors.As(err, &pe):
		return KindBadRequest
	case errors.Is(err, repo.ErrProductNotFound), errors.Is(err, repo.ErrCategoryNotFound):
		return KindNotFound
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		return KindConflict
	}
	return KindUnexpected
}

// PublicMessage returns the text a client may see for err.
func PublicMessage(err error) string {
	var ce *Error
	if errors.As(err, &ce) && ce.Kind != KindUnexpected && ce.Message != "" {
		return ce.Message
	}

	switch KindOf(err) {
	case KindBadRequest:
		return err.Error()
	case KindNotFound:
		return "Resource not found."
	case KindConflict:
		return "A record with the same identifier or name already exists."
	}
	return "An unexpected error occurred. Please try again later."
}
