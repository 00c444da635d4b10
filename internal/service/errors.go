package service

import (
	"github.com/deppfellow/go-qa/internal/repository"
	"github.com/deppfellow/go-qa/internal/sqlerr"
	"github.com/pkg/errors"
)

// Kind tells the transport layer which status a failure maps to.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

const internalMessage = "An error occurred while processing your request"

// Error is a failure of a service operation. Message is safe to show to
// clients; Err is for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fromRepository re-types a repository error.
func fromRepository(err error) error {
	if err == nil {
		return nil
	}

	var invalid *repository.InvalidIdentifierError
	if errors.As(err, &invalid) {
		return &Error{Kind: KindBadRequest, Message: invalid.Error(), Err: err}
	}

	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) && sqlerr.ErrCode(storageErr.Err).IsValidation() {
		return &Error{Kind: KindBadRequest, Message: sqlerr.UserMessage(storageErr.Err), Err: err}
	}

	return &Error{Kind: KindInternal, Message: internalMessage, Err: err}
}
