package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bolao/landing/internal/backend"
)

// User-facing notification copy.
const (
	MsgPoolCreated      = "Bolão criado com sucesso! O código foi copiado para a área de transferência"
	MsgPoolCreateFailed = "Falha ao criar o bolão, tente novamente"
)

// Service errors.
var (
	ErrInvalidStats        = errors.New("invalid aggregate stats")
	ErrEmptyTitle          = errors.New("pool title is required")
	ErrMissingCode         = errors.New("backend returned a pool without invite code")
	ErrSubmissionInFlight  = errors.New("pool submission already in flight")
	ErrDuplicateSubmission = errors.New("pool submission already being processed")
)

// ErrorKind tags the step of a pool creation that failed.
type ErrorKind string

// Pool creation failure kinds.
const (
	KindValidation ErrorKind = "validation"
	KindNetwork    ErrorKind = "network"
	KindBackend    ErrorKind = "backend"
	KindClipboard  ErrorKind = "clipboard"
)

// CreateError is returned by PoolCreator.Submit when a step fails.
// Code is set when the backend already issued an invite code, which is
// the case for clipboard failures.
type CreateError struct {
	Kind ErrorKind
	Code string
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create pool (%s): %v", e.Kind, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind carried by err, or "" when err is not a
// CreateError.
func KindOf(err error) ErrorKind {
	var ce *CreateError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// classifyBackendError maps a backend client error to a failure kind.
func classifyBackendError(err error) ErrorKind {
	switch {
	case errors.Is(err, backend.ErrUnreachable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	default:
		return KindBackend
	}
}
