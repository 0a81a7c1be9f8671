// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError is the exported constructor used by boundary code
// that detects malformed input before reaching a use case.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// NotFoundError carries which resource was missing and by which key.
// It unwraps to repository.ErrNotFound so existing error mapping applies.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func (e *NotFoundError) Unwrap() error { return repository.ErrNotFound }

// NewNotFound builds a typed not-found failure for the given resource key.
func NewNotFound(resource, field string, value any) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// PlayerService defines player-oriented use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, dto model.PlayerDTO) (model.PlayerDTO, error)
	GetPlayer(ctx context.Context, id int64) (model.PlayerDTO, error)
	ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.PlayerDTO], error)
	ListPlayersFiltered(ctx context.Context, f repository.PlayerFilter, page repository.Page) (repository.PageResult[model.PlayerDTO], error)
	ListPlayersByCountry(ctx context.Context, country string) ([]model.PlayerDTO, error)
	ListPlayersByRole(ctx context.Context, role model.PlayingRole) ([]model.PlayerDTO, error)
	SearchPlayersByName(ctx context.Context, term string) ([]model.PlayerDTO, error)
	UpdatePlayer(ctx context.Context, id int64, dto model.PlayerDTO) (model.PlayerDTO, error)
	DeletePlayer(ctx context.Context, id int64) error
	// SetPlayerActive serves both activate and deactivate.
	SetPlayerActive(ctx context.Context, id int64, active bool) (model.PlayerDTO, error)
	CountPlayersByCountry(ctx context.Context, country string) (int64, error)
	CountPlayersByRole(ctx context.Context, role model.PlayingRole) (int64, error)
}
