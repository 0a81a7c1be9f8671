package repository

import (
	"context"

	"github.com/BharAnu2109/Cricket/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// It decouples health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// Context is passed through so nested calls honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// A single entry point keeps transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PlayerRepository declares persistence operations for players.
// Implementations return domain models and surface domain errors from
// errors.go rather than driver codes.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	// Update rewrites the full row identified by p.ID.
	Update(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	// GetByJerseyNumber is a store-level accessor; jersey numbers carry no
	// uniqueness constraint, so it returns the lowest-id match.
	GetByJerseyNumber(ctx context.Context, number int) (model.Player, error)
	List(ctx context.Context, p Page) (PageResult[model.Player], error)
	// ListFiltered combines the provided predicates with AND; a nil field
	// in the filter matches every row for that column.
	ListFiltered(ctx context.Context, f PlayerFilter, p Page) (PageResult[model.Player], error)
	ListByCountry(ctx context.Context, country string) ([]model.Player, error)
	ListByRole(ctx context.Context, role model.PlayingRole) ([]model.Player, error)
	// SearchByName matches the term case-insensitively against first name
	// OR last name; an empty term matches all rows.
	SearchByName(ctx context.Context, term string) ([]model.Player, error)
	CountByCountry(ctx context.Context, country string) (int64, error)
	CountByRole(ctx context.Context, role model.PlayingRole) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Delete removes the row; a missing row reports ErrNotFound so callers
	// never mistake a no-op for success.
	Delete(ctx context.Context, id int64) error
}
