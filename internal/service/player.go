package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
)

const playerResource = "Player"

type playerService struct {
	players repository.PlayerRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

// NewPlayerService wires the player use cases. The TxManager scopes each
// read-then-write mutation to a single transaction; pass NopTxManager when
// the backing store has no transactions.
func NewPlayerService(players repository.PlayerRepository, tx repository.TxManager, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	if tx == nil {
		tx = NopTxManager{}
	}
	return &playerService{players: players, tx: tx, log: l}
}

// NopTxManager runs the unit of work directly, without a transaction.
type NopTxManager struct{}

func (NopTxManager) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

func (s *playerService) CreatePlayer(ctx context.Context, dto model.PlayerDTO) (model.PlayerDTO, error) {
	start := time.Now()
	dto = normalizeDTO(dto)

	if err := newInvalidInput(validateDTO(dto)); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("player validation failed")
		return model.PlayerDTO{}, err
	}

	out, err := s.players.Create(ctx, toEntity(dto))
	if err != nil {
		s.log.Error().Err(err).Str("name", dto.FirstName+" "+dto.LastName).Msg("create player failed")
		return model.PlayerDTO{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("player_id", out.ID).Msg("player created")
	return toDTO(out), nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int64) (model.PlayerDTO, error) {
	if id <= 0 {
		return model.PlayerDTO{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	p, err := s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlayerDTO{}, NewNotFound(playerResource, "id", id)
		}
		return model.PlayerDTO{}, err
	}
	return toDTO(p), nil
}

func (s *playerService) ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.PlayerDTO], error) {
	return s.ListPlayersFiltered(ctx, repository.PlayerFilter{}, page)
}

func (s *playerService) ListPlayersFiltered(ctx context.Context, f repository.PlayerFilter, page repository.Page) (repository.PageResult[model.PlayerDTO], error) {
	if f.Role != nil && !f.Role.Valid() {
		return repository.PageResult[model.PlayerDTO]{}, newInvalidInput([]FieldError{{Field: "role", Message: "must be a valid playing role"}})
	}
	p := normalizePage(page)
	res, err := s.players.ListFiltered(ctx, f, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list players failed")
		return repository.PageResult[model.PlayerDTO]{}, err
	}
	return repository.PageResult[model.PlayerDTO]{Items: toDTOs(res.Items), Total: res.Total}, nil
}

func (s *playerService) ListPlayersByCountry(ctx context.Context, country string) ([]model.PlayerDTO, error) {
	players, err := s.players.ListByCountry(ctx, country)
	if err != nil {
		s.log.Error().Err(err).Str("country", country).Msg("list players by country failed")
		return nil, err
	}
	return toDTOs(players), nil
}

func (s *playerService) ListPlayersByRole(ctx context.Context, role model.PlayingRole) ([]model.PlayerDTO, error) {
	if !role.Valid() {
		return nil, newInvalidInput([]FieldError{{Field: "role", Message: "must be a valid playing role"}})
	}
	players, err := s.players.ListByRole(ctx, role)
	if err != nil {
		s.log.Error().Err(err).Str("role", string(role)).Msg("list players by role failed")
		return nil, err
	}
	return toDTOs(players), nil
}

func (s *playerService) SearchPlayersByName(ctx context.Context, term string) ([]model.PlayerDTO, error) {
	players, err := s.players.SearchByName(ctx, term)
	if err != nil {
		s.log.Error().Err(err).Str("term", term).Msg("search players failed")
		return nil, err
	}
	return toDTOs(players), nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int64, dto model.PlayerDTO) (model.PlayerDTO, error) {
	if id <= 0 {
		return model.PlayerDTO{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	dto = normalizeDTO(dto)
	if err := newInvalidInput(validateDTO(dto)); err != nil {
		return model.PlayerDTO{}, err
	}

	var out model.Player
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.players.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewNotFound(playerResource, "id", id)
			}
			return err
		}
		applyDTO(&existing, dto)
		out, err = s.players.Update(ctx, existing)
		return err
	})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("player_id", id).Msg("update player failed")
		}
		return model.PlayerDTO{}, err
	}
	s.log.Info().Int64("player_id", id).Msg("player updated")
	return toDTO(out), nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	// Fetch-before-delete turns a zero-rows outcome into an explicit
	// domain error instead of a silent no-op.
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.players.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewNotFound(playerResource, "id", id)
			}
			return err
		}
		return s.players.Delete(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("player_id", id).Msg("delete player failed")
		}
		return err
	}
	s.log.Info().Int64("player_id", id).Msg("player deleted")
	return nil
}

func (s *playerService) SetPlayerActive(ctx context.Context, id int64, active bool) (model.PlayerDTO, error) {
	if id <= 0 {
		return model.PlayerDTO{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	var out model.Player
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.players.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewNotFound(playerResource, "id", id)
			}
			return err
		}
		existing.IsActive = active
		out, err = s.players.Update(ctx, existing)
		return err
	})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("player_id", id).Bool("active", active).Msg("set player active failed")
		}
		return model.PlayerDTO{}, err
	}
	s.log.Info().Int64("player_id", id).Bool("active", active).Msg("player active flag set")
	return toDTO(out), nil
}

func (s *playerService) CountPlayersByCountry(ctx context.Context, country string) (int64, error) {
	// Absence is reported as zero, never as an error.
	return s.players.CountByCountry(ctx, country)
}

func (s *playerService) CountPlayersByRole(ctx context.Context, role model.PlayingRole) (int64, error) {
	if !role.Valid() {
		return 0, newInvalidInput([]FieldError{{Field: "role", Message: "must be a valid playing role"}})
	}
	return s.players.CountByRole(ctx, role)
}

var _ PlayerService = (*playerService)(nil)
