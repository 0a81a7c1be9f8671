package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
)

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

// playerCols is the canonical column list shared by every player query.
const playerCols = `id, first_name, last_name, date_of_birth, country, playing_role, batting_style, bowling_style, jersey_number, is_active, created_at, updated_at`

// scanPlayer reads one row in playerCols order. extra receives trailing
// scan targets, such as the windowed total for paginated listings.
func scanPlayer(row pgx.Row, extra ...any) (model.Player, error) {
	var (
		out model.Player
		dob *time.Time
	)
	targets := []any{
		&out.ID, &out.FirstName, &out.LastName, &dob, &out.Country,
		&out.PlayingRole, &out.BattingStyle, &out.BowlingStyle,
		&out.JerseyNumber, &out.IsActive, &out.CreatedAt, &out.UpdatedAt,
	}
	targets = append(targets, extra...)
	if err := row.Scan(targets...); err != nil {
		return model.Player{}, err
	}
	if dob != nil {
		out.DateOfBirth = &model.Date{Time: *dob}
	}
	return out, nil
}

// dobArg converts the optional date of birth into a nullable DATE argument.
func dobArg(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO players (first_name, last_name, date_of_birth, country, playing_role, batting_style, bowling_style, jersey_number, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+playerCols,
		p.FirstName, p.LastName, dobArg(p.DateOfBirth), p.Country,
		string(p.PlayingRole), string(p.BattingStyle), string(p.BowlingStyle),
		p.JerseyNumber, p.IsActive,
	)
	out, err := scanPlayer(row)
	if err != nil {
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) Update(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE players
		 SET first_name = $2, last_name = $3, date_of_birth = $4, country = $5,
		     playing_role = $6, batting_style = $7, bowling_style = $8,
		     jersey_number = $9, is_active = $10, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+playerCols,
		p.ID, p.FirstName, p.LastName, dobArg(p.DateOfBirth), p.Country,
		string(p.PlayingRole), string(p.BattingStyle), string(p.BowlingStyle),
		p.JerseyNumber, p.IsActive,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT `+playerCols+` FROM players WHERE id = $1`, id,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) GetByJerseyNumber(ctx context.Context, number int) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	// Jersey numbers are not unique; the lowest id wins deterministically.
	row := exec.QueryRow(ctx,
		`SELECT `+playerCols+` FROM players WHERE jersey_number = $1 ORDER BY id LIMIT 1`, number,
	)
	out, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Player], error) {
	return r.ListFiltered(ctx, repository.PlayerFilter{}, p)
}

func (r *playerRepository) ListFiltered(ctx context.Context, f repository.PlayerFilter, p repository.Page) (repository.PageResult[model.Player], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Player]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	var role *string
	if f.Role != nil {
		s := string(*f.Role)
		role = &s
	}
	exec := getQ(ctx, r.pool)
	// A NULL parameter disables its predicate entirely; this is the
	// tri-state filter, distinct from matching NULL-valued columns.
	rows, err := exec.Query(ctx,
		`SELECT `+playerCols+`, COUNT(*) OVER() AS total
		 FROM players
		 WHERE ($1::TEXT IS NULL OR country = $1)
		   AND ($2::TEXT IS NULL OR playing_role = $2)
		   AND ($3::BOOLEAN IS NULL OR is_active = $3)
		 ORDER BY id
		 LIMIT $4 OFFSET $5`,
		f.Country, role, f.IsActive, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Player]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Player]{Items: make([]model.Player, 0, limit)}
	for rows.Next() {
		var total int
		it, err := scanPlayer(rows, &total)
		if err != nil {
			return repository.PageResult[model.Player]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Player]{}, repository.MapPgError(err)
	}
	return res, nil
}

// collectRows drains a player query without pagination bookkeeping.
func collectRows(rows pgx.Rows) ([]model.Player, error) {
	defer rows.Close()
	out := make([]model.Player, 0)
	for rows.Next() {
		it, err := scanPlayer(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *playerRepository) ListByCountry(ctx context.Context, country string) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+playerCols+` FROM players WHERE country = $1 ORDER BY id`, country,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectRows(rows)
}

func (r *playerRepository) ListByRole(ctx context.Context, role model.PlayingRole) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+playerCols+` FROM players WHERE playing_role = $1 ORDER BY id`, string(role),
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectRows(rows)
}

func (r *playerRepository) SearchByName(ctx context.Context, term string) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	// OR across both name columns; an empty term degenerates to match-all.
	rows, err := exec.Query(ctx,
		`SELECT `+playerCols+` FROM players
		 WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
		 ORDER BY id`,
		term,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectRows(rows)
}

func (r *playerRepository) CountByCountry(ctx context.Context, country string) (int64, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var n int64
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM players WHERE country = $1`, country).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func (r *playerRepository) CountByRole(ctx context.Context, role model.PlayingRole) (int64, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var n int64
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM players WHERE playing_role = $1`, string(role)).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

// Exists performs a lightweight check for a player with the given id.
func (r *playerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
