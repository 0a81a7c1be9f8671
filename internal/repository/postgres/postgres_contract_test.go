package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
	"github.com/BharAnu2109/Cricket/internal/repository/contract"
	"github.com/BharAnu2109/Cricket/migrations"
)

var (
	pool   *pgxpool.Pool
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// contract tests need a live Postgres; opt in explicitly
		skippy = true
		os.Exit(m.Run())
	}

	dsn := buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] DATABASE_URL or APP_POSTGRES_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.Up(db, migrations.Dir); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}
	_ = db.Close()

	ctx := context.Background()
	pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("[contract] pool error:", err)
		os.Exit(1)
	}
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func buildDSNFromEnv() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := os.Getenv("APP_POSTGRES_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("APP_POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   host + ":" + port,
		Path:   os.Getenv("APP_POSTGRES_DBNAME"),
	}
	u.User = url.UserPassword(os.Getenv("APP_POSTGRES_USER"), os.Getenv("APP_POSTGRES_PASSWORD"))
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// makePlayerRepo hands each subtest an empty table.
func makePlayerRepo(t *testing.T) (repository.PlayerRepository, func()) {
	t.Helper()
	if skippy {
		t.Skip("contract tests disabled; set CONTRACT_TESTS=1")
	}
	truncate := func() {
		if _, err := pool.Exec(context.Background(), `TRUNCATE players RESTART IDENTITY`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
	}
	truncate()
	return NewPlayerRepository(pool), truncate
}

func TestPlayerRepository_Contract(t *testing.T) {
	contract.RunPlayerRepositoryContract(t, makePlayerRepo)
}

func TestPinger_Contract(t *testing.T) {
	contract.RunPingerContract(t, func(t *testing.T) (repository.Pinger, func()) {
		if skippy {
			t.Skip("contract tests disabled; set CONTRACT_TESTS=1")
		}
		return NewPinger(pool), func() {}
	})
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	if skippy {
		t.Skip("contract tests disabled; set CONTRACT_TESTS=1")
	}
	ctx := context.Background()
	if _, err := pool.Exec(ctx, `TRUNCATE players RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	repo := NewPlayerRepository(pool)
	tm := NewTxManager(pool)

	boom := errors.New("boom")
	err := tm.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, model.Player{
			FirstName: "Tx", LastName: "Probe", Country: "India",
			PlayingRole:  model.RoleBowler,
			BattingStyle: model.BattingRightHanded,
			BowlingStyle: model.BowlingOffSpin,
			IsActive:     true,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	var n int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected rollback to discard the insert, found %d rows", n)
	}
}
