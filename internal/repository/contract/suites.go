// Package contract defines storage-agnostic test suites for the player
// repository. Any implementation, Postgres or fake, must pass them.
package contract

import (
	"context"
	"testing"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
)

// PlayerFactory builds a fresh, empty repository per subtest.
type PlayerFactory func(t *testing.T) (repo repository.PlayerRepository, cleanup func())

func strPtr(s string) *string                        { return &s }
func boolPtr(b bool) *bool                           { return &b }
func intPtr(n int) *int                              { return &n }
func rolePtr(r model.PlayingRole) *model.PlayingRole { return &r }

func seedPlayer(firstName, lastName, country string, role model.PlayingRole, active bool) model.Player {
	return model.Player{
		FirstName:    firstName,
		LastName:     lastName,
		Country:      country,
		PlayingRole:  role,
		BattingStyle: model.BattingRightHanded,
		BowlingStyle: model.BowlingRightArmMedium,
		IsActive:     active,
	}
}

func RunPlayerRepositoryContract(t *testing.T, makeRepo PlayerFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		in := seedPlayer("Virat", "Kohli", "India", model.RoleBatsman, true)
		in.JerseyNumber = intPtr(18)
		created, err := repo.Create(ctx, in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 {
			t.Fatalf("expected assigned id, got 0")
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.FirstName != "Virat" || got.Country != "India" || !got.IsActive {
			t.Fatalf("mismatch: %+v", got)
		}
		if got.JerseyNumber == nil || *got.JerseyNumber != 18 {
			t.Fatalf("jersey number not persisted: %+v", got.JerseyNumber)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update_full_row", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedPlayer("Rohit", "Sharma", "India", model.RoleBatsman, true))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		created.Country = "Australia"
		created.IsActive = false
		updated, err := repo.Update(ctx, created)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Country != "Australia" || updated.IsActive {
			t.Fatalf("update not applied: %+v", updated)
		}
		missing := seedPlayer("Ghost", "Player", "Nowhere", model.RoleBowler, true)
		missing.ID = 424242
		if _, err := repo.Update(ctx, missing); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound updating missing row, got %v", err)
		}
	})

	t.Run("delete_semantics", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedPlayer("Jasprit", "Bumrah", "India", model.RoleBowler, true))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, created.ID); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, created.ID); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			p := seedPlayer("P", "Q-"+string(rune('A'+i)), "India", model.RoleBowler, true)
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})

	t.Run("filter_conjunction", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seed := []model.Player{
			seedPlayer("Virat", "Kohli", "India", model.RoleBatsman, true),
			seedPlayer("Ravindra", "Jadeja", "India", model.RoleAllRounder, true),
			seedPlayer("Pat", "Cummins", "Australia", model.RoleBowler, true),
			seedPlayer("Retired", "Legend", "India", model.RoleBatsman, false),
		}
		for _, p := range seed {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		page := repository.Page{Limit: 10}

		byCountry, err := repo.ListFiltered(ctx, repository.PlayerFilter{Country: strPtr("India")}, page)
		if err != nil {
			t.Fatalf("filter country: %v", err)
		}
		if byCountry.Total != 3 {
			t.Fatalf("country filter: want 3, got %d", byCountry.Total)
		}

		all3, err := repo.ListFiltered(ctx, repository.PlayerFilter{
			Country:  strPtr("India"),
			Role:     rolePtr(model.RoleBatsman),
			IsActive: boolPtr(true),
		}, page)
		if err != nil {
			t.Fatalf("filter all: %v", err)
		}
		if all3.Total != 1 || all3.Items[0].FirstName != "Virat" {
			t.Fatalf("conjunction filter: %+v", all3)
		}

		// No predicates set must behave as an unfiltered listing, never as
		// matching rows with NULL columns.
		none, err := repo.ListFiltered(ctx, repository.PlayerFilter{}, page)
		if err != nil {
			t.Fatalf("filter none: %v", err)
		}
		if none.Total != 4 {
			t.Fatalf("empty filter: want 4, got %d", none.Total)
		}
	})

	t.Run("search_or_semantics", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, p := range []model.Player{
			seedPlayer("Virat", "Kohli", "India", model.RoleBatsman, true),
			seedPlayer("Mitchell", "Starc", "Australia", model.RoleBowler, true),
		} {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		byLast, err := repo.SearchByName(ctx, "Koh")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(byLast) != 1 || byLast[0].LastName != "Kohli" {
			t.Fatalf("last-name search: %+v", byLast)
		}
		byFirst, err := repo.SearchByName(ctx, "vir")
		if err != nil {
			t.Fatalf("search ci: %v", err)
		}
		if len(byFirst) != 1 || byFirst[0].FirstName != "Virat" {
			t.Fatalf("case-insensitive first-name search: %+v", byFirst)
		}
		all, err := repo.SearchByName(ctx, "")
		if err != nil {
			t.Fatalf("search empty: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("empty term must match all, got %d", len(all))
		}
		miss, err := repo.SearchByName(ctx, "zzz")
		if err != nil {
			t.Fatalf("search miss: %v", err)
		}
		if len(miss) != 0 {
			t.Fatalf("expected no matches, got %d", len(miss))
		}
	})

	t.Run("counts_match_lists", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, p := range []model.Player{
			seedPlayer("A", "B", "India", model.RoleBowler, true),
			seedPlayer("C", "D", "India", model.RoleBatsman, true),
			seedPlayer("E", "F", "England", model.RoleBowler, true),
		} {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		for _, country := range []string{"India", "England", "Atlantis"} {
			n, err := repo.CountByCountry(ctx, country)
			if err != nil {
				t.Fatalf("count %s: %v", country, err)
			}
			list, err := repo.ListByCountry(ctx, country)
			if err != nil {
				t.Fatalf("list %s: %v", country, err)
			}
			if int(n) != len(list) {
				t.Fatalf("count/list mismatch for %s: %d vs %d", country, n, len(list))
			}
		}
		n, err := repo.CountByRole(ctx, model.RoleWicketKeeper)
		if err != nil {
			t.Fatalf("count role: %v", err)
		}
		if n != 0 {
			t.Fatalf("unknown role must count 0, got %d", n)
		}
	})

	t.Run("jersey_number_lookup", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		p := seedPlayer("MS", "Dhoni", "India", model.RoleWicketKeeper, true)
		p.JerseyNumber = intPtr(7)
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
		got, err := repo.GetByJerseyNumber(ctx, 7)
		if err != nil {
			t.Fatalf("get by jersey: %v", err)
		}
		if got.LastName != "Dhoni" {
			t.Fatalf("mismatch: %+v", got)
		}
		if _, err := repo.GetByJerseyNumber(ctx, 99); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

// RunPingerContract verifies the readiness probe against a live store.
func RunPingerContract(t *testing.T, make func(t *testing.T) (repository.Pinger, func())) {
	t.Helper()
	t.Run("ping", func(t *testing.T) {
		p, cleanup := make(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
