package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/infrastructure/repository/memory"
)

func newCompetitionServiceForTest() *CompetitionService {
	matches := memory.SeedMatches()
	return NewCompetitionService(
		memory.NewCompetitionRepository(memory.SeedCompetitions(), matches),
		memory.NewMatchRepository(matches, memory.SeedEvents()),
		clockwork.NewFakeClockAt(memory.SeedNow),
	)
}

func TestCompetitionService_List(t *testing.T) {
	service := newCompetitionServiceForTest()

	t.Run("filter by type", func(t *testing.T) {
		got, err := service.List(context.Background(), competition.ListFilter{Type: competition.TypeCup}, NewPageRequest(1, 10, 10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "FA Cup" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("filter by season", func(t *testing.T) {
		got, err := service.List(context.Background(), competition.ListFilter{Season: "2024/25"}, NewPageRequest(1, 10, 10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != memory.CompetitionIDPremierLeaguePrev {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestCompetitionService_Get_UnknownCompetition(t *testing.T) {
	service := newCompetitionServiceForTest()

	_, err := service.Get(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompetitionService_ListMatchesWithEvents(t *testing.T) {
	service := newCompetitionServiceForTest()

	got, err := service.ListMatchesWithEvents(context.Background(), memory.CompetitionIDPremierLeague, match.ListFilter{}, NewPageRequest(1, 2, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected page size: got=%d want=2", len(got))
	}
	if got[0].ID != memory.MatchIDNextDerby || got[1].ID != memory.MatchIDLondonDerby {
		t.Fatalf("unexpected page order: %d, %d", got[0].ID, got[1].ID)
	}

	// Competition listings partition all four kinds.
	for _, item := range got {
		if len(item.Events) != 4 {
			t.Fatalf("expected four partitions, got %d", len(item.Events))
		}
	}
	if n := len(got[1].Events[match.EventCorner]); n != 1 {
		t.Fatalf("unexpected corner count: got=%d want=1", n)
	}
	for kind, events := range got[0].Events {
		if len(events) != 0 {
			t.Fatalf("expected empty %s partition on the unplayed match, got %d", kind, len(events))
		}
	}

	// The page after the last one is empty, not an error.
	empty, err := service.ListMatchesWithEvents(context.Background(), memory.CompetitionIDPremierLeague, match.ListFilter{}, NewPageRequest(9, 10, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d", len(empty))
	}
}
