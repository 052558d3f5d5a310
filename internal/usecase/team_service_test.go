package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/infrastructure/repository/memory"
)

func newTeamServiceForTest() *TeamService {
	matches := memory.SeedMatches()
	return NewTeamService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedTenures(), memory.SeedEvents(), matches),
		memory.NewMatchRepository(matches, memory.SeedEvents()),
		memory.NewCompetitionRepository(memory.SeedCompetitions(), matches),
		clockwork.NewFakeClockAt(memory.SeedNow),
	)
}

func TestTeamService_GetHomepage(t *testing.T) {
	service := newTeamServiceForTest()

	got, err := service.GetHomepage(context.Background(), memory.TeamIDArsenal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Latest == nil {
		t.Fatal("expected a latest match")
	}
	if got.Latest.Summary.ID != memory.MatchIDLondonDerby {
		t.Fatalf("unexpected latest match: got=%d want=%d", got.Latest.Summary.ID, memory.MatchIDLondonDerby)
	}
	// Goals and corners only; the yellow card in that match stays out.
	if len(got.Latest.Events) != 4 {
		t.Fatalf("unexpected latest event count: got=%d want=4", len(got.Latest.Events))
	}
	for _, e := range got.Latest.Events {
		if e.Type != match.EventGoal && e.Type != match.EventCorner {
			t.Fatalf("unexpected event type on homepage: %s", e.Type)
		}
	}

	if got.Next == nil {
		t.Fatal("expected a next match")
	}
	if got.Next.Summary.ID != memory.MatchIDNextDerby {
		t.Fatalf("unexpected next match: got=%d want=%d", got.Next.Summary.ID, memory.MatchIDNextDerby)
	}
	if got.Next.KickoffIn != "7d 5h" {
		t.Fatalf("unexpected kickoff countdown: got=%q want=%q", got.Next.KickoffIn, "7d 5h")
	}

	// Arsenal also appeared in last season's league; only the current
	// season's competitions make the homepage.
	if len(got.Competitions) != 2 {
		t.Fatalf("unexpected competition count: got=%d want=2", len(got.Competitions))
	}
	for _, comp := range got.Competitions {
		if comp.Season != "2025/26" {
			t.Fatalf("stale season on homepage: %s", comp.Season)
		}
	}
}

func TestTeamService_GetHomepage_UnknownTeam(t *testing.T) {
	service := newTeamServiceForTest()

	_, err := service.GetHomepage(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListMatchesWithEvents(t *testing.T) {
	service := newTeamServiceForTest()

	page := NewPageRequest(1, 3, 10)
	got, err := service.ListMatchesWithEvents(context.Background(), memory.TeamIDArsenal, match.ListFilter{}, page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected page size: got=%d want=3", len(got))
	}

	// Newest first: the unplayed derby leads the page.
	if got[0].ID != memory.MatchIDNextDerby {
		t.Fatalf("unexpected first match: got=%d", got[0].ID)
	}
	if got[0].Status != match.StatusUpcoming {
		t.Fatalf("unexpected status: got=%s want=%s", got[0].Status, match.StatusUpcoming)
	}
	if got[1].Status != match.StatusFT {
		t.Fatalf("unexpected status: got=%s want=%s", got[1].Status, match.StatusFT)
	}

	for _, item := range got {
		if len(item.Events) != 2 {
			t.Fatalf("expected goal and red card partitions, got %d", len(item.Events))
		}
		if item.Events[match.EventGoal] == nil {
			t.Fatal("goal partition missing")
		}
		if item.Events[match.EventRedCard] == nil {
			t.Fatal("red card partition missing")
		}
		if _, ok := item.Events[match.EventYellowCard]; ok {
			t.Fatal("yellow card partition should not be present on team listings")
		}
	}

	// The London derby has three goals but no red cards.
	if n := len(got[1].Events[match.EventGoal]); n != 3 {
		t.Fatalf("unexpected goal count: got=%d want=3", n)
	}
	if n := len(got[1].Events[match.EventRedCard]); n != 0 {
		t.Fatalf("unexpected red card count: got=%d want=0", n)
	}
}

func TestTeamService_ListPlayers(t *testing.T) {
	service := newTeamServiceForTest()

	got, err := service.ListPlayers(context.Background(), memory.TeamIDArsenal, NewPageRequest(1, 20, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected roster size: got=%d want=2", len(got))
	}
	if got[0].Name != "Bukayo Saka" || got[1].Name != "Martin Odegaard" {
		t.Fatalf("unexpected roster order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestFormatKickoffIn(t *testing.T) {
	now := time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)

	t.Run("future kickoff", func(t *testing.T) {
		kickoff := now.Add(49*time.Hour + 30*time.Minute)
		if got := formatKickoffIn(kickoff, now); got != "2d 1h" {
			t.Fatalf("unexpected countdown: got=%q want=%q", got, "2d 1h")
		}
	})

	t.Run("clamped once kickoff passed", func(t *testing.T) {
		kickoff := now.Add(-3 * time.Hour)
		if got := formatKickoffIn(kickoff, now); got != "0d 0h" {
			t.Fatalf("unexpected countdown: got=%q want=%q", got, "0d 0h")
		}
	})
}
