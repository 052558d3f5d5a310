package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/sports-catalog/internal/infrastructure/repository/memory"
)

func newPlayerServiceForTest() *PlayerService {
	matches := memory.SeedMatches()
	return NewPlayerService(
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedTenures(), memory.SeedEvents(), matches),
		memory.NewTeamRepository(memory.SeedTeams()),
	)
}

func TestPlayerService_GetDetail(t *testing.T) {
	service := newPlayerServiceForTest()

	got, err := service.GetDetail(context.Background(), memory.PlayerIDSaka)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Player.Name != "Bukayo Saka" {
		t.Fatalf("unexpected player: %s", got.Player.Name)
	}
	if got.Stats.GoalsScored != 8 {
		t.Fatalf("unexpected goals: got=%d want=8", got.Stats.GoalsScored)
	}
	if got.Stats.YellowCards != 1 {
		t.Fatalf("unexpected yellow cards: got=%d want=1", got.Stats.YellowCards)
	}
	if got.Stats.RedCards != 0 {
		t.Fatalf("unexpected red cards: got=%d want=0", got.Stats.RedCards)
	}
	if len(got.History) != 1 {
		t.Fatalf("unexpected tenure count: got=%d want=1", len(got.History))
	}

	// Saka appears in seven seeded matches; form keeps the five most
	// recent distinct ones, newest first.
	if len(got.LastMatches) != recentFormMatches {
		t.Fatalf("unexpected form length: got=%d want=%d", len(got.LastMatches), recentFormMatches)
	}
	wantOrder := []int64{
		memory.MatchIDLondonDerby,
		memory.MatchIDAnfieldDraw,
		memory.MatchIDHomeDraw,
		memory.MatchIDAwayWin,
		memory.MatchIDHomeWin,
	}
	for i, want := range wantOrder {
		if got.LastMatches[i].MatchID != want {
			t.Fatalf("unexpected form order at %d: got=%d want=%d", i, got.LastMatches[i].MatchID, want)
		}
	}

	derby := got.LastMatches[0]
	if len(derby.Events) != 2 {
		t.Fatalf("unexpected own event count in derby: got=%d want=2", len(derby.Events))
	}
	if derby.TeamName == nil || *derby.TeamName != "Arsenal" {
		t.Fatalf("unexpected form team: %v", derby.TeamName)
	}
	if derby.Result == nil || *derby.Result != "2-1" {
		t.Fatalf("unexpected derby result: %v", derby.Result)
	}

	// Away win at Goodison: result is oriented to the player's side.
	awayWin := got.LastMatches[3]
	if awayWin.Result == nil || *awayWin.Result != "3-1" {
		t.Fatalf("unexpected away result: %v", awayWin.Result)
	}
	if awayWin.OpponentName == nil || *awayWin.OpponentName != "Everton" {
		t.Fatalf("unexpected opponent: %v", awayWin.OpponentName)
	}
}

func TestPlayerService_GetDetail_UnknownPlayer(t *testing.T) {
	service := newPlayerServiceForTest()

	_, err := service.GetDetail(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Search(t *testing.T) {
	service := newPlayerServiceForTest()

	t.Run("case insensitive substring", func(t *testing.T) {
		got, err := service.Search(context.Background(), "sala")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Mohamed Salah" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("blank query rejected", func(t *testing.T) {
		_, err := service.Search(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
