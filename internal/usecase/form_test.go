package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/player"
)

func TestBuildRecentForm_TenureGap(t *testing.T) {
	// The player's only tenure ended before this match was played.
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	tenures := []player.Tenure{
		{PlayerID: 7, TeamID: 1, TeamName: "Arsenal", StartDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
	}
	score := 2
	rows := []player.EventRow{
		{
			EventType:  match.EventGoal,
			Minute:     40,
			MatchID:    55,
			PlayerID:   7,
			MatchDate:  time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 1,
			AwayTeamID: 2,
			ScoreHome:  &score,
			ScoreAway:  &score,
		},
	}

	got := buildRecentForm(rows, tenures, map[int64]string{1: "Arsenal", 2: "Chelsea"})
	if len(got) != 1 {
		t.Fatalf("expected the match to be kept, got %d entries", len(got))
	}

	entry := got[0]
	if entry.TeamID != nil || entry.TeamName != nil || entry.OpponentID != nil || entry.Result != nil {
		t.Fatalf("tenure gap should leave side fields null: %+v", entry)
	}
	if len(entry.Events) != 1 {
		t.Fatalf("own events still belong to the entry, got %d", len(entry.Events))
	}
}

func TestBuildRecentForm_TenureTeamNotInMatch(t *testing.T) {
	tenures := []player.Tenure{
		{PlayerID: 7, TeamID: 9, TeamName: "Loan Club", StartDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	rows := []player.EventRow{
		{
			EventType:  match.EventGoal,
			Minute:     12,
			MatchID:    56,
			PlayerID:   7,
			MatchDate:  time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 1,
			AwayTeamID: 2,
		},
	}

	got := buildRecentForm(rows, tenures, nil)
	if len(got) != 1 {
		t.Fatalf("expected the match to be kept, got %d entries", len(got))
	}
	if got[0].TeamID != nil || got[0].Result != nil {
		t.Fatalf("mismatched tenure team should leave side fields null: %+v", got[0])
	}
}

func TestBuildRecentForm_UnplayedMatchHasNoResult(t *testing.T) {
	tenures := []player.Tenure{
		{PlayerID: 7, TeamID: 1, TeamName: "Arsenal", StartDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	rows := []player.EventRow{
		{
			EventType:  match.EventGoal,
			Minute:     12,
			MatchID:    57,
			PlayerID:   7,
			MatchDate:  time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC),
			HomeTeamID: 1,
			AwayTeamID: 2,
		},
	}

	got := buildRecentForm(rows, tenures, map[int64]string{1: "Arsenal", 2: "Chelsea"})
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0].TeamName == nil || *got[0].TeamName != "Arsenal" {
		t.Fatalf("unexpected team: %v", got[0].TeamName)
	}
	if got[0].Result != nil {
		t.Fatalf("no score recorded, result must stay null: %v", got[0].Result)
	}
}
