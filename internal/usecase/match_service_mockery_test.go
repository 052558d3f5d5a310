package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	matchmock "github.com/riskibarqy/sports-catalog/internal/mocks/domain/match"
)

func TestMatchService_GetDetails_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(matchRepo, clockwork.NewFakeClockAt(now))

	home, away := 2, 1
	summary := match.Summary{
		Match: match.Match{
			ID:        301,
			Date:      time.Date(2025, 12, 10, 20, 0, 0, 0, time.UTC),
			ScoreHome: &home,
			ScoreAway: &away,
		},
	}
	events := []match.Event{
		{ID: 1, MatchID: 301, Type: match.EventGoal, Minute: 12},
		{ID: 2, MatchID: 301, Type: match.EventYellowCard, Minute: 34},
	}

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(301)).
		Return(summary, true, nil).
		Once()
	matchRepo.
		On("ListEventsByMatchIDs",
			mock.MatchedBy(func(v context.Context) bool { return v != nil }),
			[]int64{301},
			[]string{match.EventGoal, match.EventYellowCard, match.EventRedCard},
		).
		Return(events, nil).
		Once()

	got, err := service.GetDetails(ctx, 301)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if got.Status != match.StatusFT {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if len(got.Events[match.EventGoal]) != 1 {
		t.Fatalf("unexpected goal count: %d", len(got.Events[match.EventGoal]))
	}
	if got.Events[match.EventRedCard] == nil {
		t.Fatalf("red card partition should be present even when empty")
	}
}

func TestMatchService_GetDetails_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(matchRepo, clockwork.NewFakeClockAt(time.Now()))

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(999)).
		Return(match.Summary{}, false, nil).
		Once()

	_, err := service.GetDetails(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
