package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

// MatchView is a match summary with its derived status. Status is
// recomputed on every read, never persisted.
type MatchView struct {
	match.Summary
	Status string
}

// MatchWithEvents is a match view plus its events partitioned by
// kind.
type MatchWithEvents struct {
	MatchView
	Events match.GroupedEvents
}

type MatchService struct {
	matchRepo match.Repository
	clock     clockwork.Clock
}

func NewMatchService(matchRepo match.Repository, clock clockwork.Clock) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		clock:     clock,
	}
}

func (s *MatchService) List(ctx context.Context, filter match.ListFilter, page PageRequest) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return buildMatchViews(matches, s.clock.Now()), nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	found, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Summary{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Summary{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return found, nil
}

// GetView is Get with the status derived at read time.
func (s *MatchService) GetView(ctx context.Context, matchID int64) (MatchView, error) {
	found, err := s.Get(ctx, matchID)
	if err != nil {
		return MatchView{}, err
	}

	return MatchView{
		Summary: found,
		Status:  found.Status(s.clock.Now()),
	}, nil
}

func (s *MatchService) ListEvents(ctx context.Context, matchID int64, filter match.EventFilter) ([]match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListEvents")
	defer span.End()

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	events, err := s.matchRepo.ListEvents(ctx, matchID, filter)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}

	return events, nil
}

// GetDetails composes the match with its status and events grouped
// by kind (goals, yellow cards, red cards).
func (s *MatchService) GetDetails(ctx context.Context, matchID int64) (MatchWithEvents, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetDetails")
	defer span.End()

	found, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchWithEvents{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchWithEvents{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	kinds := []string{match.EventGoal, match.EventYellowCard, match.EventRedCard}
	events, err := s.matchRepo.ListEventsByMatchIDs(ctx, []int64{matchID}, kinds)
	if err != nil {
		return MatchWithEvents{}, fmt.Errorf("list match events: %w", err)
	}

	grouped := match.GroupByKind(events, []int64{matchID}, kinds)

	return MatchWithEvents{
		MatchView: MatchView{
			Summary: found,
			Status:  found.Status(s.clock.Now()),
		},
		Events: grouped[matchID],
	}, nil
}

// buildMatchViews derives the status of every summary at one shared
// instant so a single page is classified consistently.
func buildMatchViews(summaries []match.Summary, now time.Time) []MatchView {
	views := make([]MatchView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, MatchView{
			Summary: summary,
			Status:  summary.Status(now),
		})
	}
	return views
}

// attachEvents fetches events for exactly the given page of views and
// groups them per match. Scoping the query by the page's match IDs is
// what guarantees no in-page match loses events, regardless of event
// density.
func attachEvents(ctx context.Context, repo match.Repository, views []MatchView, kinds []string) ([]MatchWithEvents, error) {
	matchIDs := make([]int64, 0, len(views))
	for _, view := range views {
		matchIDs = append(matchIDs, view.ID)
	}

	var events []match.Event
	if len(matchIDs) > 0 {
		var err error
		events, err = repo.ListEventsByMatchIDs(ctx, matchIDs, kinds)
		if err != nil {
			return nil, fmt.Errorf("list events for matches: %w", err)
		}
	}

	grouped := match.GroupByKind(events, matchIDs, kinds)

	out := make([]MatchWithEvents, 0, len(views))
	for _, view := range views {
		out = append(out, MatchWithEvents{
			MatchView: view,
			Events:    grouped[view.ID],
		})
	}
	return out, nil
}
