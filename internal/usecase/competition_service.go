package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

type CompetitionService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	clock           clockwork.Clock
}

func NewCompetitionService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	clock clockwork.Clock,
) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		clock:           clock,
	}
}

func (s *CompetitionService) List(ctx context.Context, filter competition.ListFilter, page PageRequest) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	competitions, err := s.competitionRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return competitions, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID int64) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get")
	defer span.End()

	found, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%d", ErrNotFound, competitionID)
	}

	return found, nil
}

func (s *CompetitionService) ListMatches(ctx context.Context, competitionID int64, filter match.ListFilter, page PageRequest) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListMatches")
	defer span.End()

	if err := s.requireCompetition(ctx, competitionID); err != nil {
		return nil, err
	}

	filter.CompetitionID = competitionID
	matches, err := s.matchRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list competition matches: %w", err)
	}

	return buildMatchViews(matches, s.clock.Now()), nil
}

// ListMatchesWithEvents returns the competition's match page with
// events partitioned across all four kinds.
func (s *CompetitionService) ListMatchesWithEvents(ctx context.Context, competitionID int64, filter match.ListFilter, page PageRequest) ([]MatchWithEvents, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.ListMatchesWithEvents")
	defer span.End()

	views, err := s.ListMatches(ctx, competitionID, filter, page)
	if err != nil {
		return nil, err
	}

	kinds := []string{match.EventGoal, match.EventYellowCard, match.EventRedCard, match.EventCorner}
	return attachEvents(ctx, s.matchRepo, views, kinds)
}

func (s *CompetitionService) requireCompetition(ctx context.Context, competitionID int64) error {
	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: competition=%d", ErrNotFound, competitionID)
	}
	return nil
}
