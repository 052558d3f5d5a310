package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/player"
	"github.com/riskibarqy/sports-catalog/internal/domain/season"
	"github.com/riskibarqy/sports-catalog/internal/domain/team"
)

// HomeMatch is one homepage match slot. Events carries the flat
// goal/corner timeline of the latest finished match; KickoffIn is the
// countdown string of the next one.
type HomeMatch struct {
	Summary   match.Summary
	Status    string
	Events    []match.Event
	KickoffIn string
}

// Homepage is the team landing view: last finished match, next
// scheduled one, and the competitions of the current season(s).
type Homepage struct {
	Latest       *HomeMatch
	Next         *HomeMatch
	Competitions []competition.Competition
}

type TeamService struct {
	teamRepo        team.Repository
	playerRepo      player.Repository
	matchRepo       match.Repository
	competitionRepo competition.Repository
	clock           clockwork.Clock
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	competitionRepo competition.Repository,
	clock clockwork.Clock,
) *TeamService {
	return &TeamService{
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		competitionRepo: competitionRepo,
		clock:           clock,
	}
}

func (s *TeamService) List(ctx context.Context, page PageRequest) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	found, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return found, nil
}

func (s *TeamService) ListPlayers(ctx context.Context, teamID int64, page PageRequest) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListPlayers")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListCurrentByTeam(ctx, teamID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}

	return players, nil
}

func (s *TeamService) ListMatches(ctx context.Context, teamID int64, filter match.ListFilter, page PageRequest) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListMatches")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	filter.TeamID = teamID
	matches, err := s.matchRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list team matches: %w", err)
	}

	return buildMatchViews(matches, s.clock.Now()), nil
}

// ListMatchesWithEvents returns the team's match page with goal and
// red card partitions per match.
func (s *TeamService) ListMatchesWithEvents(ctx context.Context, teamID int64, filter match.ListFilter, page PageRequest) ([]MatchWithEvents, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListMatchesWithEvents")
	defer span.End()

	views, err := s.ListMatches(ctx, teamID, filter, page)
	if err != nil {
		return nil, err
	}

	kinds := []string{match.EventGoal, match.EventRedCard}
	return attachEvents(ctx, s.matchRepo, views, kinds)
}

func (s *TeamService) ListCompetitions(ctx context.Context, teamID int64, seasonLabel string) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListCompetitions")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	competitions, err := s.competitionRepo.ListByTeam(ctx, teamID, seasonLabel)
	if err != nil {
		return nil, fmt.Errorf("list team competitions: %w", err)
	}

	return competitions, nil
}

// GetHomepage composes the team landing view. The latest match (with
// its events), the next match, and the competition list are
// independent reads and run concurrently.
func (s *TeamService) GetHomepage(ctx context.Context, teamID int64) (Homepage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetHomepage")
	defer span.End()

	if err := s.requireTeam(ctx, teamID); err != nil {
		return Homepage{}, err
	}

	var (
		latest       *HomeMatch
		next         *HomeMatch
		competitions []competition.Competition
	)

	fetch := pool.New().WithErrors().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		summary, exists, err := s.matchRepo.LatestFinishedByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get latest finished match: %w", err)
		}
		if !exists {
			return nil
		}

		// The event query depends on the match ID, so it stays in this
		// goroutine.
		events, err := s.matchRepo.ListEventsByMatchIDs(ctx, []int64{summary.ID}, []string{match.EventGoal, match.EventCorner})
		if err != nil {
			return fmt.Errorf("list latest match events: %w", err)
		}

		latest = &HomeMatch{
			Summary: summary,
			Status:  summary.Status(s.clock.Now()),
			Events:  events,
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		summary, exists, err := s.matchRepo.NextUnplayedByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get next match: %w", err)
		}
		if !exists {
			return nil
		}

		now := s.clock.Now()
		next = &HomeMatch{
			Summary:   summary,
			Status:    summary.Status(now),
			KickoffIn: formatKickoffIn(summary.Date, now),
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		all, err := s.competitionRepo.ListByTeam(ctx, teamID, "")
		if err != nil {
			return fmt.Errorf("list homepage competitions: %w", err)
		}
		competitions = currentSeasonCompetitions(all)
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return Homepage{}, err
	}

	return Homepage{
		Latest:       latest,
		Next:         next,
		Competitions: competitions,
	}, nil
}

func (s *TeamService) requireTeam(ctx context.Context, teamID int64) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return nil
}

// currentSeasonCompetitions keeps the competitions whose season label
// belongs to the current season set resolved over all labels present.
func currentSeasonCompetitions(all []competition.Competition) []competition.Competition {
	labels := make([]string, 0, len(all))
	for _, comp := range all {
		labels = append(labels, comp.Season)
	}

	current := make(map[string]struct{})
	for _, label := range season.Current(labels) {
		current[label] = struct{}{}
	}

	out := make([]competition.Competition, 0, len(all))
	for _, comp := range all {
		if _, ok := current[comp.Season]; ok {
			out = append(out, comp)
		}
	}
	return out
}

// formatKickoffIn renders the countdown to kickoff as "<days>d
// <hours>h", clamped at zero once kickoff has passed.
func formatKickoffIn(kickoff, now time.Time) string {
	diff := kickoff.Sub(now)
	if diff < 0 {
		diff = 0
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}
