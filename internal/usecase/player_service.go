package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/sports-catalog/internal/domain/player"
	"github.com/riskibarqy/sports-catalog/internal/domain/team"
)

const searchResultLimit = 50

// PlayerDetail is the full single-player view: identity, career
// stats, team history, and recent form.
type PlayerDetail struct {
	Player      player.Player
	Stats       player.Stats
	History     []player.Tenure
	LastMatches []FormEntry
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

func (s *PlayerService) List(ctx context.Context, filter player.ListFilter, page PageRequest) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) Search(ctx context.Context, name string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name query param is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.SearchByName(ctx, name, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	return players, nil
}

// GetDetail loads the player and composes stats, tenure history, and
// the recent-form entries. The three history queries are independent
// reads and run concurrently.
func (s *PlayerService) GetDetail(ctx context.Context, playerID int64) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetDetail")
	defer span.End()

	found, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerDetail{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	var (
		stats   player.Stats
		tenures []player.Tenure
		history []player.EventRow
	)

	fetch := pool.New().WithErrors().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		var err error
		stats, err = s.playerRepo.GetStats(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player stats: %w", err)
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		var err error
		tenures, err = s.playerRepo.ListTenures(ctx, playerID)
		if err != nil {
			return fmt.Errorf("list player tenures: %w", err)
		}
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		var err error
		history, err = s.playerRepo.ListEventHistory(ctx, playerID)
		if err != nil {
			return fmt.Errorf("list player event history: %w", err)
		}
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return PlayerDetail{}, err
	}

	teamNames, err := s.formTeamNames(ctx, history, tenures)
	if err != nil {
		return PlayerDetail{}, err
	}

	return PlayerDetail{
		Player:      found,
		Stats:       stats,
		History:     tenures,
		LastMatches: buildRecentForm(history, tenures, teamNames),
	}, nil
}

// formTeamNames resolves display names for every team the form
// entries can reference.
func (s *PlayerService) formTeamNames(ctx context.Context, history []player.EventRow, tenures []player.Tenure) (map[int64]string, error) {
	ids := make(map[int64]struct{}, len(tenures)+2*len(history))
	for _, row := range history {
		ids[row.HomeTeamID] = struct{}{}
		ids[row.AwayTeamID] = struct{}{}
	}
	for _, tenure := range tenures {
		ids[tenure.TeamID] = struct{}{}
	}
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	teamIDs := make([]int64, 0, len(ids))
	for id := range ids {
		teamIDs = append(teamIDs, id)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("get form team names: %w", err)
	}

	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}
