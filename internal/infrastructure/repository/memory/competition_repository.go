package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

type CompetitionRepository struct {
	mu           sync.RWMutex
	competitions []competition.Competition
	matches      []match.Summary
}

// NewCompetitionRepository keeps a match list alongside the competitions so
// ListByTeam can resolve which competitions a team actually appeared in.
func NewCompetitionRepository(competitions []competition.Competition, matches []match.Summary) *CompetitionRepository {
	sorted := append([]competition.Competition(nil), competitions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &CompetitionRepository{competitions: sorted, matches: matches}
}

func (r *CompetitionRepository) List(_ context.Context, filter competition.ListFilter, limit, offset int) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]competition.Competition, 0, len(r.competitions))
	for _, item := range r.competitions {
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.Season != "" && item.Season != filter.Season {
			continue
		}
		matched = append(matched, item)
	}

	return pageOf(matched, limit, offset), nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID int64) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.competitions {
		if item.ID == competitionID {
			return item, true, nil
		}
	}

	return competition.Competition{}, false, nil
}

func (r *CompetitionRepository) ListByTeam(_ context.Context, teamID int64, seasonLabel string) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]struct{})
	for _, m := range r.matches {
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		seen[m.CompetitionID] = struct{}{}
	}

	out := make([]competition.Competition, 0, len(seen))
	for _, item := range r.competitions {
		if _, ok := seen[item.ID]; !ok {
			continue
		}
		if seasonLabel != "" && item.Season != seasonLabel {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}
