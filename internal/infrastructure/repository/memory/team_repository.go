package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/sports-catalog/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	sorted := append([]team.Team(nil), teams...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &TeamRepository{teams: sorted}
}

func (r *TeamRepository) List(_ context.Context, limit, offset int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return pageOf(r.teams, limit, offset), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, teamIDs []int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	out := make([]team.Team, 0, len(wanted))
	for _, item := range r.teams {
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

// pageOf applies limit/offset the way a SQL page would.
func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
