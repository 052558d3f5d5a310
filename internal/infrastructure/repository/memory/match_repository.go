package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Summary
	events  []match.Event
}

func NewMatchRepository(matches []match.Summary, events []match.Event) *MatchRepository {
	sorted := append([]match.Summary(nil), matches...)
	// Newest first, same as the SQL repositories.
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	sortedEvents := append([]match.Event(nil), events...)
	sort.Slice(sortedEvents, func(i, j int) bool {
		if sortedEvents[i].Minute != sortedEvents[j].Minute {
			return sortedEvents[i].Minute < sortedEvents[j].Minute
		}
		return sortedEvents[i].ID < sortedEvents[j].ID
	})

	return &MatchRepository{matches: sorted, events: sortedEvents}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter, limit, offset int) ([]match.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]match.Summary, 0, len(r.matches))
	for _, m := range r.matches {
		if filter.CompetitionID != 0 && m.CompetitionID != filter.CompetitionID {
			continue
		}
		if filter.TeamID != 0 && m.HomeTeamID != filter.TeamID && m.AwayTeamID != filter.TeamID {
			continue
		}
		if filter.Date != nil {
			want := filter.Date.UTC()
			got := m.Date.UTC()
			if want.Year() != got.Year() || want.YearDay() != got.YearDay() {
				continue
			}
		}
		matched = append(matched, m)
	}

	return pageOf(matched, limit, offset), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}

	return match.Summary{}, false, nil
}

func (r *MatchRepository) LatestFinishedByTeam(_ context.Context, teamID int64) (match.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Matches are held newest first, so the first played hit wins.
	for _, m := range r.matches {
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		if m.Played() {
			return m, true, nil
		}
	}

	return match.Summary{}, false, nil
}

func (r *MatchRepository) NextUnplayedByTeam(_ context.Context, teamID int64) (match.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		next  match.Summary
		found bool
	)
	for _, m := range r.matches {
		if m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		if m.Played() {
			continue
		}
		if !found || m.Date.Before(next.Date) {
			next = m
			found = true
		}
	}

	return next, found, nil
}

func (r *MatchRepository) ListEvents(_ context.Context, matchID int64, filter match.EventFilter) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []match.Event{}
	for _, e := range r.events {
		if e.MatchID != matchID {
			continue
		}
		if filter.EventType != "" && e.Type != filter.EventType {
			continue
		}
		if filter.PlayerID != 0 && e.PlayerID != filter.PlayerID {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

func (r *MatchRepository) ListEventsByMatchIDs(_ context.Context, matchIDs []int64, kinds []string) ([]match.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wantMatch := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wantMatch[id] = struct{}{}
	}
	wantKind := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		wantKind[kind] = struct{}{}
	}

	out := []match.Event{}
	for _, e := range r.events {
		if _, ok := wantMatch[e.MatchID]; !ok {
			continue
		}
		if _, ok := wantKind[e.Type]; !ok {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}
