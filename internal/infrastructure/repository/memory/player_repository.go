package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	tenures []player.Tenure
	events  []match.Event
	matches []match.Summary
}

// NewPlayerRepository carries events and matches so GetStats and
// ListEventHistory can be answered without reaching into other repositories.
func NewPlayerRepository(players []player.Player, tenures []player.Tenure, events []match.Event, matches []match.Summary) *PlayerRepository {
	sorted := append([]player.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &PlayerRepository{players: sorted, tenures: tenures, events: events, matches: matches}
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter, limit, offset int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if filter.Position != "" && item.Position != filter.Position {
			continue
		}
		if filter.TeamID != 0 && !r.currentlyAt(item.ID, filter.TeamID) {
			continue
		}
		matched = append(matched, item)
	}

	return pageOf(matched, limit, offset), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.ID == playerID {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) SearchByName(_ context.Context, name string, limit int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	out := []player.Player{}
	for _, item := range r.players {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListCurrentByTeam(_ context.Context, teamID int64, limit, offset int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if r.currentlyAt(item.ID, teamID) {
			matched = append(matched, item)
		}
	}

	return pageOf(matched, limit, offset), nil
}

func (r *PlayerRepository) GetStats(_ context.Context, playerID int64) (player.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats player.Stats
	for _, e := range r.events {
		if e.PlayerID != playerID {
			continue
		}
		switch e.Type {
		case match.EventGoal:
			stats.GoalsScored++
		case match.EventYellowCard:
			stats.YellowCards++
		case match.EventRedCard:
			stats.RedCards++
		}
	}

	return stats, nil
}

func (r *PlayerRepository) ListTenures(_ context.Context, playerID int64) ([]player.Tenure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []player.Tenure{}
	for _, t := range r.tenures {
		if t.PlayerID == playerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })

	return out, nil
}

func (r *PlayerRepository) ListEventHistory(_ context.Context, playerID int64) ([]player.EventRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byMatch := make(map[int64]match.Summary, len(r.matches))
	for _, m := range r.matches {
		byMatch[m.ID] = m
	}

	out := []player.EventRow{}
	for _, e := range r.events {
		involved := e.PlayerID == playerID ||
			(e.AssistPlayerID != nil && *e.AssistPlayerID == playerID)
		if !involved {
			continue
		}
		m, ok := byMatch[e.MatchID]
		if !ok {
			continue
		}
		out = append(out, player.EventRow{
			EventType:      e.Type,
			Minute:         e.Minute,
			MatchID:        e.MatchID,
			PlayerID:       e.PlayerID,
			AssistPlayerID: e.AssistPlayerID,
			MatchDate:      m.Date,
			CompetitionID:  m.CompetitionID,
			HomeTeamID:     m.HomeTeamID,
			AwayTeamID:     m.AwayTeamID,
			ScoreHome:      m.ScoreHome,
			ScoreAway:      m.ScoreAway,
			Venue:          m.Venue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].Minute < out[j].Minute
	})

	return out, nil
}

func (r *PlayerRepository) currentlyAt(playerID, teamID int64) bool {
	for _, t := range r.tenures {
		if t.PlayerID == playerID && t.TeamID == teamID && t.EndDate == nil {
			return true
		}
	}
	return false
}
