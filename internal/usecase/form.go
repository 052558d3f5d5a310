package usecase

import (
	"fmt"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/player"
)

// recentFormMatches is how many distinct matches a player's recent
// form covers.
const recentFormMatches = 5

// FormEvent is one of the player's own events inside a form entry.
type FormEvent struct {
	Type           string
	Minute         int
	PlayerID       int64
	AssistPlayerID *int64
}

// FormEntry summarizes one recent match from the player's
// perspective. Team, Opponent, and Result come from the tenure
// covering the match date; when no tenure covers it they stay nil and
// the match is still included.
type FormEntry struct {
	MatchID       int64
	Date          time.Time
	CompetitionID int64
	HomeTeamID    int64
	AwayTeamID    int64
	ScoreHome     *int
	ScoreAway     *int
	Venue         *string

	TeamID       *int64
	TeamName     *string
	OpponentID   *int64
	OpponentName *string
	Result       *string

	Events []FormEvent
}

// buildRecentForm walks the player's event history (ordered by match
// date descending, minute ascending) and assembles the most recent
// distinct matches, up to recentFormMatches, each with the player's
// own events and a team/opponent/result resolved from the
// contemporaneous tenure, not the current one.
func buildRecentForm(rows []player.EventRow, tenures []player.Tenure, teamNames map[int64]string) []FormEntry {
	entries := make([]FormEntry, 0, recentFormMatches)
	index := make(map[int64]int, recentFormMatches)

	for _, row := range rows {
		at, seen := index[row.MatchID]
		if !seen {
			if len(entries) == recentFormMatches {
				continue
			}
			entry := FormEntry{
				MatchID:       row.MatchID,
				Date:          row.MatchDate,
				CompetitionID: row.CompetitionID,
				HomeTeamID:    row.HomeTeamID,
				AwayTeamID:    row.AwayTeamID,
				ScoreHome:     row.ScoreHome,
				ScoreAway:     row.ScoreAway,
				Venue:         row.Venue,
				Events:        []FormEvent{},
			}
			resolveFormSides(&entry, tenures, teamNames)
			entries = append(entries, entry)
			at = len(entries) - 1
			index[row.MatchID] = at
		}

		entries[at].Events = append(entries[at].Events, FormEvent{
			Type:           row.EventType,
			Minute:         row.Minute,
			PlayerID:       row.PlayerID,
			AssistPlayerID: row.AssistPlayerID,
		})
	}

	return entries
}

// resolveFormSides fills the tenure-dependent fields. The result is
// oriented to the player's side ("playerTeamScore-opponentScore"),
// not home-away order.
func resolveFormSides(entry *FormEntry, tenures []player.Tenure, teamNames map[int64]string) {
	tenure, ok := player.TenureAt(tenures, entry.Date)
	if !ok {
		return
	}

	teamID := tenure.TeamID
	var opponentID int64
	var teamScore, opponentScore *int
	switch teamID {
	case entry.HomeTeamID:
		opponentID = entry.AwayTeamID
		teamScore, opponentScore = entry.ScoreHome, entry.ScoreAway
	case entry.AwayTeamID:
		opponentID = entry.HomeTeamID
		teamScore, opponentScore = entry.ScoreAway, entry.ScoreHome
	default:
		// Tenure team played in neither side of this match; treat as a
		// data gap and leave the fields null.
		return
	}

	entry.TeamID = &teamID
	teamName := tenure.TeamName
	if teamName == "" {
		teamName = teamNames[teamID]
	}
	if teamName != "" {
		entry.TeamName = &teamName
	}

	entry.OpponentID = &opponentID
	if opponentName, ok := teamNames[opponentID]; ok {
		entry.OpponentName = &opponentName
	}

	if teamScore != nil && opponentScore != nil {
		result := fmt.Sprintf("%d-%d", *teamScore, *opponentScore)
		entry.Result = &result
	}
}
