package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/player"
)

type playerTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	DateOfBirth *time.Time     `db:"date_of_birth"`
	Nationality string         `db:"nationality"`
	Position    string         `db:"position"`
	PhotoURL    sql.NullString `db:"photo_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		Name:        m.Name,
		DateOfBirth: m.DateOfBirth,
		Nationality: m.Nationality,
		Position:    m.Position,
		PhotoURL:    nullStringPtr(m.PhotoURL),
	}
}

type tenureTableModel struct {
	PlayerID  int64      `db:"player_id"`
	TeamID    int64      `db:"team_id"`
	TeamName  string     `db:"team_name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
}

func (m tenureTableModel) toDomain() player.Tenure {
	return player.Tenure{
		PlayerID:  m.PlayerID,
		TeamID:    m.TeamID,
		TeamName:  m.TeamName,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
}

// playerEventRowModel is one event of the player's history joined
// with its match row, the input shape for recent-form assembly.
var playerEventRowColumns = []string{
	"e.event_type",
	"e.minute",
	"e.match_id",
	"e.player_id",
	"e.assist_player_id",
	"m.date AS match_date",
	"m.competition_id",
	"m.home_team_id",
	"m.away_team_id",
	"m.score_home",
	"m.score_away",
	"m.venue",
}

type playerEventRowModel struct {
	EventType      string         `db:"event_type"`
	Minute         int            `db:"minute"`
	MatchID        int64          `db:"match_id"`
	PlayerID       int64          `db:"player_id"`
	AssistPlayerID sql.NullInt64  `db:"assist_player_id"`
	MatchDate      time.Time      `db:"match_date"`
	CompetitionID  int64          `db:"competition_id"`
	HomeTeamID     int64          `db:"home_team_id"`
	AwayTeamID     int64          `db:"away_team_id"`
	ScoreHome      sql.NullInt64  `db:"score_home"`
	ScoreAway      sql.NullInt64  `db:"score_away"`
	Venue          sql.NullString `db:"venue"`
}

func (m playerEventRowModel) toDomain() player.EventRow {
	return player.EventRow{
		EventType:      m.EventType,
		Minute:         m.Minute,
		MatchID:        m.MatchID,
		PlayerID:       m.PlayerID,
		AssistPlayerID: nullInt64Ptr(m.AssistPlayerID),
		MatchDate:      m.MatchDate,
		CompetitionID:  m.CompetitionID,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		ScoreHome:      nullIntPtr(m.ScoreHome),
		ScoreAway:      nullIntPtr(m.ScoreAway),
		Venue:          nullStringPtr(m.Venue),
	}
}

type playerStatsModel struct {
	GoalsScored int `db:"goals_scored"`
	YellowCards int `db:"yellow_cards"`
	RedCards    int `db:"red_cards"`
}
