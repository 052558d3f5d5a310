package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
)

// matchSummaryColumns is the shared projection for every query that
// returns match summaries: the match row joined with its competition
// and both team rows.
var matchSummaryColumns = []string{
	"m.id",
	"m.competition_id",
	"m.date",
	"m.venue",
	"m.home_team_id",
	"m.away_team_id",
	"m.score_home",
	"m.score_away",
	"c.name AS competition_name",
	"c.type AS competition_type",
	"c.season AS competition_season",
	"h.name AS home_team_name",
	"h.short_name AS home_team_short",
	"h.logo_url AS home_team_logo_url",
	"h.country AS home_team_country",
	"a.name AS away_team_name",
	"a.short_name AS away_team_short",
	"a.logo_url AS away_team_logo_url",
	"a.country AS away_team_country",
}

type matchSummaryModel struct {
	ID            int64          `db:"id"`
	CompetitionID int64          `db:"competition_id"`
	Date          time.Time      `db:"date"`
	Venue         sql.NullString `db:"venue"`
	HomeTeamID    int64          `db:"home_team_id"`
	AwayTeamID    int64          `db:"away_team_id"`
	ScoreHome     sql.NullInt64  `db:"score_home"`
	ScoreAway     sql.NullInt64  `db:"score_away"`

	CompetitionName   string `db:"competition_name"`
	CompetitionType   string `db:"competition_type"`
	CompetitionSeason string `db:"competition_season"`

	HomeTeamName    string         `db:"home_team_name"`
	HomeTeamShort   string         `db:"home_team_short"`
	HomeTeamLogoURL sql.NullString `db:"home_team_logo_url"`
	HomeTeamCountry string         `db:"home_team_country"`

	AwayTeamName    string         `db:"away_team_name"`
	AwayTeamShort   string         `db:"away_team_short"`
	AwayTeamLogoURL sql.NullString `db:"away_team_logo_url"`
	AwayTeamCountry string         `db:"away_team_country"`
}

func (m matchSummaryModel) toDomain() match.Summary {
	return match.Summary{
		Match: match.Match{
			ID:            m.ID,
			CompetitionID: m.CompetitionID,
			Date:          m.Date,
			Venue:         nullStringPtr(m.Venue),
			HomeTeamID:    m.HomeTeamID,
			AwayTeamID:    m.AwayTeamID,
			ScoreHome:     nullIntPtr(m.ScoreHome),
			ScoreAway:     nullIntPtr(m.ScoreAway),
		},
		CompetitionName:   m.CompetitionName,
		CompetitionType:   m.CompetitionType,
		CompetitionSeason: m.CompetitionSeason,
		HomeTeamName:      m.HomeTeamName,
		HomeTeamShort:     m.HomeTeamShort,
		HomeTeamLogoURL:   nullStringPtr(m.HomeTeamLogoURL),
		HomeTeamCountry:   m.HomeTeamCountry,
		AwayTeamName:      m.AwayTeamName,
		AwayTeamShort:     m.AwayTeamShort,
		AwayTeamLogoURL:   nullStringPtr(m.AwayTeamLogoURL),
		AwayTeamCountry:   m.AwayTeamCountry,
	}
}

var matchEventColumns = []string{
	"e.id",
	"e.match_id",
	"e.event_type",
	"e.minute",
	"e.player_id",
	"e.assist_player_id",
	"p.name AS player_name",
	"p.position AS player_position",
	"ap.name AS assist_player_name",
}

type matchEventModel struct {
	ID               int64          `db:"id"`
	MatchID          int64          `db:"match_id"`
	EventType        string         `db:"event_type"`
	Minute           int            `db:"minute"`
	PlayerID         int64          `db:"player_id"`
	AssistPlayerID   sql.NullInt64  `db:"assist_player_id"`
	PlayerName       string         `db:"player_name"`
	PlayerPosition   string         `db:"player_position"`
	AssistPlayerName sql.NullString `db:"assist_player_name"`
}

func (m matchEventModel) toDomain() match.Event {
	return match.Event{
		ID:               m.ID,
		MatchID:          m.MatchID,
		Type:             m.EventType,
		Minute:           m.Minute,
		PlayerID:         m.PlayerID,
		PlayerName:       m.PlayerName,
		PlayerPosition:   m.PlayerPosition,
		AssistPlayerID:   nullInt64Ptr(m.AssistPlayerID),
		AssistPlayerName: nullStringPtr(m.AssistPlayerName),
	}
}
