package match

import "time"

// Match is one scheduled or played fixture. ScoreHome and ScoreAway
// are both nil until the match concludes, then both set; valid data
// never has one without the other.
type Match struct {
	ID            int64
	CompetitionID int64
	Date          time.Time
	Venue         *string
	HomeTeamID    int64
	AwayTeamID    int64
	ScoreHome     *int
	ScoreAway     *int
}

// Played reports whether a final score has been recorded.
func (m Match) Played() bool {
	return m.ScoreHome != nil && m.ScoreAway != nil
}

// Summary is a match row joined with its competition and both teams,
// the shape every paginated match listing renders from.
type Summary struct {
	Match

	CompetitionName   string
	CompetitionType   string
	CompetitionSeason string

	HomeTeamName    string
	HomeTeamShort   string
	HomeTeamLogoURL *string
	HomeTeamCountry string

	AwayTeamName    string
	AwayTeamShort   string
	AwayTeamLogoURL *string
	AwayTeamCountry string
}
