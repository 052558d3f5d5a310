package player

import "time"

// Player is one athlete in the catalog.
type Player struct {
	ID          int64
	Name        string
	DateOfBirth *time.Time
	Nationality string
	Position    string
	PhotoURL    *string
}

// Tenure is one contiguous spell at a team. A nil EndDate means the
// tenure is still open; a player has at most one open tenure and
// tenures never overlap in valid data.
type Tenure struct {
	PlayerID  int64
	TeamID    int64
	TeamName  string
	StartDate time.Time
	EndDate   *time.Time
}

// Contains reports whether the tenure interval covers the instant.
func (t Tenure) Contains(at time.Time) bool {
	if at.Before(t.StartDate) {
		return false
	}
	if t.EndDate == nil {
		return true
	}
	return !at.After(*t.EndDate)
}

// TenureAt finds the tenure covering the given instant, typically a
// match date. ok is false when no interval contains it (a data gap);
// callers degrade team-dependent fields to null rather than dropping
// the match.
func TenureAt(tenures []Tenure, at time.Time) (Tenure, bool) {
	for _, tenure := range tenures {
		if tenure.Contains(at) {
			return tenure, true
		}
	}
	return Tenure{}, false
}

// Stats are career event counts for one player.
type Stats struct {
	GoalsScored int
	YellowCards int
	RedCards    int
}

// EventRow is one event from a player's history (as scorer or
// assister), joined with its match. Rows arrive ordered by match date
// descending, minute ascending.
type EventRow struct {
	EventType      string
	Minute         int
	MatchID        int64
	PlayerID       int64
	AssistPlayerID *int64
	MatchDate      time.Time
	CompetitionID  int64
	HomeTeamID     int64
	AwayTeamID     int64
	ScoreHome      *int
	ScoreAway      *int
	Venue          *string
}
