package match

import (
	"context"
	"time"
)

// ListFilter narrows match listings; zero values mean no filter.
// Date matches on the calendar day, not timestamp equality.
type ListFilter struct {
	CompetitionID int64
	TeamID        int64
	Date          *time.Time
}

// EventFilter narrows a single match's event listing.
type EventFilter struct {
	EventType string
	PlayerID  int64
}

// Repository exposes match and match-event read operations.
type Repository interface {
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Summary, error)
	GetByID(ctx context.Context, matchID int64) (Summary, bool, error)
	// LatestFinishedByTeam returns the team's most recent match with a
	// recorded score.
	LatestFinishedByTeam(ctx context.Context, teamID int64) (Summary, bool, error)
	// NextUnplayedByTeam returns the team's earliest match without a
	// recorded score.
	NextUnplayedByTeam(ctx context.Context, teamID int64) (Summary, bool, error)
	ListEvents(ctx context.Context, matchID int64, filter EventFilter) ([]Event, error)
	// ListEventsByMatchIDs returns events of the given kinds for exactly
	// the given matches, ordered by minute ascending (id tiebreak).
	// Scoping by explicit ID set is what keeps bulk event rendering
	// correct under pagination.
	ListEventsByMatchIDs(ctx context.Context, matchIDs []int64, kinds []string) ([]Event, error)
}
