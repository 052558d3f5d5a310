package player

import "context"

// ListFilter narrows the player list; zero values mean no filter.
// TeamID matches against the player's current (open-ended) tenure.
type ListFilter struct {
	TeamID   int64
	Position string
}

// Repository exposes player read operations.
type Repository interface {
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	SearchByName(ctx context.Context, name string, limit int) ([]Player, error)
	// ListCurrentByTeam returns players whose latest tenure is at the
	// given team and still open.
	ListCurrentByTeam(ctx context.Context, teamID int64, limit, offset int) ([]Player, error)
	GetStats(ctx context.Context, playerID int64) (Stats, error)
	ListTenures(ctx context.Context, playerID int64) ([]Tenure, error)
	// ListEventHistory returns every event where the player scored or
	// assisted, joined with the match, ordered by match date descending
	// then minute ascending.
	ListEventHistory(ctx context.Context, playerID int64) ([]EventRow, error)
}
