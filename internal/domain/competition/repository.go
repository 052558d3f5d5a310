package competition

import "context"

// ListFilter narrows the competition list; zero values mean no filter.
type ListFilter struct {
	Type   string
	Season string
}

// Repository exposes competition read operations.
type Repository interface {
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Competition, error)
	GetByID(ctx context.Context, competitionID int64) (Competition, bool, error)
	// ListByTeam returns the distinct competitions a team has matches in,
	// optionally restricted to one season label.
	ListByTeam(ctx context.Context, teamID int64, seasonLabel string) ([]Competition, error)
}
