package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]Team, error)
}
