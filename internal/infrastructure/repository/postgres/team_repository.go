package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-catalog/internal/domain/team"
	qb "github.com/riskibarqy/sports-catalog/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, limit, offset int) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("name", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build select team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrap(err, "select team")
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.In("id", int64Args(teamIDs))).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams by ids query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select teams by ids")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
