package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-catalog/internal/domain/competition"
	qb "github.com/riskibarqy/sports-catalog/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.ListFilter, limit, offset int) ([]competition.Competition, error) {
	builder := qb.Select("*").From("competitions")
	if filter.Type != "" {
		builder.Where(qb.Eq("type", filter.Type))
	}
	if filter.Season != "" {
		builder.Where(qb.Eq("season", filter.Season))
	}

	query, args, err := builder.
		OrderBy("name", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select competitions query")
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select competitions")
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", competitionID)).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, crerr.Wrap(err, "build select competition query")
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, crerr.Wrap(err, "select competition")
	}

	return row.toDomain(), true, nil
}

// ListByTeam returns the competitions the team has at least one match
// in, optionally narrowed to a single season label.
func (r *CompetitionRepository) ListByTeam(ctx context.Context, teamID int64, seasonLabel string) ([]competition.Competition, error) {
	builder := qb.Select("DISTINCT c.*").From("competitions c").
		Join("matches m ON m.competition_id = c.id").
		Where(qb.Expr("(m.home_team_id = ? OR m.away_team_id = ?)", teamID, teamID))
	if seasonLabel != "" {
		builder.Where(qb.Eq("c.season", seasonLabel))
	}

	query, args, err := builder.OrderBy("c.name", "c.id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select team competitions query")
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select team competitions")
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
