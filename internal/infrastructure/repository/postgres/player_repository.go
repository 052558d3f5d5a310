package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	"github.com/riskibarqy/sports-catalog/internal/domain/player"
	qb "github.com/riskibarqy/sports-catalog/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter, limit, offset int) ([]player.Player, error) {
	builder := qb.Select("p.*").From("players p")
	if filter.TeamID != 0 {
		builder.Join("player_team_history th ON th.player_id = p.id").
			Where(
				qb.Eq("th.team_id", filter.TeamID),
				qb.IsNull("th.end_date"),
			)
	}
	if filter.Position != "" {
		builder.Where(qb.Eq("p.position", filter.Position))
	}

	query, args, err := builder.
		OrderBy("p.name", "p.id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build select player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "select player")
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) SearchByName(ctx context.Context, name string, limit int) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Expr("name ILIKE '%' || ? || '%'", name)).
		OrderBy("name", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build search players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "search players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListCurrentByTeam(ctx context.Context, teamID int64, limit, offset int) ([]player.Player, error) {
	return r.List(ctx, player.ListFilter{TeamID: teamID}, limit, offset)
}

// GetStats aggregates the player's own events into career counters.
func (r *PlayerRepository) GetStats(ctx context.Context, playerID int64) (player.Stats, error) {
	query, args, err := qb.Select(
		"COUNT(*) FILTER (WHERE event_type = '"+match.EventGoal+"') AS goals_scored",
		"COUNT(*) FILTER (WHERE event_type = '"+match.EventYellowCard+"') AS yellow_cards",
		"COUNT(*) FILTER (WHERE event_type = '"+match.EventRedCard+"') AS red_cards",
	).From("match_events").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Stats{}, crerr.Wrap(err, "build select player stats query")
	}

	var row playerStatsModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Stats{}, crerr.Wrap(err, "select player stats")
	}

	return player.Stats{
		GoalsScored: row.GoalsScored,
		YellowCards: row.YellowCards,
		RedCards:    row.RedCards,
	}, nil
}

func (r *PlayerRepository) ListTenures(ctx context.Context, playerID int64) ([]player.Tenure, error) {
	query, args, err := qb.Select(
		"th.player_id",
		"th.team_id",
		"t.name AS team_name",
		"th.start_date",
		"th.end_date",
	).From("player_team_history th").
		Join("teams t ON t.id = th.team_id").
		Where(qb.Eq("th.player_id", playerID)).
		OrderBy("th.start_date DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select player tenures query")
	}

	var rows []tenureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select player tenures")
	}

	out := make([]player.Tenure, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// ListEventHistory returns every event the player scored or assisted,
// joined with the match, newest match first.
func (r *PlayerRepository) ListEventHistory(ctx context.Context, playerID int64) ([]player.EventRow, error) {
	query, args, err := qb.Select(playerEventRowColumns...).From("match_events e").
		Join("matches m ON m.id = e.match_id").
		Where(qb.Expr("(e.player_id = ? OR e.assist_player_id = ?)", playerID, playerID)).
		OrderBy("m.date DESC", "e.minute", "e.id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select player event history query")
	}

	var rows []playerEventRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select player event history")
	}

	out := make([]player.EventRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
