package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-catalog/internal/domain/match"
	qb "github.com/riskibarqy/sports-catalog/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func summarySelect() *qb.SelectBuilder {
	return qb.Select(matchSummaryColumns...).From("matches m").
		Join("competitions c ON c.id = m.competition_id").
		Join("teams h ON h.id = m.home_team_id").
		Join("teams a ON a.id = m.away_team_id")
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter, limit, offset int) ([]match.Summary, error) {
	builder := summarySelect()
	if filter.CompetitionID != 0 {
		builder.Where(qb.Eq("m.competition_id", filter.CompetitionID))
	}
	if filter.TeamID != 0 {
		builder.Where(qb.Expr("(m.home_team_id = ? OR m.away_team_id = ?)", filter.TeamID, filter.TeamID))
	}
	if filter.Date != nil {
		builder.Where(qb.Expr("m.date::date = ?::date", filter.Date.UTC()))
	}

	query, args, err := builder.
		OrderBy("m.date DESC", "m.id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchSummaryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Summary, bool, error) {
	query, args, err := summarySelect().
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Summary{}, false, crerr.Wrap(err, "build select match query")
	}

	var row matchSummaryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Summary{}, false, nil
		}
		return match.Summary{}, false, crerr.Wrap(err, "select match")
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) LatestFinishedByTeam(ctx context.Context, teamID int64) (match.Summary, bool, error) {
	query, args, err := summarySelect().
		Where(
			qb.Expr("(m.home_team_id = ? OR m.away_team_id = ?)", teamID, teamID),
			qb.IsNotNull("m.score_home"),
			qb.IsNotNull("m.score_away"),
		).
		OrderBy("m.date DESC", "m.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Summary{}, false, crerr.Wrap(err, "build select latest finished match query")
	}

	var row matchSummaryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Summary{}, false, nil
		}
		return match.Summary{}, false, crerr.Wrap(err, "select latest finished match")
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) NextUnplayedByTeam(ctx context.Context, teamID int64) (match.Summary, bool, error) {
	query, args, err := summarySelect().
		Where(
			qb.Expr("(m.home_team_id = ? OR m.away_team_id = ?)", teamID, teamID),
			qb.IsNull("m.score_home"),
			qb.IsNull("m.score_away"),
		).
		OrderBy("m.date ASC", "m.id").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Summary{}, false, crerr.Wrap(err, "build select next match query")
	}

	var row matchSummaryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Summary{}, false, nil
		}
		return match.Summary{}, false, crerr.Wrap(err, "select next match")
	}

	return row.toDomain(), true, nil
}

func eventSelect() *qb.SelectBuilder {
	return qb.Select(matchEventColumns...).From("match_events e").
		Join("players p ON p.id = e.player_id").
		LeftJoin("players ap ON ap.id = e.assist_player_id")
}

func (r *MatchRepository) ListEvents(ctx context.Context, matchID int64, filter match.EventFilter) ([]match.Event, error) {
	builder := eventSelect().Where(qb.Eq("e.match_id", matchID))
	if filter.EventType != "" {
		builder.Where(qb.Eq("e.event_type", filter.EventType))
	}
	if filter.PlayerID != 0 {
		builder.Where(qb.Eq("e.player_id", filter.PlayerID))
	}

	query, args, err := builder.OrderBy("e.minute", "e.id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select match events query")
	}

	var rows []matchEventModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select match events")
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// ListEventsByMatchIDs fetches events scoped to exactly the given
// matches and kinds, the query behind per-page event grouping.
func (r *MatchRepository) ListEventsByMatchIDs(ctx context.Context, matchIDs []int64, kinds []string) ([]match.Event, error) {
	if len(matchIDs) == 0 {
		return []match.Event{}, nil
	}

	query, args, err := eventSelect().
		Where(
			qb.In("e.match_id", int64Args(matchIDs)),
			qb.In("e.event_type", stringArgs(kinds)),
		).
		OrderBy("e.match_id", "e.minute", "e.id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select events by matches query")
	}

	var rows []matchEventModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select events by matches")
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
