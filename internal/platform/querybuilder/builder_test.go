package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("country", "England")).
		OrderBy("name").
		Limit(20).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE country = $1 ORDER BY name LIMIT 20 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "England" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderJoins(t *testing.T) {
	query, args, err := Select("m.id", "ht.short_name").
		From("matches m").
		Join("teams ht ON ht.id = m.home_team_id").
		LeftJoin("players ap ON ap.id = m.captain_id").
		Where(Eq("m.competition_id", int64(3))).
		OrderBy("m.date DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT m.id, ht.short_name FROM matches m " +
		"JOIN teams ht ON ht.id = m.home_team_id " +
		"LEFT JOIN players ap ON ap.id = m.captain_id " +
		"WHERE m.competition_id = $1 ORDER BY m.date DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderInCondition(t *testing.T) {
	query, args, err := Select("*").
		From("match_events").
		Where(In("match_id", []any{int64(1), int64(2)})).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM match_events WHERE match_id IN ($1, $2) ORDER BY minute, id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyInCondition(t *testing.T) {
	query, _, err := Select("*").
		From("match_events").
		Where(In("match_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM match_events WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestSelectBuilderExpr(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(
			Expr("(home_team_id = ? OR away_team_id = ?)", int64(7), int64(7)),
			Expr("date::date = ?::date", "2025-12-13"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE (home_team_id = $1 OR away_team_id = $2) AND date::date = $3::date"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
