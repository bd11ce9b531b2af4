package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "location").
		From("teams").
		Where(Eq("location", "Springfield")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, location FROM teams WHERE location = $1 ORDER BY id LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Springfield" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderExprCondition(t *testing.T) {
	query, args, err := Select("e.*").
		From("events AS e").
		Where(Expr("(e.home_team_id = ? OR e.visiting_team_id = ?)", int64(7), int64(7))).
		OrderBy("e.event_timestamp").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT e.* FROM events AS e WHERE (e.home_team_id = $1 OR e.visiting_team_id = $2) ORDER BY e.event_timestamp"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("location", "name").
		Values("Springfield", "Atoms").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (location, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Springfield" || args[1] != "Atoms" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type upsertTestModel struct {
	Location string `db:"location"`
	Name     string `db:"name"`
	Color    string `db:"team_color"`
	ignored  string
}

func TestUpsertModel(t *testing.T) {
	model := upsertTestModel{Location: "Springfield", Name: "Atoms", Color: "#702963", ignored: "x"}

	query, args, err := UpsertModel("teams", model, "location", "updated_at = NOW()")
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (location, name, team_color) VALUES ($1, $2, $3) " +
		"ON CONFLICT (location) DO UPDATE SET name = EXCLUDED.name, team_color = EXCLUDED.team_color, updated_at = NOW() RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Springfield" || args[1] != "Atoms" || args[2] != "#702963" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpsertModelRejectsUnknownConflictColumn(t *testing.T) {
	if _, _, err := UpsertModel("teams", upsertTestModel{}, "abbreviation"); err == nil {
		t.Fatal("expected error for conflict column missing from model")
	}
}

func TestUpsertModelRequiresConflictColumn(t *testing.T) {
	if _, _, err := UpsertModel("teams", upsertTestModel{}, "  "); err == nil {
		t.Fatal("expected error for empty conflict column")
	}
}
