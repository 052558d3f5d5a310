package match

import "testing"

func TestGroupByKindPartitions(t *testing.T) {
	events := []Event{
		{ID: 1, MatchID: 10, Type: EventGoal, Minute: 12},
		{ID: 2, MatchID: 10, Type: EventYellowCard, Minute: 30},
		{ID: 3, MatchID: 11, Type: EventGoal, Minute: 5},
		{ID: 4, MatchID: 10, Type: EventGoal, Minute: 78},
		{ID: 5, MatchID: 99, Type: EventGoal, Minute: 40}, // outside page
		{ID: 6, MatchID: 11, Type: EventCorner, Minute: 8},
	}

	grouped := GroupByKind(events, []int64{10, 11}, []string{EventGoal, EventYellowCard})

	if len(grouped) != 2 {
		t.Fatalf("expected entries for exactly the page match ids, got %d", len(grouped))
	}

	goals := grouped[10][EventGoal]
	if len(goals) != 2 || goals[0].ID != 1 || goals[1].ID != 4 {
		t.Fatalf("unexpected goals for match 10: %+v", goals)
	}
	if len(grouped[10][EventYellowCard]) != 1 {
		t.Fatalf("unexpected yellow cards for match 10: %+v", grouped[10][EventYellowCard])
	}
	if len(grouped[11][EventGoal]) != 1 {
		t.Fatalf("unexpected goals for match 11: %+v", grouped[11][EventGoal])
	}

	// Unrequested kinds are dropped, not surfaced under another key.
	if _, ok := grouped[11][EventCorner]; ok {
		t.Fatal("corner partition must not exist when not requested")
	}
	if _, ok := grouped[99]; ok {
		t.Fatal("out-of-page match must not appear")
	}
}

func TestGroupByKindEmptyPartitionsPresent(t *testing.T) {
	grouped := GroupByKind(nil, []int64{7}, []string{EventGoal, EventRedCard})

	goals, ok := grouped[7][EventGoal]
	if !ok || goals == nil {
		t.Fatal("goal partition must be present and non-nil")
	}
	reds, ok := grouped[7][EventRedCard]
	if !ok || reds == nil {
		t.Fatal("red card partition must be present and non-nil")
	}
	if len(goals) != 0 || len(reds) != 0 {
		t.Fatal("partitions for an eventless match must be empty")
	}
}
