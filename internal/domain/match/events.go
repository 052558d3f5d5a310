package match

const (
	EventGoal       = "goal"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
	EventCorner     = "corner"
)

// Event is one match event row, already joined with the acting and
// assisting players' display names. AssistPlayerID is only meaningful
// for goals.
type Event struct {
	ID               int64
	MatchID          int64
	Type             string
	Minute           int
	PlayerID         int64
	PlayerName       string
	PlayerPosition   string
	AssistPlayerID   *int64
	AssistPlayerName *string
}

// GroupedEvents partitions one match's events by kind. A kind the
// endpoint handles is always present as a non-nil slice, even when
// the match has no events of that kind.
type GroupedEvents map[string][]Event

// GroupByKind partitions events under their owning match, keyed by
// match ID, with one partition per requested kind. Every match in
// matchIDs gets an entry; events for matches outside the set and
// events of unrequested kinds are discarded. Input order is kept, so
// callers pass events already sorted by minute (id tiebreak).
func GroupByKind(events []Event, matchIDs []int64, kinds []string) map[int64]GroupedEvents {
	out := make(map[int64]GroupedEvents, len(matchIDs))
	inPage := make(map[int64]struct{}, len(matchIDs))
	for _, matchID := range matchIDs {
		inPage[matchID] = struct{}{}
		grouped := make(GroupedEvents, len(kinds))
		for _, kind := range kinds {
			grouped[kind] = []Event{}
		}
		out[matchID] = grouped
	}

	wanted := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = struct{}{}
	}

	for _, event := range events {
		if _, ok := inPage[event.MatchID]; !ok {
			continue
		}
		if _, ok := wanted[event.Type]; !ok {
			continue
		}
		out[event.MatchID][event.Type] = append(out[event.MatchID][event.Type], event)
	}

	return out
}
