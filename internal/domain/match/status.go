package match

import "time"

const (
	StatusUpcoming = "UPCOMING"
	StatusLive     = "LIVE"
	StatusFT       = "FT"
)

// ComputeStatus derives the lifecycle state of a match from its date
// and score pair at the given instant. Calendar days are compared in
// UTC. The rules, in order:
//
//  1. kickoff on a later calendar day, not yet past: UPCOMING
//  2. kickoff today with no score recorded: LIVE
//  3. everything else: FT
//
// A past match whose score was never entered is indistinguishable from
// one genuinely in progress; rule 2 resolves that ambiguity in favor
// of LIVE only on the kickoff day itself.
func ComputeStatus(date time.Time, scoreHome, scoreAway *int, now time.Time) string {
	sameDay := sameUTCDay(date, now)
	if date.After(now) && !sameDay {
		return StatusUpcoming
	}
	if sameDay && scoreHome == nil && scoreAway == nil {
		return StatusLive
	}
	return StatusFT
}

// Status is ComputeStatus over the match's own fields.
func (m Match) Status(now time.Time) string {
	return ComputeStatus(m.Date, m.ScoreHome, m.ScoreAway, now)
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
