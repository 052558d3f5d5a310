package match

import (
	"testing"
	"time"
)

var statusNow = time.Date(2025, 12, 13, 15, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func TestComputeStatusFutureDay(t *testing.T) {
	date := statusNow.Add(48 * time.Hour)
	if got := ComputeStatus(date, nil, nil, statusNow); got != StatusUpcoming {
		t.Fatalf("expected UPCOMING, got %s", got)
	}
}

func TestComputeStatusTodayNoScore(t *testing.T) {
	// Same calendar day classifies LIVE whether kickoff passed or not.
	for _, date := range []time.Time{
		statusNow.Add(-2 * time.Hour),
		statusNow.Add(3 * time.Hour),
	} {
		if got := ComputeStatus(date, nil, nil, statusNow); got != StatusLive {
			t.Fatalf("date %v: expected LIVE, got %s", date, got)
		}
	}
}

func TestComputeStatusTodayWithScore(t *testing.T) {
	date := statusNow.Add(-2 * time.Hour)
	if got := ComputeStatus(date, intPtr(2), intPtr(1), statusNow); got != StatusFT {
		t.Fatalf("expected FT, got %s", got)
	}
}

func TestComputeStatusPastDay(t *testing.T) {
	date := statusNow.Add(-72 * time.Hour)
	if got := ComputeStatus(date, intPtr(0), intPtr(0), statusNow); got != StatusFT {
		t.Fatalf("expected FT, got %s", got)
	}
	// Past match with no recorded score still falls through to FT.
	if got := ComputeStatus(date, nil, nil, statusNow); got != StatusFT {
		t.Fatalf("expected FT for unscored past match, got %s", got)
	}
}

func TestComputeStatusMidnightBoundary(t *testing.T) {
	now := time.Date(2025, 12, 13, 23, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 12, 14, 0, 30, 0, 0, time.UTC)
	if got := ComputeStatus(tomorrow, nil, nil, now); got != StatusUpcoming {
		t.Fatalf("expected UPCOMING across midnight, got %s", got)
	}
}
