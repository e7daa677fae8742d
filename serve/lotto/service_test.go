package lotto

import (
	"testing"
	"time"
)

func TestInitDrawResultsFallback(t *testing.T) {
	if err := initDrawResults(); err != nil {
		t.Fatalf("initDrawResults failed: %v", err)
	}

	results := QueryDrawResults()
	if len(results) != 3 {
		t.Fatalf("results size = %d, want 3", len(results))
	}

	seen := make(map[string]DrawResult)
	for _, r := range results {
		seen[r.Id] = r
	}
	for _, id := range []string{"mega", "power", "lotto"} {
		r, ok := seen[id]
		if !ok {
			t.Fatalf("missing draw result for %q", id)
		}
		if len(r.WinningNumbers) == 0 || r.Jackpot == "" {
			t.Errorf("%s: incomplete result %+v", id, r)
		}
	}
	if seen["power"].BonusNumber == "" {
		t.Errorf("power result missing bonus number")
	}
}

func TestCalculateTimeLeft(t *testing.T) {
	now := time.Date(2026, 1, 21, 12, 0, 0, 0, time.UTC)

	if got := CalculateTimeLeft("2026-01-21T13:30:05Z", "DRAWING...", now); got != "01:30:05" {
		t.Errorf("future countdown = %q", got)
	}
	if got := CalculateTimeLeft("2026-01-21T11:00:00Z", "DRAWING...", now); got != "DRAWING..." {
		t.Errorf("past target = %q", got)
	}
	if got := CalculateTimeLeft("garbage", "DRAWING...", now); got != "DRAWING..." {
		t.Errorf("unparseable target = %q", got)
	}
}
