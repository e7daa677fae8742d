package market

import (
	"math"
	"testing"
)

func TestNewTickerFallbackBaselines(t *testing.T) {
	ticker, err := NewTicker(15)
	if err != nil {
		t.Fatalf("NewTicker failed: %v", err)
	}

	rates := ticker.Rates()
	if len(rates) != len(fallbackBaselines) {
		t.Fatalf("rates size = %d, want %d", len(rates), len(fallbackBaselines))
	}
	for i, rate := range rates {
		if rate.Symbol != fallbackBaselines[i].Symbol {
			t.Errorf("rate %d symbol = %q", i, rate.Symbol)
		}
		if rate.Value != fallbackBaselines[i].Value {
			t.Errorf("rate %d value = %v", i, rate.Value)
		}
		if rate.Direction != driftFlat || rate.Change != 0 {
			t.Errorf("baseline rate %d should be flat with zero change: %+v", i, rate)
		}
	}
}

func TestNewTickerRejectsInvalidInterval(t *testing.T) {
	if _, err := NewTicker(0); err == nil {
		t.Fatal("expected error for zero interval")
	}
}

func TestDriftStaysBounded(t *testing.T) {
	ticker, err := NewTicker(15)
	if err != nil {
		t.Fatalf("NewTicker failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		if err := ticker.drift(); err != nil {
			t.Fatalf("drift failed: %v", err)
		}
	}

	// 单步不超过 maxStepPercent，50步的累计漂移也必须很小
	for i, rate := range ticker.Rates() {
		baseline := ticker.baselines[i].Value
		if rate.Value <= 0 {
			t.Errorf("%s: drifted to non-positive value %v", rate.Symbol, rate.Value)
		}
		if math.Abs(rate.ChangePercent) > 100*ticker.maxStepPercent {
			t.Errorf("%s: change percent %v drifted too far from baseline %v", rate.Symbol, rate.ChangePercent, baseline)
		}
		if rate.Direction != driftUp && rate.Direction != driftDown && rate.Direction != driftFlat {
			t.Errorf("%s: invalid direction %q", rate.Symbol, rate.Direction)
		}
	}
}

func TestResetToBaseline(t *testing.T) {
	ticker, err := NewTicker(15)
	if err != nil {
		t.Fatalf("NewTicker failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := ticker.drift(); err != nil {
			t.Fatalf("drift failed: %v", err)
		}
	}

	ticker.resetToBaseline()
	for i, rate := range ticker.Rates() {
		if rate.Value != ticker.baselines[i].Value {
			t.Errorf("%s: value %v not reset to baseline %v", rate.Symbol, rate.Value, ticker.baselines[i].Value)
		}
		if rate.Change != 0 || rate.Direction != driftFlat {
			t.Errorf("%s: not flat after reset: %+v", rate.Symbol, rate)
		}
	}
}
