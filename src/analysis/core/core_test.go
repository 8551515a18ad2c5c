package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateChangePercent(t *testing.T) {
	tests := []struct {
		current, previous, want float64
	}{
		{9500, 9400, 100.0 / 9400},
		{3200, 3250, -50.0 / 3250},
		{100, 0, 0},
		{0, 100, -1},
	}
	for _, tt := range tests {
		if got := CalculateChangePercent(tt.current, tt.previous); !almostEqual(got, tt.want) {
			t.Errorf("CalculateChangePercent(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
		}
	}

	if got := CalculateChange(9500, 9400); got != 100 {
		t.Errorf("CalculateChange = %v, want 100", got)
	}
	if got := CalculateChange(9500, 0); got != 0 {
		t.Errorf("CalculateChange with no previous = %v, want 0", got)
	}
}

func TestComputeOHLC(t *testing.T) {
	ohlc := ComputeOHLC(
		[]float64{100, 104, 98},
		[]float64{105, 107, 101},
		[]float64{99, 97, 95},
		[]float64{103, 99, 100},
	)
	want := map[string]float64{"open": 100, "high": 107, "low": 95, "close": 100}
	for k, v := range want {
		if ohlc[k] != v {
			t.Errorf("ohlc[%q] = %v, want %v", k, ohlc[k], v)
		}
	}

	empty := ComputeOHLC(nil, nil, nil, nil)
	if empty["close"] != 0 || empty["high"] != 0 {
		t.Errorf("empty = %v, want zeros", empty)
	}
}

func TestDailyReturns(t *testing.T) {
	got := DailyReturns([]float64{100, 110, 99})
	if len(got) != 2 || !almostEqual(got[0], 0.1) || !almostEqual(got[1], -0.1) {
		t.Errorf("DailyReturns = %v, want [0.1 -0.1]", got)
	}
	if got := DailyReturns([]float64{100}); len(got) != 0 {
		t.Errorf("DailyReturns(single) = %v, want empty", got)
	}
}

func TestCalculateMeanStd(t *testing.T) {
	mean, std := CalculateMeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || std != 2 {
		t.Errorf("CalculateMeanStd = (%v, %v), want (5, 2)", mean, std)
	}

	mean, std = CalculateMeanStd([]float64{3})
	if mean != 3 || std != 0 {
		t.Errorf("single element = (%v, %v), want (3, 0)", mean, std)
	}

	mean, std = CalculateMeanStd(nil)
	if mean != 0 || std != 0 {
		t.Errorf("empty = (%v, %v), want (0, 0)", mean, std)
	}
}

func TestCalculateZScore(t *testing.T) {
	if got := CalculateZScore(9, 5, 2); got != 2 {
		t.Errorf("CalculateZScore = %v, want 2", got)
	}
	if got := CalculateZScore(9, 5, 0); got != 0 {
		t.Errorf("CalculateZScore with zero std = %v, want 0", got)
	}
}
