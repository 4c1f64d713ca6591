package materials

import (
	"math"
	"testing"
)

func TestEstimateProducedUnits(t *testing.T) {
	testCases := []struct {
		name string
		qty  float64
		a    float64
		b    float64
		want int64
	}{
		{"reference example", 1000, 2, 3, 132},
		{"too little material", 5, 2, 3, 0},
		{"exactly one unit", 7.56, 2, 3, 1},
		{"zero quantity", 0, 2, 3, UnitsUnavailable},
		{"negative quantity", -10, 2, 3, UnitsUnavailable},
		{"zero first factor", 1000, 0, 3, UnitsUnavailable},
		{"negative second factor", 1000, 2, -1, UnitsUnavailable},
		{"NaN quantity", math.NaN(), 2, 3, UnitsUnavailable},
		{"infinite factor", 1000, math.Inf(1), 3, UnitsUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultYield.EstimateProducedUnits(tc.qty, tc.a, tc.b)
			if got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestEstimateProducedUnits_CustomModel(t *testing.T) {
	m := YieldModel{Multiplier: 1, LossRate: 0}
	if got := m.EstimateProducedUnits(100, 2, 5); got != 10 {
		t.Errorf("Expected 10, got %d", got)
	}

	degenerate := YieldModel{Multiplier: 0, LossRate: 0.05}
	if got := degenerate.EstimateProducedUnits(100, 2, 5); got != UnitsUnavailable {
		t.Errorf("Expected sentinel for degenerate model, got %d", got)
	}
}
