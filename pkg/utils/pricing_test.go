package utils

import (
	"testing"

	"boleia/internal/domain/entities"
)

func testTariff() *RideTariff {
	return NewRideTariff(20, 25, 18, 15)
}

func TestRideTariff_RateFor(t *testing.T) {
	tariff := testTariff()

	cases := []struct {
		rideType entities.RideType
		want     float64
	}{
		{entities.RideTypeQuick, 20},
		{entities.RideTypeSafe, 25},
		{entities.RideTypeEco, 18},
		{entities.RideTypeShared, 15},
		{entities.RideType("unknown"), 20}, // falls back to quick
	}

	for _, c := range cases {
		if got := tariff.RateFor(c.rideType); got != c.want {
			t.Errorf("RateFor(%s): expected %.0f, got %.0f", c.rideType, c.want, got)
		}
	}
}

func TestRideTariff_Quote(t *testing.T) {
	tariff := testTariff()

	if got := tariff.Quote(entities.RideTypeQuick, 12); got != 240 {
		t.Errorf("Expected 12 km quick ride to quote 240, got %d", got)
	}
	if got := tariff.Quote(entities.RideTypeShared, 10); got != 150 {
		t.Errorf("Expected 10 km shared ride to quote 150, got %d", got)
	}
}

func TestRideTariff_Quote_RoundsHalfToEven(t *testing.T) {
	tariff := testTariff()

	// 8.5 * 25 = 212.5 — the tie rounds to the even unit
	if got := tariff.Quote(entities.RideTypeSafe, 8.5); got != 212 {
		t.Errorf("Expected 212 for the 212.5 tie, got %d", got)
	}
	// 8.7 * 25 = 217.5 rounds up to the even 218
	if got := tariff.Quote(entities.RideTypeSafe, 8.7); got != 218 {
		t.Errorf("Expected 218 for the 217.5 tie, got %d", got)
	}
}
