package utils

import (
	"math"

	"boleia/internal/domain/entities"
)

// RideTariff maps each ride category to its per-kilometre rate in meticais.
type RideTariff struct {
	QuickPerKm  float64
	SafePerKm   float64
	EcoPerKm    float64
	SharedPerKm float64
}

// NewRideTariff builds a tariff from per-category rates.
func NewRideTariff(quick, safe, eco, shared float64) *RideTariff {
	return &RideTariff{
		QuickPerKm:  quick,
		SafePerKm:   safe,
		EcoPerKm:    eco,
		SharedPerKm: shared,
	}
}

// RateFor returns the per-kilometre rate for a ride category. Unknown
// categories fall back to the quick rate.
func (t *RideTariff) RateFor(rideType entities.RideType) float64 {
	switch rideType {
	case entities.RideTypeSafe:
		return t.SafePerKm
	case entities.RideTypeEco:
		return t.EcoPerKm
	case entities.RideTypeShared:
		return t.SharedPerKm
	default:
		return t.QuickPerKm
	}
}

// Quote computes the fare for a ride: distance times the per-type rate,
// rounded to the nearest whole metical. Ties round to the even unit, so
// 8.5 km at 25 MT/km quotes 212, not 213.
func (t *RideTariff) Quote(rideType entities.RideType, distanceKm float64) int64 {
	return int64(math.RoundToEven(distanceKm * t.RateFor(rideType)))
}
