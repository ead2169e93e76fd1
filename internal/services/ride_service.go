package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boleia/internal/config"
	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/pkg/utils"
)

// RideService owns the ride ledger. Rides are never deleted; after creation
// only their status changes.
type RideService struct {
	store  storage.Store
	wallet *WalletService
	audit  *AuditService
	tariff *utils.RideTariff
	cfg    *config.Config
}

func NewRideService(store storage.Store, wallet *WalletService, audit *AuditService, cfg *config.Config) *RideService {
	return &RideService{
		store:  store,
		wallet: wallet,
		audit:  audit,
		tariff: utils.NewRideTariff(
			cfg.Pricing.QuickPerKm,
			cfg.Pricing.SafePerKm,
			cfg.Pricing.EcoPerKm,
			cfg.Pricing.SharedPerKm,
		),
		cfg: cfg,
	}
}

// CreateRideInput carries a ride request. Status is taken as given: the
// caller decides whether the ride starts scheduled or active, and the
// backend does not validate the combination of status and scheduled time.
type CreateRideInput struct {
	RiderID     string              `json:"rider_id"`
	DriverID    string              `json:"driver_id"`
	Pickup      entities.Location   `json:"pickup"`
	Dropoff     entities.Location   `json:"dropoff"`
	Type        entities.RideType   `json:"type"`
	DistanceKm  float64             `json:"distance_km"`
	Status      entities.RideStatus `json:"status"`
	ScheduledAt *time.Time          `json:"scheduled_at"`
}

// CreateRide prices the request from its distance and category, assigns a
// fresh identifier and creation timestamp, and appends it to the ledger.
// When a rider is attached, their wallet is debited by the fare and the
// action is audited; anonymous rides leave no ledger or audit trace.
func (s *RideService) CreateRide(ctx context.Context, input CreateRideInput) (*entities.Ride, error) {
	var rides []entities.Ride
	if err := s.store.ReadCollection(ctx, storage.CollectionRides, &rides); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.RideStatusIdle
	}

	ride := entities.Ride{
		ID:          utils.GenerateID(),
		RiderID:     input.RiderID,
		DriverID:    input.DriverID,
		Pickup:      input.Pickup,
		Dropoff:     input.Dropoff,
		Type:        input.Type,
		Price:       s.tariff.Quote(input.Type, input.DistanceKm),
		DistanceKm:  input.DistanceKm,
		Status:      status,
		ScheduledAt: input.ScheduledAt,
		CreatedAt:   time.Now(),
	}

	rides = append(rides, ride)
	if err := s.store.WriteCollection(ctx, storage.CollectionRides, rides); err != nil {
		return nil, err
	}

	if ride.RiderID != "" {
		detail := fmt.Sprintf("Ride payment: %s", ride.Type)
		if err := s.wallet.Record(ctx, ride.RiderID, -ride.Price, detail); err != nil {
			return nil, err
		}
		if err := s.audit.Append(ctx, ride.RiderID, entities.ActionCreateRide, ride.ID, "ride requested"); err != nil {
			return nil, err
		}
	}

	return &ride, nil
}

// Rides returns the ride ledger. A non-empty accountID filters to rides the
// account participates in as rider or driver.
func (s *RideService) Rides(ctx context.Context, accountID string) ([]entities.Ride, error) {
	if err := simulateLatency(ctx, s.cfg.Latency.RideList); err != nil {
		return nil, err
	}

	var rides []entities.Ride
	if err := s.store.ReadCollection(ctx, storage.CollectionRides, &rides); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if accountID == "" {
		return rides, nil
	}

	var matched []entities.Ride
	for i := range rides {
		if rides[i].Involves(accountID) {
			matched = append(matched, rides[i])
		}
	}
	return matched, nil
}
