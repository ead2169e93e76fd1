package services

import (
	"context"
	"errors"

	"boleia/internal/config"
	"boleia/internal/domain/entities"
	"boleia/internal/storage"
)

var ErrInsufficientPoints = errors.New("insufficient reward points")

// RewardsService owns the singleton driver profile and its point balance.
// The level is recomputed from the thresholds on every point change and
// never regresses.
type RewardsService struct {
	store storage.Store
	cfg   config.RewardsConfig
}

func NewRewardsService(store storage.Store, cfg config.RewardsConfig) *RewardsService {
	return &RewardsService{
		store: store,
		cfg:   cfg,
	}
}

// DriverStats returns the tracked driver record, falling back to the seed
// default if the collection was never written.
func (s *RewardsService) DriverStats(ctx context.Context) (*entities.Driver, error) {
	var driver entities.Driver
	err := s.store.ReadCollection(ctx, storage.CollectionDriverStats, &driver)
	if errors.Is(err, storage.ErrNotFound) {
		driver = storage.DefaultDriverStats()
		return &driver, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// AddPoints applies delta to the point balance (negative on redemption) and
// recomputes the level.
func (s *RewardsService) AddPoints(ctx context.Context, delta int) (*entities.Driver, error) {
	driver, err := s.DriverStats(ctx)
	if err != nil {
		return nil, err
	}

	driver.ApplyPoints(delta, s.cfg.SilverThreshold, s.cfg.GoldThreshold, s.cfg.DiamondThreshold)

	if err := s.store.WriteCollection(ctx, storage.CollectionDriverStats, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Redeem deducts cost only when the balance covers it. The check and the
// deduction happen in one read-modify-write with no suspension point in
// between, so two callers cannot both spend the same points.
func (s *RewardsService) Redeem(ctx context.Context, cost int) (*entities.Driver, error) {
	driver, err := s.DriverStats(ctx)
	if err != nil {
		return nil, err
	}

	if driver.Points < cost {
		return nil, ErrInsufficientPoints
	}

	driver.ApplyPoints(-cost, s.cfg.SilverThreshold, s.cfg.GoldThreshold, s.cfg.DiamondThreshold)

	if err := s.store.WriteCollection(ctx, storage.CollectionDriverStats, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// SetOnline flips the driver's availability flag.
func (s *RewardsService) SetOnline(ctx context.Context, online bool) (*entities.Driver, error) {
	driver, err := s.DriverStats(ctx)
	if err != nil {
		return nil, err
	}

	driver.IsOnline = online

	if err := s.store.WriteCollection(ctx, storage.CollectionDriverStats, driver); err != nil {
		return nil, err
	}
	return driver, nil
}
