package services

import (
	"context"
	"errors"
	"testing"

	"boleia/internal/domain/entities"
)

func TestRewardsService_LevelThresholds(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	// Seeded driver starts at 450 points, Bronze
	driver, err := b.rewards.DriverStats(ctx)
	if err != nil {
		t.Fatalf("DriverStats failed: %v", err)
	}
	if driver.Points != 450 || driver.Level != entities.LevelBronze {
		t.Fatalf("Unexpected seed state: %d points, level %s", driver.Points, driver.Level)
	}

	driver, err = b.rewards.AddPoints(ctx, 100) // 550
	if err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}
	if driver.Level != entities.LevelSilver {
		t.Errorf("Expected Silver above 500, got %s", driver.Level)
	}

	driver, err = b.rewards.AddPoints(ctx, 500) // 1050
	if err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}
	if driver.Level != entities.LevelGold {
		t.Errorf("Expected Gold above 1000, got %s", driver.Level)
	}

	driver, err = b.rewards.AddPoints(ctx, 1000) // 2050
	if err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}
	if driver.Level != entities.LevelDiamond {
		t.Errorf("Expected Diamond above 2000, got %s", driver.Level)
	}
}

func TestRewardsService_LevelNeverRegresses(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	if _, err := b.rewards.AddPoints(ctx, 2000); err != nil { // 2450, Diamond
		t.Fatalf("AddPoints failed: %v", err)
	}

	driver, err := b.rewards.Redeem(ctx, 2000) // back to 450
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if driver.Points != 450 {
		t.Errorf("Expected 450 points after redemption, got %d", driver.Points)
	}
	if driver.Level != entities.LevelDiamond {
		t.Errorf("Expected level to stay Diamond after spending points, got %s", driver.Level)
	}
}

func TestRewardsService_Redeem_Insufficient(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	_, err := b.rewards.Redeem(ctx, 1000) // seed has only 450
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("Expected ErrInsufficientPoints, got %v", err)
	}

	driver, err := b.rewards.DriverStats(ctx)
	if err != nil {
		t.Fatalf("DriverStats failed: %v", err)
	}
	if driver.Points != 450 {
		t.Errorf("Expected points untouched on failed redemption, got %d", driver.Points)
	}
}

func TestRewardsService_SetOnline(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	driver, err := b.rewards.SetOnline(ctx, true)
	if err != nil {
		t.Fatalf("SetOnline failed: %v", err)
	}
	if !driver.IsOnline {
		t.Error("Expected driver to be online")
	}

	driver, err = b.rewards.DriverStats(ctx)
	if err != nil {
		t.Fatalf("DriverStats failed: %v", err)
	}
	if !driver.IsOnline {
		t.Error("Expected online flag persisted")
	}
}
