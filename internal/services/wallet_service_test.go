package services

import (
	"context"
	"testing"

	"boleia/internal/domain/entities"
)

func TestWalletService_BalanceFoldsLedger(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	steps := []struct {
		amount int64
		want   int64
	}{
		{500, 500},
		{-212, 288},
		{100, 388},
		{-388, 0},
		{-50, -50}, // the ledger does not forbid overdraft
	}

	for _, step := range steps {
		if err := b.wallet.Record(ctx, "acc1", step.amount, "test"); err != nil {
			t.Fatalf("Record(%d) failed: %v", step.amount, err)
		}
		balance, err := b.wallet.Balance(ctx, "acc1")
		if err != nil {
			t.Fatalf("Balance failed: %v", err)
		}
		if balance != step.want {
			t.Errorf("After recording %d: expected balance %d, got %d", step.amount, step.want, balance)
		}
	}
}

func TestWalletService_AmountsStoredUnsigned(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	if err := b.wallet.Record(ctx, "acc1", -75, "debit"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := b.wallet.Record(ctx, "acc1", 30, "credit"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	txs, err := b.wallet.Transactions(ctx, "acc1")
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(txs))
	}

	if txs[0].Direction != entities.TxDebit || txs[0].Amount != 75 {
		t.Errorf("Expected debit of 75, got %s %d", txs[0].Direction, txs[0].Amount)
	}
	if txs[1].Direction != entities.TxCredit || txs[1].Amount != 30 {
		t.Errorf("Expected credit of 30, got %s %d", txs[1].Direction, txs[1].Amount)
	}
}

func TestWalletService_BalancesIsolatedPerAccount(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	if err := b.wallet.Record(ctx, "acc1", 100, "credit"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := b.wallet.Record(ctx, "acc2", 999, "credit"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	balance, err := b.wallet.Balance(ctx, "acc1")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 100 {
		t.Errorf("Expected acc1 balance 100, got %d", balance)
	}
}
