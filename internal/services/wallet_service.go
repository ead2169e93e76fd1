package services

import (
	"context"
	"errors"
	"time"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/pkg/utils"
)

// WalletService owns the append-only transaction ledger. There is no
// balance field anywhere: Balance folds the ledger on every call, so the
// invariant "balance equals credits minus debits" cannot drift.
type WalletService struct {
	store storage.Store
}

func NewWalletService(store storage.Store) *WalletService {
	return &WalletService{store: store}
}

// Record appends one transaction. The sign of amount selects the
// direction — non-negative amounts credit the account, negative amounts
// debit it — and the magnitude is stored unsigned.
func (s *WalletService) Record(ctx context.Context, accountID string, amount int64, detail string) error {
	var txs []entities.WalletTransaction
	if err := s.store.ReadCollection(ctx, storage.CollectionWalletTxs, &txs); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	direction := entities.TxCredit
	magnitude := amount
	if amount < 0 {
		direction = entities.TxDebit
		magnitude = -amount
	}

	txs = append(txs, entities.WalletTransaction{
		ID:        utils.GenerateID(),
		AccountID: accountID,
		Amount:    magnitude,
		Direction: direction,
		Detail:    detail,
		Timestamp: time.Now(),
	})

	return s.store.WriteCollection(ctx, storage.CollectionWalletTxs, txs)
}

// Balance folds the account's transactions: credits add, debits subtract.
func (s *WalletService) Balance(ctx context.Context, accountID string) (int64, error) {
	var txs []entities.WalletTransaction
	if err := s.store.ReadCollection(ctx, storage.CollectionWalletTxs, &txs); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	var balance int64
	for i := range txs {
		if txs[i].AccountID == accountID {
			balance += txs[i].Signed()
		}
	}
	return balance, nil
}

// Transactions returns the full ledger for one account, oldest first.
func (s *WalletService) Transactions(ctx context.Context, accountID string) ([]entities.WalletTransaction, error) {
	var txs []entities.WalletTransaction
	if err := s.store.ReadCollection(ctx, storage.CollectionWalletTxs, &txs); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var owned []entities.WalletTransaction
	for i := range txs {
		if txs[i].AccountID == accountID {
			owned = append(owned, txs[i])
		}
	}
	return owned, nil
}
