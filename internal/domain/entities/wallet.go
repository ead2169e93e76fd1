package entities

import "time"

// TxDirection marks which side of the ledger a transaction lands on.
type TxDirection string

const (
	TxCredit TxDirection = "credit"
	TxDebit  TxDirection = "debit"
)

// WalletTransaction is one immutable entry in an account's ledger. Amount is
// always stored unsigned; Direction carries the sign. An account's balance
// is never stored anywhere — it is folded from these records on every read,
// so the ledger is the single source of truth.
type WalletTransaction struct {
	ID        string      `json:"id"`
	AccountID string      `json:"account_id"`
	Amount    int64       `json:"amount"`
	Direction TxDirection `json:"direction"`
	Detail    string      `json:"detail"`
	Timestamp time.Time   `json:"timestamp"`
}

// Signed returns the transaction's contribution to the account balance.
func (t *WalletTransaction) Signed() int64 {
	if t.Direction == TxDebit {
		return -t.Amount
	}
	return t.Amount
}
