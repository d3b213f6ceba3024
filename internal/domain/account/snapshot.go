package account

import "github.com/shopspring/decimal"

// Snapshot is the read-only wire representation of an account. Field names
// are part of the adapter contract (HTTP responses, snapshot files, exports)
// and must not change.
type Snapshot struct {
	ID       string          `json:"id"`
	OwnerID  string          `json:"owner_id"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Type     string          `json:"type"`
	Ledger   []Entry         `json:"ledger"`
}

// Snapshot produces the account's wire representation. The balance is rounded
// to two fractional digits; the ledger is copied, not aliased.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		ID:       a.ID,
		OwnerID:  a.OwnerID,
		Currency: a.Currency,
		Balance:  a.balance.Round(2),
		Type:     a.Kind.TypeTag(),
		Ledger:   a.Ledger(),
	}
}

// Restore rebuilds an account from a persisted snapshot. Variant parameters
// revert to their defaults and the ledger starts empty: snapshot reloads do
// not preserve transaction history.
func Restore(snap Snapshot) (*Account, error) {
	kind, err := ParseTypeTag(snap.Type)
	if err != nil {
		return nil, err
	}
	return New(snap.ID, snap.OwnerID, kind, snap.Currency, snap.Balance)
}
