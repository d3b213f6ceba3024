package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry
type EntryKind string

const (
	EntryDeposit     EntryKind = "deposit"
	EntryWithdraw    EntryKind = "withdraw"
	EntryTransferIn  EntryKind = "transfer_in"
	EntryTransferOut EntryKind = "transfer_out"
	EntryFee         EntryKind = "fee"
	EntryInterest    EntryKind = "interest"
	EntryYield       EntryKind = "yield"
)

// Entry is one immutable record in an account's ledger. Amounts and the
// balance snapshot are rounded to two fractional digits at record time; the
// live account balance keeps full precision between operations.
type Entry struct {
	Kind         EntryKind       `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Timestamp    time.Time       `json:"timestamp"`
	Note         string          `json:"note"`
}
