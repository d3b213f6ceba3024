package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-aurora-ledger/internal/domain/account"
)

func TestWriteLedgerCSV(t *testing.T) {
	stamp := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	snap := account.Snapshot{
		ID:       "acc-1",
		OwnerID:  "cust-1",
		Currency: "BRL",
		Balance:  decimal.RequireFromString("70.00"),
		Type:     "CheckingAccount",
		Ledger: []account.Entry{
			{
				Kind:         account.EntryDeposit,
				Amount:       decimal.RequireFromString("100"),
				BalanceAfter: decimal.RequireFromString("100"),
				Timestamp:    stamp,
				Note:         "deposit",
			},
			{
				Kind:         account.EntryWithdraw,
				Amount:       decimal.RequireFromString("30"),
				BalanceAfter: decimal.RequireFromString("70"),
				Timestamp:    stamp.Add(time.Minute),
				Note:         "groceries, market",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, snap))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"kind", "amount", "balance_after", "timestamp", "note"}, records[0])
	assert.Equal(t, []string{"deposit", "100.00", "100.00", "2024-03-15T12:30:00Z", "deposit"}, records[1])
	assert.Equal(t, []string{"withdraw", "30.00", "70.00", "2024-03-15T12:31:00Z", "groceries, market"}, records[2])
}

func TestWriteLedgerCSV_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, account.Snapshot{ID: "acc-1"}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}
