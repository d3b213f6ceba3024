// Package export renders account ledgers for external consumers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/banco-aurora-ledger/internal/domain/account"
)

// ledgerHeader is the column contract of the CSV export
var ledgerHeader = []string{"kind", "amount", "balance_after", "timestamp", "note"}

// WriteLedgerCSV writes an account's ledger entries as CSV, one row per
// entry in chronological order, with amounts formatted to two fractional
// digits and timestamps in RFC 3339.
func WriteLedgerCSV(w io.Writer, snap account.Snapshot) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ledgerHeader); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, entry := range snap.Ledger {
		record := []string{
			string(entry.Kind),
			entry.Amount.StringFixed(2),
			entry.BalanceAfter.StringFixed(2),
			entry.Timestamp.Format(time.RFC3339),
			entry.Note,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing ledger record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
