package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

// CustomerService defines the interface for customer operations
type CustomerService interface {
	// CreateCustomer registers a new customer and returns its record
	CreateCustomer(ctx context.Context, name, documentID, email string) (customer.Customer, error)
}

// AccountService defines the interface for account operations
type AccountService interface {
	// OpenAccount creates an account of the given kind for an owner.
	// Returns account.ErrUnknownKind for an unrecognized kind.
	OpenAccount(ctx context.Context, ownerID, kind, currency string, balance decimal.Decimal, opts ...account.Option) (account.Snapshot, error)

	// GetAccount retrieves the current snapshot of an account.
	// Returns bank.ErrAccountNotFound if the account doesn't exist.
	GetAccount(ctx context.Context, id string) (account.Snapshot, error)

	// Deposit credits an account and returns its updated snapshot
	Deposit(ctx context.Context, id string, amount decimal.Decimal, note string) (account.Snapshot, error)

	// Withdraw debits an account and returns its updated snapshot
	Withdraw(ctx context.Context, id string, amount decimal.Decimal, note string) (account.Snapshot, error)

	// Transfer moves funds between two accounts and returns both updated snapshots
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal, note string) (account.Snapshot, account.Snapshot, error)
}

// LedgerService defines bank-wide operations: settlement and persistence
type LedgerService interface {
	// RunEndOfDay settles every account exactly once
	RunEndOfDay(ctx context.Context) error

	// DumpSnapshot serializes the full bank state
	DumpSnapshot(ctx context.Context) ([]byte, error)

	// LoadSnapshot replaces the bank state with a previously dumped snapshot
	LoadSnapshot(ctx context.Context, data []byte) error
}
