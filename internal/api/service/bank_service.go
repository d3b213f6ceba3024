package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/banco-aurora-ledger/internal/bank"
	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

// BankService implements CustomerService, AccountService and LedgerService
// over a single bank instance. Loading a snapshot swaps the instance; the
// read lock makes sure in-flight operations keep a consistent reference.
type BankService struct {
	mu              sync.RWMutex
	bank            *bank.Bank
	runner          *bank.EndOfDayRunner
	defaultCurrency string
	logger          *slog.Logger
}

// NewBankService creates the service facade over a bank and its settlement runner
func NewBankService(logger *slog.Logger, b *bank.Bank, runner *bank.EndOfDayRunner, defaultCurrency string) *BankService {
	return &BankService{
		bank:            b,
		runner:          runner,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// current returns the live bank instance
func (s *BankService) current() *bank.Bank {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bank
}

// CreateCustomer registers a new customer and returns its record
func (s *BankService) CreateCustomer(ctx context.Context, name, documentID, email string) (customer.Customer, error) {
	c, err := customer.New(name, documentID, email)
	if err != nil {
		return customer.Customer{}, err
	}
	s.current().RegisterCustomer(c)

	s.logger.Info("customer registered", "customer_id", c.ID)
	return c, nil
}

// OpenAccount creates an account of the given kind for an owner
func (s *BankService) OpenAccount(ctx context.Context, ownerID, kind, currency string, balance decimal.Decimal, opts ...account.Option) (account.Snapshot, error) {
	if currency == "" {
		currency = s.defaultCurrency
	}

	snap, err := s.current().OpenAccount(ownerID, kind, currency, balance, opts...)
	if err != nil {
		return account.Snapshot{}, err
	}

	s.logger.Info("account opened",
		"account_id", snap.ID,
		"owner_id", ownerID,
		"type", snap.Type,
		"currency", snap.Currency,
	)
	return snap, nil
}

// GetAccount retrieves the current snapshot of an account
func (s *BankService) GetAccount(ctx context.Context, id string) (account.Snapshot, error) {
	return s.current().GetAccount(id)
}

// Deposit credits an account and returns its updated snapshot
func (s *BankService) Deposit(ctx context.Context, id string, amount decimal.Decimal, note string) (account.Snapshot, error) {
	return s.current().Deposit(id, amount, note)
}

// Withdraw debits an account and returns its updated snapshot
func (s *BankService) Withdraw(ctx context.Context, id string, amount decimal.Decimal, note string) (account.Snapshot, error) {
	return s.current().Withdraw(id, amount, note)
}

// Transfer moves funds between two accounts and returns both updated snapshots
func (s *BankService) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal, note string) (account.Snapshot, account.Snapshot, error) {
	return s.current().Transfer(fromID, toID, amount, note)
}

// RunEndOfDay settles every account exactly once
func (s *BankService) RunEndOfDay(ctx context.Context) error {
	return s.runner.Run(ctx, s.current())
}

// DumpSnapshot serializes the full bank state
func (s *BankService) DumpSnapshot(ctx context.Context) ([]byte, error) {
	return s.current().DumpJSON()
}

// LoadSnapshot replaces the bank state with a previously dumped snapshot
func (s *BankService) LoadSnapshot(ctx context.Context, data []byte) error {
	b, err := bank.LoadJSON(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bank = b
	s.mu.Unlock()

	s.logger.Info("bank state replaced from snapshot", "bank", b.Name(), "accounts", len(b.AccountIDs()))
	return nil
}
