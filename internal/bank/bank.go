// Package bank is the ledger registry: it owns every account and customer
// record, hands out account ids, and orchestrates end-of-day settlement.
// All mutating entry points are safe for concurrent use; operations on a
// single account are serialized by a per-account lock, and transfers acquire
// their two locks in lexicographic id order so concurrent opposing transfers
// cannot deadlock.
package bank

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

// ErrAccountNotFound indicates a lookup of an unregistered account id
type ErrAccountNotFound struct {
	ID string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.ID
}

// Is implements the errors.Is interface for ErrAccountNotFound
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	if t.ID == "" {
		return true
	}
	return e.ID == t.ID
}

// slot couples an account with the lock that serializes its mutations
type slot struct {
	mu  sync.Mutex
	acc *account.Account
}

// Bank owns the account and customer registries
type Bank struct {
	name string

	mu        sync.RWMutex // guards the maps, not the accounts
	accounts  map[string]*slot
	customers map[string]customer.Customer
}

// New creates an empty bank
func New(name string) *Bank {
	return &Bank{
		name:      name,
		accounts:  make(map[string]*slot),
		customers: make(map[string]customer.Customer),
	}
}

// Name returns the bank's immutable name
func (b *Bank) Name() string {
	return b.name
}

// RegisterCustomer stores a customer snapshot keyed by id. Re-registering the
// same id overwrites the previous record.
func (b *Bank) RegisterCustomer(c customer.Customer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.customers[c.ID] = c
}

// Customer returns the registered customer record for an id
func (b *Bank) Customer(id string) (customer.Customer, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.customers[id]
	return c, ok
}

// newAccountID returns a short unique account id
func newAccountID() string {
	return uuid.NewString()[:8]
}

// OpenAccount validates the variant tag, constructs the account with any
// variant-specific overrides and stores it. The owner id is kept as a plain
// reference; it is not checked against the customer registry.
func (b *Bank) OpenAccount(ownerID, kind, currency string, balance decimal.Decimal, opts ...account.Option) (account.Snapshot, error) {
	k, err := account.ParseKind(kind)
	if err != nil {
		return account.Snapshot{}, err
	}

	acc, err := account.New(newAccountID(), ownerID, k, currency, balance, opts...)
	if err != nil {
		return account.Snapshot{}, err
	}

	b.mu.Lock()
	b.accounts[acc.ID] = &slot{acc: acc}
	b.mu.Unlock()

	return acc.Snapshot(), nil
}

// lookup returns the slot for an id or ErrAccountNotFound
func (b *Bank) lookup(id string) (*slot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound{ID: id}
	}
	return s, nil
}

// GetAccount returns the current snapshot of an account
func (b *Bank) GetAccount(id string) (account.Snapshot, error) {
	s, err := b.lookup(id)
	if err != nil {
		return account.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Snapshot(), nil
}

// Deposit credits an account and returns its updated snapshot
func (b *Bank) Deposit(id string, amount decimal.Decimal, note string) (account.Snapshot, error) {
	s, err := b.lookup(id)
	if err != nil {
		return account.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acc.Deposit(amount, note); err != nil {
		return account.Snapshot{}, err
	}
	return s.acc.Snapshot(), nil
}

// Withdraw debits an account and returns its updated snapshot
func (b *Bank) Withdraw(id string, amount decimal.Decimal, note string) (account.Snapshot, error) {
	s, err := b.lookup(id)
	if err != nil {
		return account.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.acc.Withdraw(amount, note); err != nil {
		return account.Snapshot{}, err
	}
	return s.acc.Snapshot(), nil
}

// Transfer moves amount between two accounts and returns both updated
// snapshots. Locks are taken in id order regardless of transfer direction.
func (b *Bank) Transfer(fromID, toID string, amount decimal.Decimal, note string) (account.Snapshot, account.Snapshot, error) {
	from, err := b.lookup(fromID)
	if err != nil {
		return account.Snapshot{}, account.Snapshot{}, err
	}
	to, err := b.lookup(toID)
	if err != nil {
		return account.Snapshot{}, account.Snapshot{}, err
	}

	if fromID == toID {
		from.mu.Lock()
		defer from.mu.Unlock()
	} else if fromID < toID {
		from.mu.Lock()
		defer from.mu.Unlock()
		to.mu.Lock()
		defer to.mu.Unlock()
	} else {
		to.mu.Lock()
		defer to.mu.Unlock()
		from.mu.Lock()
		defer from.mu.Unlock()
	}

	if err := from.acc.TransferTo(to.acc, amount, note); err != nil {
		return account.Snapshot{}, account.Snapshot{}, err
	}
	return from.acc.Snapshot(), to.acc.Snapshot(), nil
}

// AccountIDs returns every registered account id in sorted order
func (b *Bank) AccountIDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.accounts))
	for id := range b.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SettleAccount applies the account's end-of-day rule exactly once
func (b *Bank) SettleAccount(id string) error {
	s, err := b.lookup(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acc.EndOfDay()
	return nil
}

// EndOfDay settles every account in the registry. Each account's settlement
// is self-contained, so iteration order carries no semantics.
func (b *Bank) EndOfDay() {
	for _, id := range b.AccountIDs() {
		// an id cannot disappear between AccountIDs and SettleAccount;
		// accounts are never removed from the registry
		_ = b.SettleAccount(id)
	}
}
