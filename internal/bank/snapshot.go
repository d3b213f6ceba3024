package bank

import (
	"encoding/json"
	"fmt"

	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

// State is the full wire representation of a bank: its name, every customer
// record and every account snapshot. Field names are part of the persistence
// and export contract.
type State struct {
	Name      string                       `json:"name"`
	Customers map[string]customer.Customer `json:"customers"`
	Accounts  map[string]account.Snapshot  `json:"accounts"`
}

// Snapshot captures the complete current state of the bank
func (b *Bank) Snapshot() State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	state := State{
		Name:      b.name,
		Customers: make(map[string]customer.Customer, len(b.customers)),
		Accounts:  make(map[string]account.Snapshot, len(b.accounts)),
	}
	for id, c := range b.customers {
		state.Customers[id] = c
	}
	for id, s := range b.accounts {
		s.mu.Lock()
		state.Accounts[id] = s.acc.Snapshot()
		s.mu.Unlock()
	}
	return state
}

// DumpJSON serializes the bank state as indented JSON
func (b *Bank) DumpJSON() ([]byte, error) {
	data, err := json.MarshalIndent(b.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bank state: %w", err)
	}
	return data, nil
}

// FromState rebuilds a bank from a snapshot. Accounts come back with their
// persisted id, owner, currency and balance but an empty ledger: transaction
// history does not survive a reload. Dumps still carry the full ledger for
// export consumers.
func FromState(state State) (*Bank, error) {
	b := New(state.Name)
	for id, c := range state.Customers {
		b.customers[id] = c
	}
	for id, snap := range state.Accounts {
		acc, err := account.Restore(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to restore account %s: %w", id, err)
		}
		b.accounts[id] = &slot{acc: acc}
	}
	return b, nil
}

// LoadJSON rebuilds a bank from a serialized snapshot
func LoadJSON(data []byte) (*Bank, error) {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse bank state: %w", err)
	}
	return FromState(state)
}
