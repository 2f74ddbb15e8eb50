package memstore

import (
	"sync"

	"korvo/internal/usecase/readmodel"
)

// CustomerStore holds the seeded customer records for the
// business-admin views. Read-only after bootstrap.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []readmodel.CustomerView
}

func NewCustomerStore(customers []readmodel.CustomerView) *CustomerStore {
	return &CustomerStore{customers: customers}
}

func (s *CustomerStore) All() []readmodel.CustomerView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]readmodel.CustomerView, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *CustomerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// TransactionStore holds the seeded activity entries (earn side). Burn
// entries are derived live from the claim ledger by the activity query.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions []readmodel.ActivityEntryView
}

func NewTransactionStore(transactions []readmodel.ActivityEntryView) *TransactionStore {
	return &TransactionStore{transactions: transactions}
}

func (s *TransactionStore) All() []readmodel.ActivityEntryView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]readmodel.ActivityEntryView, len(s.transactions))
	copy(out, s.transactions)
	return out
}
