// Package ledger holds the canonical transaction index. The store is the
// single source of truth for transaction data; accounts reference entries
// by id only.
package ledger

import (
	"github.com/moneta-dev/moneta/internal/model"
)

// Store is an in-memory index from transaction id to Transaction. It does
// no internal locking; a concurrent host must serialize access itself.
type Store struct {
	transactions map[string]model.Transaction
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{transactions: make(map[string]model.Transaction)}
}

// Add inserts a transaction keyed by its id, replacing any prior entry
// with the same id. Replacement is not an error.
func (s *Store) Add(tx model.Transaction) {
	s.transactions[tx.ID] = tx
}

// Get returns the transaction for id, and whether it exists. Absence is a
// normal result, not a failure: ledgers may reference transactions pruned
// by retention policy.
func (s *Store) Get(id string) (model.Transaction, bool) {
	tx, ok := s.transactions[id]
	return tx, ok
}

// GetMany resolves ids in input order, omitting ids with no entry.
func (s *Store) GetMany(ids []string) []model.Transaction {
	var out []model.Transaction
	for _, id := range ids {
		if tx, ok := s.transactions[id]; ok {
			out = append(out, tx)
		}
	}
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}

// All returns every stored transaction in unspecified order.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, tx)
	}
	return out
}

// FindByID returns the transaction with the given id from an arbitrary
// slice, for callers holding transactions outside the store.
func FindByID(txs []model.Transaction, id string) (model.Transaction, bool) {
	for _, tx := range txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}
