package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// CheckingAccount is a standard transactional account. The overdraft limit
// is a policy threshold only; balance derivation does not enforce it.
type CheckingAccount struct {
	BaseAccount

	OverdraftLimit *decimal.Decimal
}

// NewChecking creates a CheckingAccount.
func NewChecking(gen id.Generator, params AccountParams, overdraftLimit *decimal.Decimal) (*CheckingAccount, error) {
	base, err := newBase(gen, TypeChecking, params)
	if err != nil {
		return nil, err
	}
	return &CheckingAccount{BaseAccount: base, OverdraftLimit: overdraftLimit}, nil
}
