package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

var oneHundred = decimal.NewFromInt(100)

// SavingsAccount is an interest-bearing deposit account.
type SavingsAccount struct {
	BaseAccount

	// InterestRate is the annual rate as a percentage (e.g. 4.5 for 4.5%).
	InterestRate decimal.Decimal
}

// NewSavings creates a SavingsAccount.
func NewSavings(gen id.Generator, params AccountParams, interestRate decimal.Decimal) (*SavingsAccount, error) {
	base, err := newBase(gen, TypeSavings, params)
	if err != nil {
		return nil, err
	}
	return &SavingsAccount{BaseAccount: base, InterestRate: interestRate}, nil
}

// CalculateInterest returns the annual interest accrued on the current
// ledger balance: balance * rate / 100.
func (a *SavingsAccount) CalculateInterest(src TransactionSource) decimal.Decimal {
	balance := a.ComputeBalance(src)
	return balance.Mul(a.InterestRate).Div(oneHundred)
}
