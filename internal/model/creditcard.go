package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// idealUtilizationRate is the commonly advised ceiling on revolving credit
// use, as a fraction of the credit limit.
var idealUtilizationRate = decimal.NewFromFloat(0.3)

// CreditCardAccount is a revolving credit account.
type CreditCardAccount struct {
	BaseAccount

	CreditLimit decimal.Decimal
	APR         *decimal.Decimal
	DueDay      *int // day of month a payment is due, 1-31
}

// CreditCardParams holds the variant-specific inputs for a credit card.
type CreditCardParams struct {
	CreditLimit decimal.Decimal
	APR         *decimal.Decimal
	DueDay      *int
}

// NewCreditCard creates a CreditCardAccount.
func NewCreditCard(gen id.Generator, params AccountParams, card CreditCardParams) (*CreditCardAccount, error) {
	base, err := newBase(gen, TypeCreditCard, params)
	if err != nil {
		return nil, err
	}
	return &CreditCardAccount{
		BaseAccount: base,
		CreditLimit: card.CreditLimit,
		APR:         card.APR,
		DueDay:      card.DueDay,
	}, nil
}

// CalculateCreditUtilization returns the current balance as a percentage
// of the credit limit. Zero when the limit is not positive.
func (a *CreditCardAccount) CalculateCreditUtilization(src TransactionSource) decimal.Decimal {
	if !a.CreditLimit.IsPositive() {
		return decimal.Zero
	}
	balance := a.ComputeBalance(src)
	return balance.Div(a.CreditLimit).Mul(oneHundred)
}

// IdealUtilization returns 30% of the credit limit in currency units.
func (a *CreditCardAccount) IdealUtilization() decimal.Decimal {
	return a.CreditLimit.Mul(idealUtilizationRate)
}
