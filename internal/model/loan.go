package model

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

var (
	one          = decimal.NewFromInt(1)
	twelve       = decimal.NewFromInt(12)
	paymentScale = int32(2)
)

// LoanAccount is an installment loan. Payments against the loan appear as
// transactions on its ledger; the remaining balance is principal minus the
// ledger sum, never negative.
type LoanAccount struct {
	BaseAccount

	// InterestRate is the annual rate as a percentage.
	InterestRate decimal.Decimal
	TermMonths   int
	Principal    decimal.Decimal

	// monthlyPayment is computed once at construction from the amortization
	// formula.
	monthlyPayment decimal.Decimal
}

// LoanParams holds the variant-specific inputs for a loan.
type LoanParams struct {
	InterestRate decimal.Decimal
	TermMonths   int
	Principal    decimal.Decimal
}

// NewLoan creates a LoanAccount.
func NewLoan(gen id.Generator, params AccountParams, loan LoanParams) (*LoanAccount, error) {
	if loan.TermMonths <= 0 {
		return nil, &ValidationError{
			Field:  "termMonths",
			Value:  strconv.Itoa(loan.TermMonths),
			Reason: "must be a positive number of months",
		}
	}
	base, err := newBase(gen, TypeLoan, params)
	if err != nil {
		return nil, err
	}
	a := &LoanAccount{
		BaseAccount:  base,
		InterestRate: loan.InterestRate,
		TermMonths:   loan.TermMonths,
		Principal:    loan.Principal,
	}
	a.monthlyPayment = amortizedPayment(loan.Principal, loan.InterestRate, loan.TermMonths)
	return a, nil
}

// CalculateRemainingBalance returns principal minus the amounts paid so
// far, clamped at zero when overpaid.
func (a *LoanAccount) CalculateRemainingBalance(src TransactionSource) decimal.Decimal {
	paid := a.ComputeBalance(src)
	remaining := a.Principal.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// CalculateMonthlyPayment returns the fixed monthly payment computed at
// construction.
func (a *LoanAccount) CalculateMonthlyPayment() decimal.Decimal {
	return a.monthlyPayment
}

// amortizedPayment applies the standard formula
// payment = P*r / (1 - (1+r)^-n) with r = monthly rate and n = term in
// months. A zero rate degenerates the formula to 0/0, so that case falls
// back to straight-line P/n.
func amortizedPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(n).Round(paymentScale)
	}

	r := annualRatePercent.Div(oneHundred).Div(twelve)
	growth := one.Add(r).Pow(n)
	denominator := one.Sub(one.Div(growth))
	return principal.Mul(r).Div(denominator).Round(paymentScale)
}
