package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// RetirementAccount is a tax-advantaged investment account (401k, IRA,
// Roth IRA, ...). Like InvestmentAccount it is valued by its holdings, not
// the ledger.
type RetirementAccount struct {
	BaseAccount

	PlanType      string // e.g. "401k", "IRA", "Roth IRA"
	TaxAdvantaged bool
	// ContributionLimit is the annual contribution cap for the plan; zero
	// means no limit is tracked.
	ContributionLimit decimal.Decimal

	Holdings []Holding
}

// RetirementParams holds the variant-specific inputs for a retirement
// account.
type RetirementParams struct {
	PlanType          string
	TaxAdvantaged     bool
	ContributionLimit decimal.Decimal
	Holdings          []Holding
}

// NewRetirement creates a RetirementAccount.
func NewRetirement(gen id.Generator, params AccountParams, plan RetirementParams) (*RetirementAccount, error) {
	if plan.PlanType == "" {
		return nil, &ValidationError{Field: "planType", Value: "", Reason: "must not be empty"}
	}
	base, err := newBase(gen, TypeRetirement, params)
	if err != nil {
		return nil, err
	}
	return &RetirementAccount{
		BaseAccount:       base,
		PlanType:          plan.PlanType,
		TaxAdvantaged:     plan.TaxAdvantaged,
		ContributionLimit: plan.ContributionLimit,
		Holdings:          plan.Holdings,
	}, nil
}

// ComputeBalance values the holdings and ignores the transaction ledger.
func (a *RetirementAccount) ComputeBalance(TransactionSource) decimal.Decimal {
	return sumHoldings(a.Holdings)
}
