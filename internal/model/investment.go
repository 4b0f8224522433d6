package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// Holding is a position in a tradable instrument.
type Holding struct {
	Symbol      string
	Quantity    decimal.Decimal
	MarketPrice decimal.Decimal
}

// MarketValue returns quantity * market price.
func (h Holding) MarketValue() decimal.Decimal {
	return h.Quantity.Mul(h.MarketPrice)
}

// InvestmentAccount is a brokerage account valued by its holdings. Cash
// flow transactions may still be linked for record keeping, but they play
// no part in the balance.
type InvestmentAccount struct {
	BaseAccount

	Holdings []Holding
}

// NewInvestment creates an InvestmentAccount.
func NewInvestment(gen id.Generator, params AccountParams, holdings []Holding) (*InvestmentAccount, error) {
	base, err := newBase(gen, TypeInvestment, params)
	if err != nil {
		return nil, err
	}
	return &InvestmentAccount{BaseAccount: base, Holdings: holdings}, nil
}

// ComputeBalance values the holdings and ignores the transaction ledger.
func (a *InvestmentAccount) ComputeBalance(TransactionSource) decimal.Decimal {
	return sumHoldings(a.Holdings)
}

func sumHoldings(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.MarketValue())
	}
	return total
}
