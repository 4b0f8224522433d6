package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-dev/moneta/internal/id"
)

func TestSavingsCalculateInterest(t *testing.T) {
	gen := id.NewSequence("tx")
	deposit := debitTx(gen, "0412", "2000")
	src := newFakeSource(deposit)

	acct, err := NewSavings(id.NewSequence("acct"), testParams(), dec("4.5"))
	require.NoError(t, err)
	acct.AddTransactionID(deposit.ID)

	// 2000 * 4.5 / 100
	assert.True(t, acct.CalculateInterest(src).Equal(dec("90")))
}

func TestCreditCardUtilization(t *testing.T) {
	gen := id.NewSequence("tx")
	charge := debitTx(gen, "0412", "250")
	src := newFakeSource(charge)

	acct, err := NewCreditCard(id.NewSequence("acct"), testParams(), CreditCardParams{
		CreditLimit: dec("1000"),
	})
	require.NoError(t, err)
	acct.AddTransactionID(charge.ID)

	assert.True(t, acct.CalculateCreditUtilization(src).Equal(dec("25")))
	assert.True(t, acct.IdealUtilization().Equal(dec("300")))
}

func TestCreditCardUtilizationZeroLimit(t *testing.T) {
	acct, err := NewCreditCard(id.NewSequence("acct"), testParams(), CreditCardParams{})
	require.NoError(t, err)

	assert.True(t, acct.CalculateCreditUtilization(newFakeSource()).IsZero())
}

func TestLoanRemainingBalance(t *testing.T) {
	gen := id.NewSequence("tx")
	p1 := debitTx(gen, "0412", "1200")
	p2 := debitTx(gen, "0412", "800")
	src := newFakeSource(p1, p2)

	acct, err := NewLoan(id.NewSequence("acct"), testParams(), LoanParams{
		InterestRate: dec("6"),
		TermMonths:   60,
		Principal:    dec("12000"),
	})
	require.NoError(t, err)
	acct.AddTransactionID(p1.ID)
	acct.AddTransactionID(p2.ID)

	assert.True(t, acct.CalculateRemainingBalance(src).Equal(dec("10000")))
}

func TestLoanRemainingBalanceNeverNegative(t *testing.T) {
	gen := id.NewSequence("tx")
	overpay := debitTx(gen, "0412", "15000")
	src := newFakeSource(overpay)

	acct, err := NewLoan(id.NewSequence("acct"), testParams(), LoanParams{
		InterestRate: dec("6"),
		TermMonths:   60,
		Principal:    dec("12000"),
	})
	require.NoError(t, err)
	acct.AddTransactionID(overpay.ID)

	assert.True(t, acct.CalculateRemainingBalance(src).IsZero())
}

func TestLoanMonthlyPayment(t *testing.T) {
	acct, err := NewLoan(id.NewSequence("acct"), testParams(), LoanParams{
		InterestRate: dec("6"),
		TermMonths:   60,
		Principal:    dec("12000"),
	})
	require.NoError(t, err)

	// Standard amortization of 12000 at 6% over 60 months.
	assert.Equal(t, "231.99", acct.CalculateMonthlyPayment().StringFixed(2))
}

func TestLoanMonthlyPaymentZeroRate(t *testing.T) {
	acct, err := NewLoan(id.NewSequence("acct"), testParams(), LoanParams{
		InterestRate: dec("0"),
		TermMonths:   48,
		Principal:    dec("12000"),
	})
	require.NoError(t, err)

	assert.True(t, acct.CalculateMonthlyPayment().Equal(dec("250")))
}

func TestLoanRejectsNonPositiveTerm(t *testing.T) {
	_, err := NewLoan(id.NewSequence("acct"), testParams(), LoanParams{
		InterestRate: dec("6"),
		TermMonths:   0,
		Principal:    dec("12000"),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "termMonths", verr.Field)
}

func TestInvestmentBalanceIgnoresLedger(t *testing.T) {
	gen := id.NewSequence("tx")
	unrelated := debitTx(gen, "0412", "99999")
	src := newFakeSource(unrelated)

	acct, err := NewInvestment(id.NewSequence("acct"), testParams(), []Holding{
		{Symbol: "VTI", Quantity: dec("10"), MarketPrice: dec("5")},
		{Symbol: "AAPL", Quantity: dec("2"), MarketPrice: dec("100")},
	})
	require.NoError(t, err)
	acct.AddTransactionID(unrelated.ID)

	assert.True(t, acct.ComputeBalance(src).Equal(dec("250")))
}

func TestHoldingMarketValue(t *testing.T) {
	h := Holding{Symbol: "VXUS", Quantity: dec("3.5"), MarketPrice: dec("60.20")}
	assert.True(t, h.MarketValue().Equal(dec("210.70")))
}

func TestRetirementBalanceFromHoldings(t *testing.T) {
	acct, err := NewRetirement(id.NewSequence("acct"), testParams(), RetirementParams{
		PlanType:          "401k",
		TaxAdvantaged:     true,
		ContributionLimit: dec("23500"),
		Holdings: []Holding{
			{Symbol: "FXAIX", Quantity: dec("40"), MarketPrice: dec("150")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, TypeRetirement, acct.Type)
	assert.True(t, acct.ComputeBalance(newFakeSource()).Equal(dec("6000")))
}

func TestRetirementRequiresPlanType(t *testing.T) {
	_, err := NewRetirement(id.NewSequence("acct"), testParams(), RetirementParams{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "planType", verr.Field)
}
