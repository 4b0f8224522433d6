// Package storage defines the flat serializable projection of account
// state. Records are not live accounts; they round-trip to exactly one
// concrete variant selected by the meta.kind discriminant.
package storage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/model"
)

// SchemaVersion is written into every record's meta for forward schema
// evolution.
const SchemaVersion = 1

// AccountMeta carries the discriminant and schema bookkeeping.
type AccountMeta struct {
	Kind      model.AccountType `json:"kind"`
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// HoldingRecord is the stored form of a holding.
type HoldingRecord struct {
	Symbol      string          `json:"symbol"`
	Quantity    decimal.Decimal `json:"quantity"`
	MarketPrice decimal.Decimal `json:"marketPrice"`
}

// AccountDetails is the bag of variant-specific scalars. Only the fields
// belonging to the record's kind are set.
type AccountDetails struct {
	// Checking
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit,omitempty"`

	// Savings and Loan
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"`

	// CreditCard
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
	APR         *decimal.Decimal `json:"apr,omitempty"`
	DueDay      *int             `json:"dueDay,omitempty"`

	// Loan
	TermMonths *int             `json:"termMonths,omitempty"`
	Principal  *decimal.Decimal `json:"principal,omitempty"`

	// Investment and Retirement
	Holdings []HoldingRecord `json:"holdings,omitempty"`

	// Retirement
	PlanType          string           `json:"planType,omitempty"`
	TaxAdvantaged     *bool            `json:"taxAdvantaged,omitempty"`
	ContributionLimit *decimal.Decimal `json:"contributionLimit,omitempty"`
}

// AccountRecord is what is actually stored for one account.
type AccountRecord struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Type                  model.AccountType `json:"type"`
	Institution           string            `json:"institution"`
	AccountNumber         string            `json:"accountNumber"`
	Currency              string            `json:"currency"`
	Notes                 string            `json:"notes,omitempty"`
	IsActive              bool              `json:"isActive"`
	IncludeInTotalBalance bool              `json:"includeInTotalBalance"`
	TransactionIDs        []string          `json:"transactionIds"`
	RecurringEventIDs     []string          `json:"recurringEventIds"`
	Meta                  AccountMeta       `json:"meta"`
	Details               *AccountDetails   `json:"details,omitempty"`
}

// ToRecord projects a live account into its stored form. The cached
// balance snapshot is derived state and deliberately not stored.
func ToRecord(acct model.Account, now time.Time) AccountRecord {
	base := acct.Base()
	rec := AccountRecord{
		ID:                    base.ID,
		Name:                  base.Name,
		Type:                  base.Type,
		Institution:           base.Institution,
		AccountNumber:         base.AccountNumber,
		Currency:              base.Currency,
		Notes:                 base.Notes,
		IsActive:              base.IsActive,
		IncludeInTotalBalance: base.IncludeInTotalBalance,
		TransactionIDs:        base.TransactionIDs(),
		RecurringEventIDs:     base.RecurringEventIDs(),
		Meta: AccountMeta{
			Kind:      base.Type,
			Version:   SchemaVersion,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	rec.Details = detailsFor(acct)
	return rec
}

func detailsFor(acct model.Account) *AccountDetails {
	switch a := acct.(type) {
	case *model.CheckingAccount:
		if a.OverdraftLimit == nil {
			return nil
		}
		return &AccountDetails{OverdraftLimit: a.OverdraftLimit}
	case *model.SavingsAccount:
		rate := a.InterestRate
		return &AccountDetails{InterestRate: &rate}
	case *model.CreditCardAccount:
		limit := a.CreditLimit
		return &AccountDetails{CreditLimit: &limit, APR: a.APR, DueDay: a.DueDay}
	case *model.LoanAccount:
		rate := a.InterestRate
		term := a.TermMonths
		principal := a.Principal
		return &AccountDetails{InterestRate: &rate, TermMonths: &term, Principal: &principal}
	case *model.InvestmentAccount:
		return &AccountDetails{Holdings: toHoldingRecords(a.Holdings)}
	case *model.RetirementAccount:
		taxAdvantaged := a.TaxAdvantaged
		limit := a.ContributionLimit
		return &AccountDetails{
			Holdings:          toHoldingRecords(a.Holdings),
			PlanType:          a.PlanType,
			TaxAdvantaged:     &taxAdvantaged,
			ContributionLimit: &limit,
		}
	}
	return nil
}

// fixedID is an id.Generator that replays a stored id, so reconstruction
// goes through the same validated constructors as fresh creation.
type fixedID string

func (f fixedID) NewID() string { return string(f) }

// Account reconstructs the concrete variant named by meta.kind. Unknown
// kinds and records failing construction-time validation error out.
func (rec AccountRecord) Account() (model.Account, error) {
	kind := rec.Meta.Kind
	if kind == "" {
		kind = rec.Type
	}

	params := model.AccountParams{
		Name:          rec.Name,
		AccountNumber: rec.AccountNumber,
		Institution:   rec.Institution,
		Currency:      rec.Currency,
		Notes:         rec.Notes,
	}
	gen := fixedID(rec.ID)
	details := rec.Details
	if details == nil {
		details = &AccountDetails{}
	}

	var (
		acct model.Account
		err  error
	)
	switch kind {
	case model.TypeChecking:
		acct, err = model.NewChecking(gen, params, details.OverdraftLimit)
	case model.TypeSavings:
		acct, err = model.NewSavings(gen, params, deref(details.InterestRate))
	case model.TypeCreditCard:
		acct, err = model.NewCreditCard(gen, params, model.CreditCardParams{
			CreditLimit: deref(details.CreditLimit),
			APR:         details.APR,
			DueDay:      details.DueDay,
		})
	case model.TypeLoan:
		term := 0
		if details.TermMonths != nil {
			term = *details.TermMonths
		}
		acct, err = model.NewLoan(gen, params, model.LoanParams{
			InterestRate: deref(details.InterestRate),
			TermMonths:   term,
			Principal:    deref(details.Principal),
		})
	case model.TypeInvestment:
		acct, err = model.NewInvestment(gen, params, toHoldings(details.Holdings))
	case model.TypeRetirement:
		taxAdvantaged := false
		if details.TaxAdvantaged != nil {
			taxAdvantaged = *details.TaxAdvantaged
		}
		acct, err = model.NewRetirement(gen, params, model.RetirementParams{
			PlanType:          details.PlanType,
			TaxAdvantaged:     taxAdvantaged,
			ContributionLimit: deref(details.ContributionLimit),
			Holdings:          toHoldings(details.Holdings),
		})
	default:
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("rebuilding account %s: %w", rec.ID, err)
	}

	base := acct.Base()
	base.IsActive = rec.IsActive
	base.IncludeInTotalBalance = rec.IncludeInTotalBalance
	base.SetTransactionIDs(rec.TransactionIDs)
	base.SetRecurringEventIDs(rec.RecurringEventIDs)
	return acct, nil
}

func toHoldingRecords(holdings []model.Holding) []HoldingRecord {
	out := make([]HoldingRecord, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, HoldingRecord{Symbol: h.Symbol, Quantity: h.Quantity, MarketPrice: h.MarketPrice})
	}
	return out
}

func toHoldings(records []HoldingRecord) []model.Holding {
	out := make([]model.Holding, 0, len(records))
	for _, r := range records {
		out = append(out, model.Holding{Symbol: r.Symbol, Quantity: r.Quantity, MarketPrice: r.MarketPrice})
	}
	return out
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
