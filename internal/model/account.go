package model

import (
	"regexp"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// AccountType discriminates the concrete account variants.
type AccountType string

const (
	TypeChecking   AccountType = "checking"
	TypeSavings    AccountType = "savings"
	TypeCreditCard AccountType = "credit_card"
	TypeLoan       AccountType = "loan"
	TypeInvestment AccountType = "investment"
	TypeRetirement AccountType = "retirement"
)

// TransactionSource resolves transaction ids to transactions. Implemented
// by ledger.Store; accounts never hold transaction objects, only ids.
type TransactionSource interface {
	Get(id string) (Transaction, bool)
	GetMany(ids []string) []Transaction
}

// Account is the closed set of account variants. Each variant supplies its
// own balance derivation: most sum the ledger, investment-style variants
// value their holdings and ignore the ledger entirely. The two derivations
// must never be mixed for one account.
type Account interface {
	Base() *BaseAccount
	ComputeBalance(src TransactionSource) decimal.Decimal
}

var accountNumberPattern = regexp.MustCompile(`^\d{4}$`)

// BaseAccount holds the identity and bookkeeping shared by every variant.
// The transaction-id and recurring-event-id lists keep insertion order and
// never contain duplicates.
type BaseAccount struct {
	ID          string
	Name        string
	Institution string
	Type        AccountType
	Currency    string
	// AccountNumber is the last 4 digits of the real account number.
	AccountNumber string
	Notes         string

	IsActive              bool
	IncludeInTotalBalance bool

	// Balance and BalanceAsOf are a cached snapshot, refreshed only as a
	// pair by RefreshBalance. Not kept in sync with the store.
	Balance     decimal.Decimal
	BalanceAsOf time.Time

	transactionIDs    []string
	recurringEventIDs []string
}

// AccountParams holds the inputs shared by every variant constructor.
type AccountParams struct {
	Name          string
	AccountNumber string
	Institution   string
	Currency      string // defaults to USD
	Notes         string
}

// newBase validates shared fields and builds the embedded base. Every
// variant constructor funnels through here, so the account-number check
// cannot be skipped.
func newBase(gen id.Generator, typ AccountType, params AccountParams) (BaseAccount, error) {
	if !accountNumberPattern.MatchString(params.AccountNumber) {
		return BaseAccount{}, &ValidationError{
			Field:  "accountNumber",
			Value:  params.AccountNumber,
			Reason: "must be exactly 4 digits",
		}
	}

	currency := params.Currency
	if currency == "" {
		currency = money.USD
	}
	if money.GetCurrency(currency) == nil {
		return BaseAccount{}, &ValidationError{
			Field:  "currency",
			Value:  params.Currency,
			Reason: "unknown ISO currency code",
		}
	}

	return BaseAccount{
		ID:                    gen.NewID(),
		Name:                  params.Name,
		Institution:           params.Institution,
		Type:                  typ,
		Currency:              currency,
		AccountNumber:         params.AccountNumber,
		Notes:                 params.Notes,
		IsActive:              true,
		IncludeInTotalBalance: true,
	}, nil
}

// Base returns the shared portion of the account.
func (b *BaseAccount) Base() *BaseAccount { return b }

// CalculateBalance sums the amounts of the transactions resolved from
// txIDs. Ids with no entry in the store are skipped, not errored: a ledger
// referencing pruned transactions is an expected steady state, and a
// possibly understated balance beats a hard failure.
func (b *BaseAccount) CalculateBalance(txIDs []string, src TransactionSource) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range src.GetMany(txIDs) {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// ComputeBalance is the ledger-sum derivation over the account's own
// transaction ids. Investment-style variants shadow this with a holdings
// valuation.
func (b *BaseAccount) ComputeBalance(src TransactionSource) decimal.Decimal {
	return b.CalculateBalance(b.transactionIDs, src)
}

// AddTransactionID appends a transaction id unless already present.
func (b *BaseAccount) AddTransactionID(txID string) {
	b.transactionIDs = appendUnique(b.transactionIDs, txID)
}

// RemoveTransactionID removes a transaction id; no-op if absent.
func (b *BaseAccount) RemoveTransactionID(txID string) {
	b.transactionIDs = remove(b.transactionIDs, txID)
}

// TransactionIDs returns a copy of the transaction id list in insertion order.
func (b *BaseAccount) TransactionIDs() []string {
	out := make([]string, len(b.transactionIDs))
	copy(out, b.transactionIDs)
	return out
}

// SetTransactionIDs replaces the transaction id list, dropping duplicates
// while keeping first-seen order. Used when rebuilding from storage.
func (b *BaseAccount) SetTransactionIDs(ids []string) {
	b.transactionIDs = nil
	for _, txID := range ids {
		b.transactionIDs = appendUnique(b.transactionIDs, txID)
	}
}

// AddRecurringEventID appends a recurring-event id unless already present.
func (b *BaseAccount) AddRecurringEventID(eventID string) {
	b.recurringEventIDs = appendUnique(b.recurringEventIDs, eventID)
}

// RemoveRecurringEventID removes a recurring-event id; no-op if absent.
func (b *BaseAccount) RemoveRecurringEventID(eventID string) {
	b.recurringEventIDs = remove(b.recurringEventIDs, eventID)
}

// RecurringEventIDs returns a copy of the recurring-event id list.
func (b *BaseAccount) RecurringEventIDs() []string {
	out := make([]string, len(b.recurringEventIDs))
	copy(out, b.recurringEventIDs)
	return out
}

// SetRecurringEventIDs replaces the recurring-event id list, dropping
// duplicates while keeping first-seen order.
func (b *BaseAccount) SetRecurringEventIDs(ids []string) {
	b.recurringEventIDs = nil
	for _, eventID := range ids {
		b.recurringEventIDs = appendUnique(b.recurringEventIDs, eventID)
	}
}

// RefreshBalance recomputes the account's balance through its variant
// derivation and updates the cached Balance and BalanceAsOf together.
func RefreshBalance(acct Account, src TransactionSource, asOf time.Time) decimal.Decimal {
	balance := acct.ComputeBalance(src)
	base := acct.Base()
	base.Balance = balance
	base.BalanceAsOf = asOf
	return balance
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}
