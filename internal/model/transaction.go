package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
)

// TransactionType classifies the direction of a monetary movement.
type TransactionType string

const (
	TypeDebit    TransactionType = "debit"
	TypeCredit   TransactionType = "credit"
	TypeTransfer TransactionType = "transfer"
)

// Transaction is a single monetary movement against one account. Its id is
// assigned at construction and never reassigned; the record is treated as
// immutable once added to the store.
type Transaction struct {
	ID            string
	AccountNumber string // loose reference to an account's last-4, not an ownership pointer
	Type          TransactionType
	Category      MainCategory
	SubCategory   SubCategory
	Amount        decimal.Decimal // signed; negative amounts reduce ledger-sum balances
	Date          time.Time       // zero value means no date recorded

	RecurringEventID string // opaque id into the recurring-event subsystem
	CounterParty     string
	Notes            string
}

// TransactionParams holds the inputs for creating a Transaction.
type TransactionParams struct {
	AccountNumber    string
	Type             TransactionType
	Category         MainCategory
	SubCategory      SubCategory
	Amount           decimal.Decimal
	Date             time.Time
	RecurringEventID string
	CounterParty     string
	Notes            string
}

// NewTransaction creates a Transaction with a freshly generated id.
// The subcategory must belong to the main category's allowed set.
func NewTransaction(gen id.Generator, params TransactionParams) (Transaction, error) {
	switch params.Type {
	case TypeDebit, TypeCredit, TypeTransfer:
	default:
		return Transaction{}, &ValidationError{
			Field:  "type",
			Value:  string(params.Type),
			Reason: "must be debit, credit, or transfer",
		}
	}

	if err := ValidateCategory(params.Category, params.SubCategory); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:               gen.NewID(),
		AccountNumber:    params.AccountNumber,
		Type:             params.Type,
		Category:         params.Category,
		SubCategory:      params.SubCategory,
		Amount:           params.Amount,
		Date:             params.Date,
		RecurringEventID: params.RecurringEventID,
		CounterParty:     params.CounterParty,
		Notes:            params.Notes,
	}, nil
}
