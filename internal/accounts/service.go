// Package accounts provides in-memory lookup and aggregation over a
// user's accounts, plus file round-tripping through storage records.
package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/model"
	"github.com/moneta-dev/moneta/internal/storage"
)

const accountsFile = "accounts/accounts.json"

// Service provides in-memory lookup over a set of accounts. Like the rest
// of the core it does no internal locking.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
	byNumber map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	s := &Service{
		byID:     make(map[string]model.Account, len(accounts)),
		byNumber: make(map[string]model.Account, len(accounts)),
	}
	for _, a := range accounts {
		s.Add(a)
	}
	return s
}

// Load reads accounts/accounts.json from a data root and returns a
// Service. A missing file yields an empty Service.
func Load(dataRoot string) (*Service, error) {
	path := filepath.Join(dataRoot, filepath.FromSlash(accountsFile))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewService(nil), nil
		}
		return nil, fmt.Errorf("opening accounts file: %w", err)
	}
	defer f.Close()

	accts, err := storage.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts), nil
}

// Save writes the accounts to <dataRoot>/accounts/accounts.json.
func (s *Service) Save(dataRoot string) error {
	path := filepath.Join(dataRoot, filepath.FromSlash(accountsFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := storage.WriteAccounts(f, s.accounts, time.Now()); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}

// Add registers an account, replacing any prior account with the same id.
func (s *Service) Add(acct model.Account) {
	base := acct.Base()
	if _, exists := s.byID[base.ID]; exists {
		for i, existing := range s.accounts {
			if existing.Base().ID == base.ID {
				s.accounts[i] = acct
				break
			}
		}
	} else {
		s.accounts = append(s.accounts, acct)
	}
	s.byID[base.ID] = acct
	s.byNumber[base.AccountNumber] = acct
}

// All returns all accounts in registration order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by id.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// ByNumber returns an account by its 4-digit account number.
func (s *Service) ByNumber(accountNumber string) (model.Account, bool) {
	a, ok := s.byNumber[accountNumber]
	return a, ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Base().Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Active returns all accounts with the isActive flag set.
func (s *Service) Active() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Base().IsActive {
			result = append(result, a)
		}
	}
	return result
}

// TotalBalance refreshes and sums the balances of every active account
// flagged for inclusion in aggregate totals. Each account contributes via
// its own variant derivation.
func (s *Service) TotalBalance(src model.TransactionSource, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.accounts {
		base := a.Base()
		if !base.IsActive || !base.IncludeInTotalBalance {
			continue
		}
		total = total.Add(model.RefreshBalance(a, src, asOf))
	}
	return total
}
