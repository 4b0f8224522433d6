package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,account_number,type,category,subcategory,amount,date,recurring_event_id,counterparty,notes"

const (
	numFields    = 10
	dateFormat   = "2006-01-02"
	colID        = 0
	colAcctNum   = 1
	colType      = 2
	colCategory  = 3
	colSubcat    = 4
	colAmount    = 5
	colDate      = 6
	colRecurring = 7
	colCparty    = 8
	colNotes     = 9
)

// ledgerFile is the transaction ledger path relative to a data root.
const ledgerFile = "ledger/transactions.csv"

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colAcctNum] = tx.AccountNumber
	row[colType] = string(tx.Type)
	row[colCategory] = string(tx.Category)
	row[colSubcat] = string(tx.SubCategory)
	row[colAmount] = tx.Amount.String()
	if !tx.Date.IsZero() {
		row[colDate] = tx.Date.Format(dateFormat)
	}
	row[colRecurring] = tx.RecurringEventID
	row[colCparty] = tx.CounterParty
	row[colNotes] = tx.Notes
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var date time.Time
	if record[colDate] != "" {
		date, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	return model.Transaction{
		ID:               record[colID],
		AccountNumber:    record[colAcctNum],
		Type:             model.TransactionType(record[colType]),
		Category:         model.MainCategory(record[colCategory]),
		SubCategory:      model.SubCategory(record[colSubcat]),
		Amount:           amount,
		Date:             date,
		RecurringEventID: record[colRecurring],
		CounterParty:     record[colCparty],
		Notes:            record[colNotes],
	}, nil
}

// Load reads <dataRoot>/ledger/transactions.csv into a Store. A missing
// file yields an empty store.
func Load(dataRoot string) (*Store, error) {
	store := NewStore()

	path := filepath.Join(dataRoot, filepath.FromSlash(ledgerFile))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	for _, tx := range txs {
		store.Add(tx)
	}
	return store, nil
}

// Save writes the store's transactions to <dataRoot>/ledger/transactions.csv.
func Save(dataRoot string, store *Store) error {
	path := filepath.Join(dataRoot, filepath.FromSlash(ledgerFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, store.All()); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}
