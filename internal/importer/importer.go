// Package importer turns bank statement CSV exports into ledger
// transactions for one account.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-dev/moneta/internal/id"
	"github.com/moneta-dev/moneta/internal/model"
)

// Row is one parsed statement line, not yet a ledger transaction.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string
}

// Parser converts a bank CSV file into statement rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// importDir is the subdirectory for import CSVs.
const importDir = "import"

// processedDir is the subdirectory for processed CSVs.
const processedDir = "import/processed"

// Scan returns CSV files in <dataRoot>/import/.
func Scan(dataRoot string) ([]FileInfo, error) {
	dir := filepath.Join(dataRoot, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(dataRoot, fileName string) error {
	src := filepath.Join(dataRoot, importDir, fileName)
	dstDir := filepath.Join(dataRoot, filepath.FromSlash(processedDir))

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// ToTransactions converts statement rows into ledger transactions for one
// account. Money out becomes a debit, money in a credit; the signed
// amount is carried through unchanged so ledger sums stay correct.
func ToTransactions(gen id.Generator, rows []Row, accountNumber string, category model.MainCategory, sub model.SubCategory) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		txType := model.TypeCredit
		if row.Amount.IsNegative() {
			txType = model.TypeDebit
		}

		tx, err := model.NewTransaction(gen, model.TransactionParams{
			AccountNumber: accountNumber,
			Type:          txType,
			Category:      category,
			SubCategory:   sub,
			Amount:        row.Amount,
			Date:          row.Date,
			CounterParty:  row.Description,
			Notes:         row.Reference,
		})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
