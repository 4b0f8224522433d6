// Package activity keeps an append-only CSV trail of CLI actions.
package activity

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	Action    string // e.g. "init", "account-add", "tx-add", "import"
	Details   string
	AccountID string
}

// Header is the CSV header for activity.csv.
const Header = "timestamp,action,details,account_id"

const (
	numFields    = 4
	logDir       = "logs"
	logFile      = "logs/activity.csv"
	colTimestamp = 0
	colAction    = 1
	colDetails   = 2
	colAccountID = 3
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colAccountID] = e.AccountID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Action:    record[colAction],
		Details:   record[colDetails],
		AccountID: record[colAccountID],
	}, nil
}

// Append writes entries to <dataRoot>/logs/activity.csv, creating the
// file and header if needed.
func Append(dataRoot string, entries []Entry) error {
	dir := filepath.Join(dataRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataRoot, filepath.FromSlash(logFile))
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataRoot>/logs/activity.csv. Returns an
// empty slice if the file does not exist.
func Read(dataRoot string) ([]Entry, error) {
	path := filepath.Join(dataRoot, filepath.FromSlash(logFile))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Log appends a single entry stamped with the current time.
func Log(dataRoot, action, details, accountID string) error {
	return Append(dataRoot, []Entry{{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Action:    action,
		Details:   details,
		AccountID: accountID,
	}})
}
