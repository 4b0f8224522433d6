package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/moneta-dev/moneta/internal/model"
)

// ReadRecords decodes a JSON array of account records.
func ReadRecords(r io.Reader) ([]AccountRecord, error) {
	var records []AccountRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding account records: %w", err)
	}
	return records, nil
}

// WriteRecords encodes account records as an indented JSON array.
func WriteRecords(w io.Writer, records []AccountRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding account records: %w", err)
	}
	return nil
}

// ReadAccounts decodes records and reconstructs the live variants.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(records))
	for i, rec := range records {
		acct, err := rec.Account()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts projects live accounts into records and encodes them.
func WriteAccounts(w io.Writer, accounts []model.Account, now time.Time) error {
	records := make([]AccountRecord, 0, len(accounts))
	for _, acct := range accounts {
		records = append(records, ToRecord(acct, now))
	}
	return WriteRecords(w, records)
}
