// Package writer serializes normalized transactions to the five-column CSV
// schema and reads them back. Column order is fixed:
// transaction_date,description,amount,account_name,file_name.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// Record is one CSV row of the standard schema.
type Record struct {
	TransactionDate string `csv:"transaction_date"`
	Description     string `csv:"description"`
	Amount          string `csv:"amount"`
	AccountName     string `csv:"account_name"`
	FileName        string `csv:"file_name"`
}

// TaggedRecord extends the schema with the category column used by the
// final combined output.
type TaggedRecord struct {
	Record
	Category string `csv:"category"`
}

// Write serializes transactions, header line first.
func Write(out io.Writer, txns []models.Transaction) error {
	records := toRecords(txns)
	if err := gocsv.Marshal(&records, out); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteFile writes transactions to path, creating parent directories.
func WriteFile(path string, txns []models.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	return Write(f, txns)
}

// Read parses the five-column CSV back into transactions.
func Read(in io.Reader) ([]models.Transaction, error) {
	var records []Record
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	txns := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		txns = append(txns, models.Transaction{
			TransactionDate: r.TransactionDate,
			Description:     r.Description,
			Amount:          r.Amount,
			AccountName:     r.AccountName,
			FileName:        r.FileName,
		})
	}
	return txns, nil
}

// ReadFile parses a CSV file written by WriteFile.
func ReadFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// WriteTagged writes the six-column combined output, categories resolved by
// the caller per description.
func WriteTagged(out io.Writer, txns []models.Transaction, categories []string) error {
	if len(categories) != len(txns) {
		return fmt.Errorf("write csv: %d categories for %d transactions", len(categories), len(txns))
	}
	records := make([]TaggedRecord, 0, len(txns))
	for i, txn := range txns {
		records = append(records, TaggedRecord{Record: toRecord(txn), Category: categories[i]})
	}
	if err := gocsv.Marshal(&records, out); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func toRecord(txn models.Transaction) Record {
	return Record{
		TransactionDate: txn.TransactionDate,
		Description:     txn.Description,
		Amount:          txn.Amount,
		AccountName:     txn.AccountName,
		FileName:        txn.FileName,
	}
}

func toRecords(txns []models.Transaction) []Record {
	records := make([]Record, 0, len(txns))
	for _, txn := range txns {
		records = append(records, toRecord(txn))
	}
	return records
}
