package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

func txn(date, desc string) models.Transaction {
	return models.Transaction{TransactionDate: date, Description: desc, Amount: "1.00"}
}

func TestMergeSortsChronologically(t *testing.T) {
	a := []models.Transaction{txn("2024-02-01", "feb"), txn("2023-12-28", "dec")}
	b := []models.Transaction{txn("2024-01-02", "jan")}

	got := Merge(a, b)
	dates := []string{got[0].TransactionDate, got[1].TransactionDate, got[2].TransactionDate}
	assert.Equal(t, []string{"2023-12-28", "2024-01-02", "2024-02-01"}, dates)
}

func TestMergeStableWithinDay(t *testing.T) {
	a := []models.Transaction{txn("2024-01-02", "first"), txn("2024-01-02", "second")}
	b := []models.Transaction{txn("2024-01-02", "third")}

	got := Merge(a, b)
	descs := []string{got[0].Description, got[1].Description, got[2].Description}
	assert.Equal(t, []string{"first", "second", "third"}, descs)
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil))
}
