// Package aggregator merges transaction sets across statements and
// accounts. Sorting is stable and keys on the ISO transaction date, so
// same-day entries keep the order their statements gave them.
package aggregator

import (
	"sort"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// Merge concatenates the given sets in order and stable-sorts the result
// chronologically. ISO dates compare correctly as strings.
func Merge(sets ...[]models.Transaction) []models.Transaction {
	var merged []models.Transaction
	for _, set := range sets {
		merged = append(merged, set...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TransactionDate < merged[j].TransactionDate
	})
	return merged
}
