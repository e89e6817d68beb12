package parser

import (
	"time"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// NoopVendor is a stand-in layout for exercising the pipeline without real
// statement text. Every page classifies as a transactions page except a
// fixed summary marker, and every table yields the same two rows.
type NoopVendor struct{}

func (*NoopVendor) VendorName() string { return "Noop" }

func (*NoopVendor) ClassifyPage(text string) models.PageClass {
	if text == "summary" {
		return models.PageSummary
	}
	return models.PageTransactions
}

func (*NoopVendor) StatementDate(string) (time.Time, error) {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil
}

func (*NoopVendor) ExtractTables(text string) []string {
	return []string{text}
}

func (*NoopVendor) ParseTable(string) ([]models.RawRow, error) {
	return []models.RawRow{
		{TransactionDate: "2023-01-01", Description: "desc", Amount: "3"},
		{TransactionDate: "2024-01-01", Description: "desc", Amount: "5"},
	}, nil
}

func (*NoopVendor) PostProcess(rows []models.RawRow, ctx models.StatementContext) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, models.Transaction{
			TransactionDate: row.TransactionDate,
			Description:     row.Description,
			Amount:          row.Amount,
			AccountName:     ctx.AccountName,
			FileName:        ctx.FileName,
		})
	}
	return txns, nil
}
