// Package parser turns the raw per-page text of a financial statement into
// a normalized ledger of transactions. Each supported statement layout is
// described by a data-driven Profile; the Vendor capability interface keeps
// callers independent of how a layout is implemented.
package parser

import (
	"fmt"
	"time"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// Vendor is the capability set one statement layout implements.
type Vendor interface {
	// VendorName returns the human-readable layout name.
	VendorName() string
	// ClassifyPage labels a page's text. Never fails; unmatched pages are
	// models.PageOther.
	ClassifyPage(text string) models.PageClass
	// StatementDate extracts the statement reference date from a summary
	// page's text.
	StatementDate(text string) (time.Time, error)
	// ExtractTables returns the transaction-table substrings of a
	// transactions page, in order. May be empty.
	ExtractTables(text string) []string
	// ParseTable parses one table text into raw rows.
	ParseTable(table string) ([]models.RawRow, error)
	// PostProcess normalizes raw rows into transactions using the
	// statement context's reference date.
	PostProcess(rows []models.RawRow, ctx models.StatementContext) ([]models.Transaction, error)
}

// New returns the vendor profile for the given layout id.
func New(id models.VendorID) (Vendor, error) {
	switch id {
	case models.VendorMeridian:
		return meridianProfile, nil
	case models.VendorApex:
		return apexProfile, nil
	case models.VendorCrest:
		return crestProfile, nil
	case models.VendorSable:
		return sableProfile, nil
	case models.VendorNoop:
		return &NoopVendor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrNoVendorProfile, id)
	}
}

// ParseStatement runs the full pipeline for one statement: classify pages,
// extract the reference date from the first summary page, pull the
// transaction tables out of every transactions page, parse them, and
// normalize the combined row set. Any failure past classification aborts
// the statement; partial output is never returned.
func ParseStatement(v Vendor, ctx models.StatementContext, pages []string) ([]models.Transaction, error) {
	var summaryPages, txnPages []string
	for _, page := range pages {
		switch v.ClassifyPage(page) {
		case models.PageSummary:
			summaryPages = append(summaryPages, page)
		case models.PageTransactions:
			txnPages = append(txnPages, page)
		}
	}

	if len(summaryPages) == 0 {
		return nil, fmt.Errorf("%s %s: %w", ctx.AccountName, ctx.FileName, models.ErrStatementDateNotFound)
	}
	ref, err := v.StatementDate(summaryPages[0])
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ctx.AccountName, ctx.FileName, err)
	}
	ctx.Reference = ref

	var rows []models.RawRow
	tableIdx := 0
	for pageIdx, page := range txnPages {
		tables := v.ExtractTables(page)
		if len(tables) == 0 {
			return nil, fmt.Errorf("%s %s: transactions page %d: %w",
				ctx.AccountName, ctx.FileName, pageIdx, models.ErrTableBoundaryNotFound)
		}
		for _, table := range tables {
			parsed, err := v.ParseTable(table)
			if err != nil {
				if rowErr, ok := err.(*models.RowError); ok {
					rowErr.Table = tableIdx
				}
				return nil, fmt.Errorf("%s %s: %w", ctx.AccountName, ctx.FileName, err)
			}
			for i := range parsed {
				parsed[i].Table = tableIdx
			}
			rows = append(rows, parsed...)
			tableIdx++
		}
	}

	txns, err := v.PostProcess(rows, ctx)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ctx.AccountName, ctx.FileName, err)
	}
	return txns, nil
}
