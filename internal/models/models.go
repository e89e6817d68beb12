package models

import "time"

// PageClass labels what a statement page contains.
type PageClass int

const (
	// PageOther is the default for pages that match no classification rule.
	PageOther PageClass = iota
	// PageSummary pages carry the statement reference date.
	PageSummary
	// PageTransactions pages carry one or more transaction tables.
	PageTransactions
)

func (c PageClass) String() string {
	switch c {
	case PageSummary:
		return "summary"
	case PageTransactions:
		return "transactions"
	default:
		return "other"
	}
}

// VendorID identifies a supported statement layout.
type VendorID string

const (
	VendorMeridian VendorID = "meridian"
	VendorApex     VendorID = "apex"
	VendorCrest    VendorID = "crest"
	VendorSable    VendorID = "sable"
	// VendorNoop emits fixed transactions; used in pipeline tests.
	VendorNoop VendorID = "noop"
)

// StatementContext scopes one statement run: which account and file the
// pages came from, and the reference date extracted from the summary page.
// Reference stays zero until date extraction succeeds.
type StatementContext struct {
	AccountName string
	FileName    string
	Reference   time.Time
}

// RawRow holds one transaction's fields exactly as captured from table
// lines, before any normalization. Fields a vendor's grammar does not
// produce stay empty. Table and Row record where the row came from, for
// error reporting.
type RawRow struct {
	TransactionDate string
	PostingDate     string
	Description     string
	Category        string
	Amount          string
	RewardEarned    string

	Table int
	Row   int
}

// Transaction is one normalized ledger entry. TransactionDate is always
// YYYY-MM-DD with a four-digit year; Amount is a canonical decimal string
// with a leading '-' for debits per the vendor's sign convention.
type Transaction struct {
	TransactionDate string `json:"transaction_date"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	AccountName     string `json:"account_name"`
	FileName        string `json:"file_name"`
}
