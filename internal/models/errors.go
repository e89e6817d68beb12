package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the statement pipeline. All of them abort the
// containing statement; a page classified as other is not an error.
var (
	ErrStatementDateNotFound    = errors.New("statement date not found on summary page")
	ErrStatementDateUnparseable = errors.New("statement date does not match expected format")
	ErrTableBoundaryNotFound    = errors.New("no transaction table found on transactions page")
	ErrNoVendorProfile          = errors.New("no vendor profile")
)

// RowError reports a row that could not be parsed or normalized. Table and
// Row are zero-based indices locating the offending row within the
// statement's extracted tables.
type RowError struct {
	Vendor VendorID
	Table  int
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("vendor %s: table %d row %d field %s: %s (value %q)",
		e.Vendor, e.Table, e.Row, e.Field, e.Reason, e.Value)
}
