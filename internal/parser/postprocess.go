package parser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// amountStripper removes currency symbols, thousands separators and spacing
// from raw amount text. Sign characters survive: vendors that print
// payments negative keep their minus sign through normalization.
var amountStripper = strings.NewReplacer(
	"$", "", "£", "", "€", "",
	",", "", " ", "", " ", "",
)

const isoDate = "2006-01-02"

// PostProcess normalizes the statement's raw rows into transactions.
// Amounts become canonical decimal strings, dates become ISO with the year
// resolved against the statement reference where the layout omits it, and
// descriptions collapse to single-spaced trimmed text. Normalizing
// already-normalized values is a no-op, so re-running is safe.
func (p *Profile) PostProcess(rows []models.RawRow, ctx models.StatementContext) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		date, err := p.resolveDate(row.TransactionDate, ctx.Reference)
		if err != nil {
			return nil, &models.RowError{
				Vendor: p.ID, Table: row.Table, Row: row.Row,
				Field: "transaction_date", Value: row.TransactionDate, Reason: err.Error(),
			}
		}
		amount, err := p.normalizeAmount(row.Amount)
		if err != nil {
			return nil, &models.RowError{
				Vendor: p.ID, Table: row.Table, Row: row.Row,
				Field: "amount", Value: row.Amount, Reason: err.Error(),
			}
		}
		txns = append(txns, models.Transaction{
			TransactionDate: date,
			Description:     strings.Join(strings.Fields(row.Description), " "),
			Amount:          amount,
			AccountName:     ctx.AccountName,
			FileName:        ctx.FileName,
		})
	}
	return txns, nil
}

// normalizeAmount strips currency decoration and translates the vendor's
// credit convention into a leading minus sign.
func (p *Profile) normalizeAmount(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	credit := false
	if p.CreditSuffix != "" && strings.HasSuffix(s, p.CreditSuffix) {
		s = strings.TrimSpace(strings.TrimSuffix(s, p.CreditSuffix))
		credit = true
	}
	s = amountStripper.Replace(s)
	// Parenthesized amounts are an alternate negative notation.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	if credit {
		d = d.Neg()
	}
	// Statements print two decimal places; keep the output in the same
	// fixed form so re-normalizing is a no-op.
	return d.StringFixed(2), nil
}

// resolveDate turns a raw transaction date into ISO form. Layouts that omit
// the year borrow it from the statement reference date, with one exception:
// a December transaction on a January statement belongs to the prior year.
// The rule applies per row, since a table near the boundary mixes December
// and January entries. Already-ISO input passes through unchanged.
func (p *Profile) resolveDate(raw string, ref time.Time) (string, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(isoDate, s); err == nil {
		return t.Format(isoDate), nil
	}
	t, err := time.Parse(p.RowDateLayout, s)
	if err != nil {
		return "", err
	}
	if p.RowDateHasYear {
		return t.Format(isoDate), nil
	}
	if ref.IsZero() {
		return "", models.ErrStatementDateNotFound
	}
	year := ref.Year()
	if ref.Month() == time.January && t.Month() == time.December {
		year--
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(isoDate), nil
}
