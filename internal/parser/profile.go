package parser

import (
	"fmt"
	"regexp"
	"time"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// ClassifyRule maps a page-text pattern to a page class. Rule order is
// significant: the first matching rule wins.
type ClassifyRule struct {
	Pattern *regexp.Regexp
	Class   models.PageClass
}

// fieldKind controls how the row state machine consumes lines for a field.
type fieldKind int

const (
	// fieldSingle consumes exactly one line.
	fieldSingle fieldKind = iota
	// fieldMulti consumes one line, then keeps appending lines until the
	// next line matches the Next marker. The only back-edge in the machine.
	fieldMulti
	// fieldOptional consumes one line only when it matches Shape;
	// otherwise the field is recorded empty and no line is consumed.
	fieldOptional
)

// FieldSpec is one state of a vendor's row grammar.
type FieldSpec struct {
	Name   string
	Kind   fieldKind
	Next   *regexp.Regexp // fieldMulti: marks that the next field has begun
	Shape  *regexp.Regexp // fieldOptional: what a present value looks like
	Assign func(*models.RawRow, string)
}

// Profile describes one statement layout entirely as data: how its pages
// classify, where its reference date and transaction tables sit, the order
// its row fields appear in, and how its amounts and dates normalize.
type Profile struct {
	ID   models.VendorID
	Name string

	Classify []ClassifyRule

	// Statement reference date on the summary page: the pattern's first
	// capture group, parsed with DateLayout.
	DatePattern *regexp.Regexp
	DateLayout  string

	// Transaction table boundaries; the interior is capture group 1 so the
	// markers themselves never reach the row parser.
	Table *regexp.Regexp

	// Boilerplate lines discarded at the top of every table. When the first
	// remaining line matches ExtraHeader, ExtraHeaderLines more are skipped.
	HeaderLines      int
	ExtraHeader      *regexp.Regexp
	ExtraHeaderLines int

	Grammar []FieldSpec

	// Raw transaction/posting date shape. When the layout carries no year,
	// the post-processor resolves it against the statement reference date.
	RowDateLayout  string
	RowDateHasYear bool

	// CreditSuffix, when set, marks credits in the raw amount text (e.g.
	// "45.67 CR"); normalization strips it and negates the amount.
	CreditSuffix string
}

func (p *Profile) VendorName() string { return p.Name }

// ClassifyPage returns the class of the first matching rule, or PageOther.
func (p *Profile) ClassifyPage(text string) models.PageClass {
	for _, rule := range p.Classify {
		if rule.Pattern.MatchString(text) {
			return rule.Class
		}
	}
	return models.PageOther
}

// StatementDate pulls the statement reference date out of a summary page.
func (p *Profile) StatementDate(text string) (time.Time, error) {
	m := p.DatePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, models.ErrStatementDateNotFound
	}
	t, err := time.Parse(p.DateLayout, m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrStatementDateUnparseable, m[1])
	}
	return t, nil
}

// ExtractTables returns every table interior on the page, in order. Some
// pages carry more than one table (paginated continuations); each is parsed
// independently because row state resets at table boundaries.
func (p *Profile) ExtractTables(text string) []string {
	var tables []string
	for _, m := range p.Table.FindAllStringSubmatch(text, -1) {
		tables = append(tables, m[1])
	}
	return tables
}

var _ Vendor = (*Profile)(nil)
