package parser

import (
	"regexp"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// Line-shape markers shared by the row grammars below. A field that ends a
// row is recognized by the shape of the line that starts the next field.
var (
	dollarAmountLine = regexp.MustCompile(`^-?\$?[\d,]+\.\d{2}$`)
	bareAmountLine   = regexp.MustCompile(`^-?[\d,]+\.\d{2}$`)
	poundAmountLine  = regexp.MustCompile(`^-?£?[\d,]+\.\d{2}$`)
	monthDayLine     = regexp.MustCompile(`^(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{2}$`)
)

func assignTransactionDate(r *models.RawRow, v string) { r.TransactionDate = v }
func assignPostingDate(r *models.RawRow, v string)     { r.PostingDate = v }
func assignDescription(r *models.RawRow, v string)     { r.Description = v }
func assignCategory(r *models.RawRow, v string)        { r.Category = v }
func assignAmount(r *models.RawRow, v string)          { r.Amount = v }
func assignRewardEarned(r *models.RawRow, v string)    { r.RewardEarned = v }

// meridianProfile covers Meridian Trust checking statements. Rows carry a
// full date, so no year resolution is needed; debits are printed with a
// leading minus sign.
var meridianProfile = &Profile{
	ID:   models.VendorMeridian,
	Name: "Meridian Trust",
	Classify: []ClassifyRule{
		{regexp.MustCompile(`ACCOUNT SUMMARY`), models.PageSummary},
		{regexp.MustCompile(`TRANSACTION DETAILS`), models.PageTransactions},
	},
	DatePattern: regexp.MustCompile(`Statement Date:\s*(\d{2}-[A-Z][a-z]{2}-\d{4})`),
	DateLayout:  "02-Jan-2006",
	Table:       regexp.MustCompile(`(?s)TRANSACTION DETAILS\n(.*?)END OF TRANSACTION DETAILS`),
	Grammar: []FieldSpec{
		{Name: "transaction_date", Kind: fieldSingle, Assign: assignTransactionDate},
		{Name: "description", Kind: fieldMulti, Next: dollarAmountLine, Assign: assignDescription},
		{Name: "amount", Kind: fieldSingle, Assign: assignAmount},
	},
	RowDateLayout:  "02-Jan-2006",
	RowDateHasYear: true,
}

// apexProfile covers Apex Rewards card statements. The PDF text stream
// emits row fields right-to-left relative to the printed columns, so the
// grammar runs rewards → amount → category → description → dates. Credits
// carry a trailing CR token; the category cell prints an em-dash when the
// card has not categorized the merchant, and the cell is dropped entirely
// on some statement revisions.
var apexProfile = &Profile{
	ID:   models.VendorApex,
	Name: "Apex Rewards",
	Classify: []ClassifyRule{
		{regexp.MustCompile(`Payment Information`), models.PageSummary},
		{regexp.MustCompile(`Transaction Detail`), models.PageTransactions},
	},
	DatePattern: regexp.MustCompile(`Closing Date\s+(\d{2}/\d{2}/\d{2})\b`),
	DateLayout:  "01/02/06",
	Table:       regexp.MustCompile(`(?s)Transaction Detail\n(.*?)TOTAL TRANSACTIONS`),
	HeaderLines: 1,
	Grammar: []FieldSpec{
		{Name: "reward_earned", Kind: fieldSingle, Assign: assignRewardEarned},
		{Name: "amount", Kind: fieldSingle, Assign: assignAmount},
		{Name: "category", Kind: fieldOptional, Shape: apexCategoryLine, Assign: assignCategory},
		{Name: "description", Kind: fieldMulti, Next: monthDayLine, Assign: assignDescription},
		{Name: "posted_date", Kind: fieldSingle, Assign: assignPostingDate},
		{Name: "transaction_date", Kind: fieldSingle, Assign: assignTransactionDate},
	},
	RowDateLayout:  "Jan 02",
	RowDateHasYear: false,
	CreditSuffix:   "CR",
}

// Apex prints categories from a fixed vocabulary; the em-dash is the
// uncategorized placeholder.
var apexCategoryLine = regexp.MustCompile(
	`^(?:—|Dining|Groceries|Travel|Fuel|Entertainment|Merchandise|Services|Fees & Interest)$`)

// crestProfile covers Crest Bank card statements. Dates omit the year;
// payments are printed negative by the vendor, so the sign passes through
// normalization untouched.
var crestProfile = &Profile{
	ID:   models.VendorCrest,
	Name: "Crest Bank Card",
	Classify: []ClassifyRule{
		{regexp.MustCompile(`Account Summary`), models.PageSummary},
		{regexp.MustCompile(`Purchases and Adjustments`), models.PageTransactions},
	},
	DatePattern: regexp.MustCompile(`Statement Closing Date:\s+(\d{2}/\d{2}/\d{4})`),
	DateLayout:  "01/02/2006",
	Table:       regexp.MustCompile(`(?s)Purchases and Adjustments\n(.*?)Total purchases`),
	HeaderLines: 1,
	Grammar: []FieldSpec{
		{Name: "transaction_date", Kind: fieldSingle, Assign: assignTransactionDate},
		{Name: "posting_date", Kind: fieldSingle, Assign: assignPostingDate},
		{Name: "description", Kind: fieldMulti, Next: bareAmountLine, Assign: assignDescription},
		{Name: "amount", Kind: fieldSingle, Assign: assignAmount},
	},
	RowDateLayout:  "01/02",
	RowDateHasYear: false,
}

// sableProfile covers Sable Building Society statements. The first table of
// a statement opens with a brought-forward balance pair that is boilerplate,
// not a transaction.
var sableProfile = &Profile{
	ID:   models.VendorSable,
	Name: "Sable Building Society",
	Classify: []ClassifyRule{
		{regexp.MustCompile(`Your account summary`), models.PageSummary},
		{regexp.MustCompile(`Your transactions`), models.PageTransactions},
	},
	DatePattern: regexp.MustCompile(`Statement date:\s+(\d{1,2} [A-Z][a-z]+ \d{4})`),
	DateLayout:  "2 January 2006",
	Table:       regexp.MustCompile(`(?s)Your transactions\n(.*?)End of transactions`),
	HeaderLines: 1,
	ExtraHeader: regexp.MustCompile(`^Balance brought forward`),
	// The brought-forward line and its amount line.
	ExtraHeaderLines: 2,
	Grammar: []FieldSpec{
		{Name: "transaction_date", Kind: fieldSingle, Assign: assignTransactionDate},
		{Name: "description", Kind: fieldMulti, Next: poundAmountLine, Assign: assignDescription},
		{Name: "amount", Kind: fieldSingle, Assign: assignAmount},
	},
	RowDateLayout:  "02/01/2006",
	RowDateHasYear: true,
}
