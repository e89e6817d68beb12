package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

func TestParseTableSingleRow(t *testing.T) {
	// date, description, amount — no header skip
	table := "01-Jan-2024\nDescription text\n$12.34\n"
	rows, err := meridianProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.RawRow{
		{TransactionDate: "01-Jan-2024", Description: "Description text", Amount: "$12.34"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %+v\nwant %+v", rows, want)
	}
}

func TestParseTableMultiLineDescription(t *testing.T) {
	// Three description lines, terminated by an amount-shaped line.
	table := "03-Feb-2024\nTRANSFER TO\nSAVINGS ACCOUNT\nREF 8841\n-100.00\n"
	rows, err := meridianProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Description != "TRANSFER TO SAVINGS ACCOUNT REF 8841" {
		t.Errorf("description: got %q", rows[0].Description)
	}
	if rows[0].Amount != "-100.00" {
		t.Errorf("amount: got %q", rows[0].Amount)
	}
}

func TestParseTableBlankLinesIgnored(t *testing.T) {
	table := "\n01-Jan-2024\n\nDescription text\n\n$12.34\n\n"
	rows, err := meridianProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1", len(rows))
	}
}

func TestParseTableDeterministic(t *testing.T) {
	table := "01-Feb-2024\nA\n-1.00\n02-Feb-2024\nB\nC\n2.00\n"
	first, err := meridianProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := meridianProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same table disagree")
	}
}

func TestParseTableTruncated(t *testing.T) {
	// Second row ends before its amount line.
	table := "01-Feb-2024\nOK ROW\n-1.00\n02-Feb-2024\nDANGLING\n"
	_, err := meridianProfile.ParseTable(table)
	var rowErr *models.RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected RowError, got %v", err)
	}
	if rowErr.Row != 1 {
		t.Errorf("row index: got %d, want 1", rowErr.Row)
	}
	if rowErr.Field != "amount" {
		t.Errorf("field: got %q, want amount", rowErr.Field)
	}
}

const apexTable = `Rewards Amount Category Description Post Date Trans Date
1.25
$125.00
Dining
UMAMI GRILL
LOS ANGELES CA
Dec 28
Dec 27
0.00
$45.67 CR
—
PAYMENT RECEIVED - THANK YOU
Jan 03
Jan 02
`

func TestParseTableApexGrammar(t *testing.T) {
	rows, err := apexProfile.ParseTable(apexTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.RawRow{
		{
			RewardEarned: "1.25", Amount: "$125.00", Category: "Dining",
			Description: "UMAMI GRILL LOS ANGELES CA",
			PostingDate: "Dec 28", TransactionDate: "Dec 27",
		},
		{
			RewardEarned: "0.00", Amount: "$45.67 CR", Category: "—",
			Description: "PAYMENT RECEIVED - THANK YOU",
			PostingDate: "Jan 03", TransactionDate: "Jan 02",
			Row: 1,
		},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %+v\nwant %+v", rows, want)
	}
}

func TestParseTableOptionalFieldAbsent(t *testing.T) {
	// No category line at all: the description follows the amount directly.
	table := "Rewards Amount Category Description Post Date Trans Date\n" +
		"0.50\n$20.00\nHARDWARE STORE\nJan 05\nJan 04\n"
	rows, err := apexProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Category != "" {
		t.Errorf("category: got %q, want empty", rows[0].Category)
	}
	if rows[0].Description != "HARDWARE STORE" {
		t.Errorf("description: got %q", rows[0].Description)
	}
}

func TestParseTableCrestGrammar(t *testing.T) {
	table := "Trans Date Post Date Description Amount\n" +
		"12/28\n12/29\nAIRLINE TICKET\nBOOKING 4415\n312.40\n" +
		"01/02\n01/02\nPAYMENT - THANK YOU\n-250.00\n"
	rows, err := crestProfile.ParseTable(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].TransactionDate != "12/28" || rows[0].PostingDate != "12/29" {
		t.Errorf("dates: got %q %q", rows[0].TransactionDate, rows[0].PostingDate)
	}
	if rows[0].Description != "AIRLINE TICKET BOOKING 4415" {
		t.Errorf("description: got %q", rows[0].Description)
	}
	if rows[1].Amount != "-250.00" {
		t.Errorf("amount: got %q", rows[1].Amount)
	}
}

func TestParseTableExtraHeader(t *testing.T) {
	withExtra := "Date Description Amount\n" +
		"Balance brought forward\n£1,000.00\n" +
		"05/01/2024\nGROCERY MART\n-£23.10\n"
	rows, err := sableProfile.ParseTable(withExtra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].TransactionDate != "05/01/2024" {
		t.Errorf("date: got %q", rows[0].TransactionDate)
	}

	// Continuation tables have no brought-forward pair; nothing extra skipped.
	withoutExtra := "Date Description Amount\n05/01/2024\nGROCERY MART\n-£23.10\n"
	rows, err = sableProfile.ParseTable(withoutExtra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestLineCursor(t *testing.T) {
	cur := newLineCursor("a\n\n b \nc\n")
	if got := cur.peek(); got != "a" {
		t.Errorf("peek: got %q", got)
	}
	if got := cur.next(); got != "a" {
		t.Errorf("next: got %q", got)
	}
	if got := cur.next(); got != "b" {
		t.Errorf("next: got %q (blank lines should be dropped, content trimmed)", got)
	}
	if cur.done() {
		t.Error("cursor done too early")
	}
	cur.skip(5)
	if !cur.done() {
		t.Error("cursor should be exhausted")
	}
	if got := cur.peek(); got != "" {
		t.Errorf("peek past end: got %q", got)
	}
}
