package parser

import (
	"strings"

	"github.com/insightdelivered/bill-ledger/internal/models"
)

// lineCursor walks an immutable sequence of non-empty, trimmed lines with
// one line of lookahead. The row state machine never pushes lines back;
// peek replaces the head-insertion tricks a stack-based parser would need.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(text string) *lineCursor {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return &lineCursor{lines: lines}
}

func (c *lineCursor) done() bool { return c.pos >= len(c.lines) }

func (c *lineCursor) peek() string {
	if c.done() {
		return ""
	}
	return c.lines[c.pos]
}

func (c *lineCursor) next() string {
	l := c.lines[c.pos]
	c.pos++
	return l
}

// skip discards up to n lines.
func (c *lineCursor) skip(n int) {
	for i := 0; i < n && !c.done(); i++ {
		c.pos++
	}
}

// ParseTable runs the row state machine over one table's lines. The fixed
// header count is discarded first; if the first remaining line matches the
// extra-header signature, the extra count is discarded too. Rows are then
// consumed back-to-back until the lines run out. A table that runs out of
// lines mid-row is an error, not a silent drop: a truncated table would
// otherwise lose financial data without a trace.
func (p *Profile) ParseTable(table string) ([]models.RawRow, error) {
	cur := newLineCursor(table)
	cur.skip(p.HeaderLines)
	if p.ExtraHeader != nil && !cur.done() && p.ExtraHeader.MatchString(cur.peek()) {
		cur.skip(p.ExtraHeaderLines)
	}

	var rows []models.RawRow
	for !cur.done() {
		row, err := p.parseRow(cur)
		if err != nil {
			err.Vendor = p.ID
			err.Row = len(rows)
			return nil, err
		}
		row.Row = len(rows)
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow advances through the grammar's field states once, producing one
// raw row. Finalize-then-advance: reaching the end of the grammar is the
// end of the row, with no sentinel token.
func (p *Profile) parseRow(cur *lineCursor) (models.RawRow, *models.RowError) {
	var row models.RawRow
	for _, f := range p.Grammar {
		switch f.Kind {
		case fieldSingle:
			if cur.done() {
				return row, &models.RowError{Field: f.Name, Reason: "table truncated mid-row"}
			}
			f.Assign(&row, cur.next())

		case fieldOptional:
			if !cur.done() && f.Shape.MatchString(cur.peek()) {
				f.Assign(&row, cur.next())
			} else {
				f.Assign(&row, "")
			}

		case fieldMulti:
			if cur.done() {
				return row, &models.RowError{Field: f.Name, Reason: "table truncated mid-row"}
			}
			buf := cur.next()
			for !cur.done() && !f.Next.MatchString(cur.peek()) {
				buf += " " + cur.next()
			}
			f.Assign(&row, buf)
		}
	}
	return row, nil
}
