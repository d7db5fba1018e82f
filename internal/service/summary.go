package service

import (
	"time"

	"github.com/ivelichko/pennywise/internal/model"
)

// BreakdownLine is one expense inside a summary bucket.
type BreakdownLine struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Recurring   bool   `json:"recurring,omitempty"`
}

// TagBreakdown groups the current month's expenses under one tag.
type TagBreakdown struct {
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Total int64           `json:"total"`
	Lines []BreakdownLine `json:"lines,omitempty"`
}

// Summary is the aggregation view: a pure snapshot of the ledger state for
// one calendar month, recomputed on demand and never cached.
type Summary struct {
	Year          int             `json:"year"`
	Month         time.Month      `json:"month"`
	TotalIncome   int64           `json:"total_income"`
	MonthExpense  int64           `json:"month_expense"`
	Tags          []TagBreakdown  `json:"tags"`
	Uncategorized []BreakdownLine `json:"uncategorized,omitempty"`
}

// Empty reports whether there is nothing to advise on: no income, no tag with
// a nonzero subtotal and an empty uncategorized bucket.
func (s Summary) Empty() bool {
	if s.TotalIncome != 0 || len(s.Uncategorized) != 0 {
		return false
	}
	for _, t := range s.Tags {
		if t.Total != 0 {
			return false
		}
	}
	return true
}

// BuildSummary aggregates the given state for now's month. Total income is
// not date-filtered; transactions count only when they fall in the current
// month and year. Expenses whose tag no longer resolves land in the
// uncategorized bucket, as does every recurring expense (flagged recurring).
func BuildSummary(now time.Time, txs []model.Transaction, tags []model.Tag,
	incomes, recurring []model.Line) Summary {
	s := Summary{Year: now.Year(), Month: now.Month()}

	for _, in := range incomes {
		s.TotalIncome += in.Amount
	}

	s.Tags = make([]TagBreakdown, len(tags))
	byName := make(map[string]*TagBreakdown, len(tags))
	for i, t := range tags {
		s.Tags[i] = TagBreakdown{Name: t.Name, Color: t.Color}
		byName[t.Name] = &s.Tags[i]
	}

	for _, tx := range txs {
		if tx.Date.Year() != s.Year || tx.Date.Month() != s.Month {
			continue
		}
		s.MonthExpense += tx.Amount
		line := BreakdownLine{Description: tx.Description, Amount: tx.Amount}
		if b, ok := byName[tx.Tag]; ok {
			b.Total += tx.Amount
			b.Lines = append(b.Lines, line)
		} else {
			s.Uncategorized = append(s.Uncategorized, line)
		}
	}

	for _, r := range recurring {
		s.Uncategorized = append(s.Uncategorized, BreakdownLine{
			Description: r.Description,
			Amount:      r.Amount,
			Recurring:   true,
		})
	}
	return s
}
