package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ivelichko/pennywise/internal/model"
)

func TestBuildSummary_MonthlyTotals(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tags := []model.Tag{
		{ID: "t1", Name: "Food", Icon: "food", Color: "green", Order: 0},
		{ID: "t2", Name: "Transport", Icon: "transport", Color: "blue", Order: 1},
	}
	txs := []model.Transaction{
		{ID: "a", Amount: 100, Description: "groceries", Tag: "Food", Date: now, Kind: model.KindExpense},
		{ID: "b", Amount: 200, Description: "dinner", Tag: "Food", Date: now.Add(-time.Hour), Kind: model.KindExpense},
		{ID: "c", Amount: 50, Description: "bus", Tag: "Transport", Date: now.Add(-2 * time.Hour), Kind: model.KindExpense},
		// previous month, must not count
		{ID: "d", Amount: 9999, Description: "vacation", Tag: "Food", Date: now.AddDate(0, -1, 0), Kind: model.KindExpense},
	}
	incomes := []model.Line{{ID: "i1", Description: "salary", Amount: 5000}}

	s := BuildSummary(now, txs, tags, incomes, nil)

	require.Equal(t, int64(5000), s.TotalIncome)
	require.Equal(t, int64(350), s.MonthExpense)
	require.Equal(t, 2, len(s.Tags))
	require.Equal(t, "Food", s.Tags[0].Name)
	require.Equal(t, int64(300), s.Tags[0].Total)
	require.Equal(t, "Transport", s.Tags[1].Name)
	require.Equal(t, int64(50), s.Tags[1].Total)
	require.Equal(t, 0, len(s.Uncategorized))
}

func TestBuildSummary_UncategorizedBucket(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	tags := []model.Tag{{ID: "t1", Name: "Food", Icon: "food", Color: "green", Order: 0}}
	txs := []model.Transaction{
		// the tag was deleted after this was written
		{ID: "a", Amount: 80, Description: "arcade", Tag: "Fun", Date: now, Kind: model.KindExpense},
	}
	recurring := []model.Line{{ID: "r1", Description: "rent", Amount: 1200}}

	s := BuildSummary(now, txs, tags, nil, recurring)

	require.Equal(t, int64(80), s.MonthExpense)
	require.Equal(t, int64(0), s.Tags[0].Total)
	require.Equal(t, 2, len(s.Uncategorized))
	require.Equal(t, "arcade", s.Uncategorized[0].Description)
	require.False(t, s.Uncategorized[0].Recurring)
	require.Equal(t, "rent", s.Uncategorized[1].Description)
	require.True(t, s.Uncategorized[1].Recurring)
}

func TestSummary_Empty(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	empty := BuildSummary(now,
		nil,
		[]model.Tag{{ID: "t1", Name: "Food", Icon: "food", Color: "green"}},
		nil, nil)
	require.True(t, empty.Empty())

	withIncome := BuildSummary(now, nil, nil, []model.Line{{ID: "i1", Description: "salary", Amount: 1}}, nil)
	require.False(t, withIncome.Empty())

	withRecurring := BuildSummary(now, nil, nil, nil, []model.Line{{ID: "r1", Description: "rent", Amount: 1}})
	require.False(t, withRecurring.Empty())

	withExpense := BuildSummary(now,
		[]model.Transaction{{ID: "a", Amount: 10, Description: "coffee", Tag: "Food", Date: now}},
		[]model.Tag{{ID: "t1", Name: "Food", Icon: "food", Color: "green"}},
		nil, nil)
	require.False(t, withExpense.Empty())
}
