package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ivelichko/pennywise/internal/model"
	"github.com/ivelichko/pennywise/internal/service"
)

func TestGenerator_MonthlyBreakdown(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	s := service.BuildSummary(now,
		[]model.Transaction{
			{ID: "a", Amount: 30000, Description: "groceries", Tag: "Food", Date: now, Kind: model.KindExpense},
			{ID: "b", Amount: 5000, Description: "bus", Tag: "Transport", Date: now, Kind: model.KindExpense},
		},
		[]model.Tag{
			{ID: "t1", Name: "Food", Icon: "food", Color: "green", Order: 0},
			{ID: "t2", Name: "Transport", Icon: "transport", Color: "blue", Order: 1},
		},
		nil,
		[]model.Line{{ID: "r1", Description: "rent", Amount: 120000}})

	png, err := NewGenerator().MonthlyBreakdown(s)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerator_MonthlyBreakdown_NothingToDraw(t *testing.T) {
	s := service.BuildSummary(time.Now().UTC(), nil,
		[]model.Tag{{ID: "t1", Name: "Food", Icon: "food", Color: "green"}}, nil, nil)

	png, err := NewGenerator().MonthlyBreakdown(s)
	require.NoError(t, err)
	require.Nil(t, png)
}
