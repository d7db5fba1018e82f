package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ivelichko/pennywise/internal/service"
)

// Generator renders summary charts as PNG.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// MonthlyBreakdown renders a donut of the month's spending split by tag, with
// one extra slice for the uncategorized bucket. Returns nil bytes when there
// is nothing to draw.
func (g *Generator) MonthlyBreakdown(s service.Summary) ([]byte, error) {
	var values []chart.Value
	for _, t := range s.Tags {
		if t.Total == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.2f", t.Name, float64(t.Total)/100),
			Value: float64(t.Total),
		})
	}

	var uncategorized int64
	for _, line := range s.Uncategorized {
		uncategorized += line.Amount
	}
	if uncategorized > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Uncategorized %.2f", float64(uncategorized)/100),
			Value: float64(uncategorized),
		})
	}

	if len(values) == 0 {
		return nil, nil
	}

	graph := chart.DonutChart{
		Title:  fmt.Sprintf("%s %d", s.Month, s.Year),
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("couldn't render monthly breakdown: %v", err)
	}
	return buf.Bytes(), nil
}
