package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/ivelichko/pennywise/internal/model"
	"github.com/ivelichko/pennywise/internal/service"
)

type fakeCompletions struct {
	calls   int
	content string
	err     error
}

func (f *fakeCompletions) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func augustSummary(t *testing.T) service.Summary {
	t.Helper()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	return service.BuildSummary(now,
		[]model.Transaction{
			{ID: "a", Amount: 300, Description: "groceries", Tag: "Food", Date: now, Kind: model.KindExpense},
		},
		[]model.Tag{{ID: "t1", Name: "Food", Icon: "food", Color: "green"}},
		[]model.Line{{ID: "i1", Description: "salary", Amount: 5000}},
		nil)
}

func TestAdvisor_EmptySummarySkipsNetwork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli := &fakeCompletions{content: "unused"}
	a := New(cli, "gpt-4o-mini", nil, time.Hour)

	empty := service.BuildSummary(time.Now().UTC(), nil, nil, nil, nil)
	got := a.Advise(ctx, empty)

	require.Equal(t, MsgNotEnoughData, got)
	require.Equal(t, 0, cli.calls)
}

func TestAdvisor_ReturnsAdvice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli := &fakeCompletions{content: "  Spend less on groceries.  "}
	a := New(cli, "gpt-4o-mini", nil, time.Hour)

	got := a.Advise(ctx, augustSummary(t))
	require.Equal(t, "Spend less on groceries.", got)
	require.Equal(t, 1, cli.calls)
}

func TestAdvisor_FallsBackOnServiceError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli := &fakeCompletions{err: errors.New("upstream timeout")}
	a := New(cli, "gpt-4o-mini", nil, time.Hour)

	got := a.Advise(ctx, augustSummary(t))
	require.Equal(t, MsgUnavailable, got)
	require.Equal(t, 1, cli.calls)
}

func TestAdvisor_FallsBackOnEmptyCompletion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cli := &fakeCompletions{content: "   "}
	a := New(cli, "gpt-4o-mini", nil, time.Hour)

	got := a.Advise(ctx, augustSummary(t))
	require.Equal(t, MsgUnavailable, got)
}
