package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/ivelichko/pennywise/internal/service"
)

// Fixed user-facing replies. The UI shows these verbatim; no structured error
// ever reaches it.
const (
	MsgNotEnoughData = "Not enough data yet, add some incomes and expenses first."
	MsgUnavailable   = "Spending insights are unavailable right now, please try again later."
)

const systemPrompt = `You are a personal finance assistant. The user sends you a JSON breakdown of one month: total income, total expense, per-tag expense subtotals with their transactions, and an uncategorized bucket (recurring expenses are flagged). Amounts are in minor currency units. Reply with a short, friendly paragraph of practical spending advice grounded in the numbers. Do not repeat the raw JSON back.`

type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Advisor turns an aggregated summary into prose advice. It is deliberately
// unreliable-tolerant: every failure path degrades to a fixed message and the
// rest of the application never waits on it.
type Advisor struct {
	cli   CompletionClient
	model string

	cache *redis.Client // nil disables caching
	ttl   time.Duration
}

func New(cli CompletionClient, model string, cache *redis.Client, ttl time.Duration) *Advisor {
	return &Advisor{
		cli:   cli,
		model: model,
		cache: cache,
		ttl:   ttl,
	}
}

// Advise returns generated advice for the summary. An empty summary is
// rejected locally before any network call.
func (a *Advisor) Advise(ctx context.Context, s service.Summary) string {
	if s.Empty() {
		return MsgNotEnoughData
	}

	breakdown, err := json.Marshal(s)
	if err != nil {
		logrus.Errorf("advisor couldn't marshal summary: %v", err)
		return MsgUnavailable
	}

	key := cacheKey(breakdown)
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, key).Result(); err == nil {
			return cached
		}
	}

	resp, err := a.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(breakdown)},
		},
	})
	if err != nil {
		logrus.Errorf("advisor couldn't get completion: %v", err)
		return MsgUnavailable
	}
	if len(resp.Choices) == 0 {
		logrus.Error("advisor got a completion with no choices")
		return MsgUnavailable
	}
	advice := strings.TrimSpace(resp.Choices[0].Message.Content)
	if advice == "" {
		return MsgUnavailable
	}

	if a.cache != nil {
		if err = a.cache.SetEx(ctx, key, advice, a.ttl).Err(); err != nil {
			logrus.Errorf("advisor couldn't cache advice: %v", err)
		}
	}
	return advice
}

func cacheKey(breakdown []byte) string {
	sum := sha256.Sum256(breakdown)
	return "insight:" + hex.EncodeToString(sum[:])
}
