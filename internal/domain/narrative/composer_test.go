package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nadira/tripstylist/internal/domain/catalog"
	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/domain/intent"
	"github.com/nadira/tripstylist/internal/domain/recommend"
	"github.com/nadira/tripstylist/internal/infra/llm/chatgpt"
	"github.com/nadira/tripstylist/pkg/logger"
)

type stubChatClient struct {
	content string
	err     error
	lastReq chatgpt.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.lastReq = req
	var out chatgpt.ChatCompletionResponse
	if s.err != nil {
		return out, s.err
	}
	out.Choices = []struct {
		Message chatgpt.Message `json:"message"`
	}{{Message: chatgpt.Message{Role: "assistant", Content: s.content}}}
	out.Usage.PromptTokens = 120
	out.Usage.CompletionTokens = 40
	out.Usage.TotalTokens = 160
	return out, nil
}

func sampleResult() *recommend.Result {
	record := climate.SynthesizeRecord("karachi", "", climate.ClassDesert, "static")
	weather := record.Months["june"]
	record.CurrentMonth = &weather
	return &recommend.Result{
		Products: []recommend.ScoredProduct{
			{Product: catalog.Product{ID: "p1", Name: "Lightweight Cotton Shirt"}, CulturalScore: 0.7},
			{Product: catalog.Product{ID: "p2", Name: "Sun Hat"}, CulturalScore: 0.5},
		},
		Climate:       record,
		TaboosApplied: []string{"revealing", "alcohol"},
	}
}

func sampleIntent() intent.TravelIntent {
	return intent.TravelIntent{Destination: "Pakistan", City: "Karachi", Month: 6}
}

func TestComposeParsesFencedJSONReply(t *testing.T) {
	client := &stubChatClient{content: "```json\n{\"message\":\"Pack light.\",\"explanation\":\"It is hot.\",\"insights\":[\"Desert summer\"],\"tips\":\"Drink water\"}\n```"}
	composer := NewComposer(Config{Model: "gpt-4o-mini"}, client, logger.New())

	got := composer.Compose(context.Background(), "what to pack", sampleIntent(), sampleResult())

	require.Equal(t, "Pack light.", got.Message)
	require.Equal(t, "It is hot.", got.Explanation)
	require.Equal(t, []string{"Desert summer"}, got.Insights)
	require.Equal(t, []string{"Drink water"}, got.Tips)
	require.Equal(t, 160, got.Usage.TotalTokens)
	require.Len(t, client.lastReq.Messages, 2)
	require.Contains(t, client.lastReq.Messages[1].Content, "Lightweight Cotton Shirt")
}

func TestComposeFallsBackOnClientError(t *testing.T) {
	client := &stubChatClient{err: errors.New("rate limited")}
	composer := NewComposer(Config{}, client, logger.New())

	got := composer.Compose(context.Background(), "q", sampleIntent(), sampleResult())

	require.Contains(t, got.Message, "Pakistan")
	require.Contains(t, got.Message, "very hot weather")
	require.Contains(t, got.Message, "Lightweight Cotton Shirt")
	require.True(t, got.Usage.IsZero())
}

func TestComposeFallsBackOnMalformedReply(t *testing.T) {
	client := &stubChatClient{content: "Sure! Here are my thoughts in prose."}
	composer := NewComposer(Config{}, client, logger.New())

	got := composer.Compose(context.Background(), "q", sampleIntent(), sampleResult())

	require.Contains(t, got.Message, "Pakistan")
}

func TestComposeFallsBackOnEmptyMessage(t *testing.T) {
	client := &stubChatClient{content: "{\"message\":\"\",\"tips\":[]}"}
	composer := NewComposer(Config{}, client, logger.New())

	got := composer.Compose(context.Background(), "q", sampleIntent(), sampleResult())

	require.Contains(t, got.Message, "Pakistan")
}

func TestComposeWithoutClientUsesTemplate(t *testing.T) {
	composer := NewComposer(Config{}, nil, logger.New())

	got := composer.Compose(context.Background(), "q", sampleIntent(), sampleResult())

	require.Contains(t, got.Message, "Pakistan")
	require.NotEmpty(t, got.Tips)
	require.NotEmpty(t, got.Insights)
}

func TestComposeFallbackMentionsExclusions(t *testing.T) {
	composer := NewComposer(Config{}, nil, logger.New())

	got := composer.Compose(context.Background(), "q", sampleIntent(), sampleResult())

	require.NotEmpty(t, got.Insights)
	require.Contains(t, got.Insights[0], "revealing")
}

func TestComposeFallbackHandlesEmptyResult(t *testing.T) {
	composer := NewComposer(Config{}, nil, logger.New())

	got := composer.Compose(context.Background(), "q", intent.TravelIntent{}, &recommend.Result{})

	require.Contains(t, got.Message, "your destination")
	require.Contains(t, got.Message, "couldn't find")
}
