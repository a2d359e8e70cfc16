package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/nadira/tripstylist/internal/domain/intent"
	"github.com/nadira/tripstylist/internal/domain/recommend"
	"github.com/nadira/tripstylist/internal/infra/llm/chatgpt"
	"github.com/nadira/tripstylist/pkg/metrics"
)

// Narrative is the conversational reply wrapped around a recommendation
// result.
type Narrative struct {
	Message     string             `json:"message"`
	Explanation string             `json:"explanation,omitempty"`
	Insights    []string           `json:"insights,omitempty"`
	Tips        []string           `json:"tips,omitempty"`
	Usage       metrics.TokenUsage `json:"usage"`
}

// ChatClient is the sync LLM call used to phrase the reply.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Config tunes the LLM call.
type Config struct {
	Model       string
	Temperature float32
	Prompt      string
	// PromptTokenBudget caps the user prompt length. Zero disables
	// truncation.
	PromptTokenBudget int
}

// Composer turns a pipeline result into a chat reply. The LLM is optional:
// a nil client, or any LLM failure, falls back to a deterministic template.
// Compose never returns an error.
type Composer struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger

	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
}

func NewComposer(cfg Config, client ChatClient, logger *slog.Logger) *Composer {
	return &Composer{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "narrative.composer"),
	}
}

func (c *Composer) Compose(ctx context.Context, query string, travel intent.TravelIntent, result *recommend.Result) Narrative {
	if c.client == nil {
		return c.composeFallback(travel, result)
	}

	userPrompt := c.truncateToBudget(buildUserPrompt(query, travel, result))
	completion, err := c.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []chatgpt.Message{
			{Role: "system", Content: c.buildSystemPrompt()},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		c.logger.Warn("chatgpt request failed, using template reply", "error", err)
		return c.composeFallback(travel, result)
	}
	if len(completion.Choices) == 0 {
		c.logger.Warn("chatgpt returned no choices, using template reply")
		return c.composeFallback(travel, result)
	}

	parsed, err := parseNarrative(completion.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("chatgpt reply malformed, using template reply", "error", err)
		return c.composeFallback(travel, result)
	}
	parsed.Usage = metrics.TokenUsage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}
	return parsed
}

func (c *Composer) buildSystemPrompt() string {
	base := strings.TrimSpace(c.cfg.Prompt)
	if base == "" {
		base = "You are a travel shopping stylist who explains product picks with cultural sensitivity."
	}
	enforcer := " Respond ONLY with valid minified JSON using this shape: {\"message\":string,\"explanation\":string,\"insights\":string[],\"tips\":string[]}. Keep the message conversational and grounded in the supplied data. Never return plain text or other fields."
	return base + enforcer
}

func buildUserPrompt(query string, travel intent.TravelIntent, result *recommend.Result) string {
	bundle := struct {
		Query  string              `json:"query"`
		Intent intent.TravelIntent `json:"intent"`
		Result *recommend.Result   `json:"result"`
	}{Query: query, Intent: travel, Result: result}

	payload, err := json.Marshal(bundle)
	if err != nil {
		payload = []byte("{}")
	}
	return "Write a short shopping reply for this traveler based ONLY on this data: " + string(payload)
}

// truncateToBudget trims the prompt to the configured token budget using the
// model's tokenizer. Encoder setup failures leave the prompt untouched.
func (c *Composer) truncateToBudget(prompt string) string {
	if c.cfg.PromptTokenBudget <= 0 {
		return prompt
	}
	c.encoderOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel(c.cfg.Model)
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
		}
		if err != nil {
			c.logger.Warn("tokenizer unavailable, prompt budget disabled", "error", err)
			return
		}
		c.encoder = enc
	})
	if c.encoder == nil {
		return prompt
	}
	tokens := c.encoder.Encode(prompt, nil, nil)
	if len(tokens) <= c.cfg.PromptTokenBudget {
		return prompt
	}
	return c.encoder.Decode(tokens[:c.cfg.PromptTokenBudget])
}

func parseNarrative(raw string) (Narrative, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	sanitized = strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))

	var wire struct {
		Message     string          `json:"message"`
		Explanation string          `json:"explanation"`
		Insights    json.RawMessage `json:"insights"`
		Tips        json.RawMessage `json:"tips"`
	}
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return Narrative{}, err
	}

	insights, err := coerceStringArray(wire.Insights)
	if err != nil {
		return Narrative{}, err
	}
	tips, err := coerceStringArray(wire.Tips)
	if err != nil {
		return Narrative{}, err
	}
	out := Narrative{
		Message:     strings.TrimSpace(wire.Message),
		Explanation: strings.TrimSpace(wire.Explanation),
		Insights:    normalizeList(insights),
		Tips:        normalizeList(tips),
	}
	if out.Message == "" {
		return Narrative{}, errors.New("message missing")
	}
	return out, nil
}

func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		if strings.TrimSpace(single) == "" {
			return nil, nil
		}
		return []string{single}, nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		return many, nil
	default:
		return nil, errors.New("unsupported narrative array format")
	}
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{})
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

// composeFallback phrases the reply without an LLM.
func (c *Composer) composeFallback(travel intent.TravelIntent, result *recommend.Result) Narrative {
	destination := travel.Destination
	if destination == "" {
		destination = "your destination"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is what I'd pack for %s.", destination)

	var tips []string
	if result != nil && result.Climate != nil && result.Climate.CurrentMonth != nil {
		month := result.Climate.CurrentMonth
		fmt.Fprintf(&sb, " Expect %s (%s).", month.Description, month.TempRange)
		if month.Clothing != "" {
			tips = append(tips, "Pack for the weather: "+month.Clothing)
		}
	}

	var insights []string
	if result != nil {
		switch picks := topNames(result.Products, 3); len(picks) {
		case 0:
			sb.WriteString(" I couldn't find matching items in the catalog right now.")
		case 1:
			fmt.Fprintf(&sb, " My top pick is %s.", picks[0])
		default:
			fmt.Fprintf(&sb, " Good options include %s.", joinNames(picks))
		}
		if len(result.TaboosApplied) > 0 {
			insights = append(insights,
				"Some items were left out to respect local norms around "+strings.Join(result.TaboosApplied, ", ")+".")
		}
	}
	if travel.CulturalEvent != "" {
		insights = append(insights, "Traveling during "+travel.CulturalEvent+": festive and modest outfits rank higher.")
	}
	tips = append(tips, "Check local dress norms before visiting religious sites.")

	return Narrative{
		Message:     sb.String(),
		Explanation: "Picks are ranked by cultural fit and filtered for the season.",
		Insights:    insights,
		Tips:        tips,
	}
}

func topNames(items []recommend.ScoredProduct, limit int) []string {
	names := make([]string, 0, limit)
	for _, item := range items {
		names = append(names, item.Product.Name)
		if len(names) == limit {
			break
		}
	}
	return names
}

func joinNames(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
