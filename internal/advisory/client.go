// Package advisory calls an external AI model for a qualitative ride risk
// rating. It is a collaborator of the presentation layer only — nothing in
// the backend services depends on its result, and any failure degrades to a
// fixed low-risk verdict rather than an error.
package advisory

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"boleia/internal/config"
)

// Insight is the advisory verdict for one ride.
type Insight struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Tip     string `json:"tip"`
}

// Route describes the ride being assessed.
type Route struct {
	PickupName  string
	DropoffName string
	DistanceKm  float64
}

// fallback is served whenever the external call cannot produce a usable
// verdict: missing key, transport failure, or unparseable output.
var fallback = Insight{
	Level:   "low",
	Message: "Rota verificada",
	Tip:     "Use sempre o capacete e segure-se bem.",
}

// Client wraps the model API. A nil api (no key configured) is valid and
// always serves the fallback.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg config.AdvisoryConfig) *Client {
	c := &Client{model: cfg.Model}
	if cfg.APIKey == "" {
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(clientCfg)
	return c
}

// Insights asks the model for a safety assessment of the route at the given
// time of day and weather. The returned level is one of low, medium, high.
func (c *Client) Insights(ctx context.Context, route Route, timeOfDay, weather string) Insight {
	if c.api == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Analyze a moto-taxi ride in Mozambique (Inhambane/Maxixe region).
Route: from %s to %s.
Distance: %.1f km.
Time: %s.
Weather: %s.

Respond with a JSON object: {"level": "low"|"medium"|"high", "message": short status (max 10 words), "tip": specific safety tip (max 15 words)}.`,
		route.PickupName, route.DropoffName, route.DistanceKm, timeOfDay, weather)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return fallback
	}

	var insight Insight
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &insight); err != nil {
		return fallback
	}

	switch insight.Level {
	case "low", "medium", "high":
		return insight
	default:
		return fallback
	}
}
