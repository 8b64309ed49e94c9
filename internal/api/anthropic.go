package api

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-dashboard/internal/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const recommendationToolName = "record_recommendations"

// recommendationTool constrains the model to emit a RecommendationBundle.
// Forced tool use plays the role the original's generateObject schema did;
// the bundle is still re-validated locally after decoding.
var recommendationTool = anthropic.ToolParam{
	Name:        recommendationToolName,
	Description: anthropic.String("Record 6-8 diverse activity recommendations plus weather, location and strategy summaries."),
	InputSchema: anthropic.ToolInputSchemaParam{
		Properties: map[string]any{
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"category":    map[string]any{"type": "string", "enum": []string{"Outdoor Adventure", "Indoor Activity", "Cultural Event", "Food & Dining", "Wellness", "Entertainment"}},
						"description": map[string]any{"type": "string"},
						"reasoning":   map[string]any{"type": "string"},
						"suitabilityScore": map[string]any{
							"type": "number", "minimum": 1, "maximum": 10,
						},
						"weatherCompatibility": map[string]any{"type": "string", "enum": []string{"Perfect", "Good", "Fair", "Poor"}},
						"timeOfDay":            map[string]any{"type": "string", "enum": []string{"Morning", "Afternoon", "Evening", "All Day"}},
						"duration":             map[string]any{"type": "string"},
						"priceRange":           map[string]any{"type": "string", "enum": []string{"Free", "$", "$$", "$$$"}},
						"tags":                 map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"isEventBased":         map[string]any{"type": "boolean"},
						"eventId":              map[string]any{"type": "string"},
					},
					"required": []string{
						"title", "category", "description", "reasoning", "suitabilityScore",
						"weatherCompatibility", "timeOfDay", "duration", "priceRange", "tags", "isEventBased",
					},
				},
			},
			"weatherSummary":        map[string]any{"type": "string"},
			"locationInsights":      map[string]any{"type": "string"},
			"overallRecommendation": map[string]any{"type": "string"},
		},
		Required: []string{"recommendations", "weatherSummary", "locationInsights", "overallRecommendation"},
	},
}

// RecommendationModel wraps the Anthropic client.
type RecommendationModel struct {
	client anthropic.Client
	model  string
}

func NewRecommendationModel(apiKey, model string) *RecommendationModel {
	return &RecommendationModel{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (m *RecommendationModel) ModelID() string {
	return m.model
}

// Generate submits the analysis prompt and decodes the forced tool call
// into a validated RecommendationBundle.
func (m *RecommendationModel) Generate(ctx context.Context, prompt string) (*models.RecommendationBundle, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(m.model),
		MaxTokens:   4000,
		Temperature: anthropic.Float(0.7),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Tools:      []anthropic.ToolUnionParam{{OfTool: &recommendationTool}},
		ToolChoice: anthropic.ToolChoiceUnionParam{OfTool: &anthropic.ToolChoiceToolParam{Name: recommendationToolName}},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	for _, block := range msg.Content {
		variant, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok || variant.Name != recommendationToolName {
			continue
		}
		var bundle models.RecommendationBundle
		if err := json.Unmarshal([]byte(variant.JSON.Input.Raw()), &bundle); err != nil {
			return nil, fmt.Errorf("invalid model output: %w", err)
		}
		if err := bundle.Validate(); err != nil {
			return nil, err
		}
		return &bundle, nil
	}
	return nil, fmt.Errorf("model returned no %s tool call", recommendationToolName)
}

// Ping issues a minimal text generation to confirm connectivity.
func (m *RecommendationModel) Ping(ctx context.Context) (string, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(m.model),
		MaxTokens:   256,
		Temperature: anthropic.Float(0.3),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(
				"Generate a brief test message to confirm the API integration is working correctly.")),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			return text.Text, nil
		}
	}
	return "", fmt.Errorf("model returned no text")
}
