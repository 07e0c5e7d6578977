package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SystemInstruction describes the exact fields the model must return
const SystemInstruction = `You are an expert nutritionist. Analyze the food provided.
Output JSON with exactly these fields:
- item_name (string)
- calories (integer)
- protein (float)
- carbs (float)
- fat (float)
- health_tip (string)`

const (
	generationTemperature = 0.7
	jsonMIMEType          = "application/json"
)

// NutritionService asks the provider for a nutrition estimate of a food description
type NutritionService struct {
	generator ContentGenerator
	model     string
}

// NewNutritionService creates a new NutritionService bound to a single model
func NewNutritionService(generator ContentGenerator, model string) *NutritionService {
	return &NutritionService{
		generator: generator,
		model:     model,
	}
}

// Model returns the model identifier used for every request
func (s *NutritionService) Model() string {
	return s.model
}

// Analyze forwards the query to the model and returns its reply as parsed JSON.
// Generation and parse failures are returned as plain errors.
func (s *NutritionService) Analyze(ctx context.Context, query string) (json.RawMessage, error) {
	text, err := s.generator.GenerateContent(ctx, GenerationRequest{
		Model:             s.model,
		SystemInstruction: SystemInstruction,
		Prompt:            query,
		Temperature:       generationTemperature,
		ResponseMIMEType:  jsonMIMEType,
	})
	if err != nil {
		return nil, err
	}

	return ParseReply(text)
}

// CleanResponse strips markdown JSON code fences and surrounding whitespace
func CleanResponse(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseReply cleans the model's reply and checks that it is a JSON value
func ParseReply(text string) (json.RawMessage, error) {
	cleaned := CleanResponse(text)

	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("failed to parse model reply: invalid JSON %q", truncate(cleaned, 200))
	}

	return json.RawMessage(cleaned), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
