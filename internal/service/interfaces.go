package service

import (
	"context"
	"encoding/json"
)

// ModelInfo describes one model advertised by the provider
type ModelInfo struct {
	Name             string
	SupportedActions []string
}

// GenerationRequest is a single provider-neutral content generation call
type GenerationRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Temperature       float32
	ResponseMIMEType  string
}

// ModelLister lists the models available to the configured credential
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// ContentGenerator produces the textual reply for a generation request
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req GenerationRequest) (string, error)
}

// Provider is the hosted model service used for discovery and generation
type Provider interface {
	ModelLister
	ContentGenerator
}

// INutritionService defines the interface for nutrition analysis
type INutritionService interface {
	Analyze(ctx context.Context, query string) (json.RawMessage, error)
	Model() string
}
