package service

import (
	"context"
	"log"
	"slices"
)

// DefaultModel is used when listing fails or no preferred model is available
const DefaultModel = "models/gemini-flash-latest"

const generateContentAction = "generateContent"

// ModelPriorities is the ordered list of preferred models
var ModelPriorities = []string{
	"models/gemini-flash-latest",
	"models/gemini-2.0-flash-lite-preview-02-05",
	"models/gemini-2.0-flash-exp",
	"models/gemini-pro-latest",
}

// SelectModel picks the first preferred model that supports content generation.
// Listing failures are logged and never returned.
func SelectModel(ctx context.Context, lister ModelLister) string {
	log.Println("[ModelSelector] Searching for available models...")

	models, err := lister.ListModels(ctx)
	if err != nil {
		log.Printf("[ModelSelector] Error listing models: %v", err)
		return DefaultModel
	}

	chosen := selectFrom(models, ModelPriorities)
	log.Printf("[ModelSelector] Selected model: %s", chosen)
	return chosen
}

func selectFrom(models []ModelInfo, priorities []string) string {
	available := make(map[string]struct{}, len(models))
	for _, m := range models {
		if slices.Contains(m.SupportedActions, generateContentAction) {
			available[m.Name] = struct{}{}
		}
	}

	for _, p := range priorities {
		if _, ok := available[p]; ok {
			return p
		}
	}
	return DefaultModel
}
