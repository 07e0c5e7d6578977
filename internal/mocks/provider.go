package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/macroai/backend/internal/service"
)

// MockProvider is a mock implementation of service.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ListModels(ctx context.Context) ([]service.ModelInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ModelInfo), args.Error(1)
}

func (m *MockProvider) GenerateContent(ctx context.Context, req service.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockNutritionService is a mock implementation of service.INutritionService
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) Analyze(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockNutritionService) Model() string {
	args := m.Called()
	return args.String(0)
}
