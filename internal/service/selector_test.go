package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/macroai/backend/internal/mocks"
	"github.com/macroai/backend/internal/service"
)

func generating(names ...string) []service.ModelInfo {
	models := make([]service.ModelInfo, 0, len(names))
	for _, n := range names {
		models = append(models, service.ModelInfo{Name: n, SupportedActions: []string{"countTokens", "generateContent"}})
	}
	return models
}

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name   string
		models []service.ModelInfo
		err    error
		want   string
	}{
		{
			name:   "first priority wins",
			models: generating("models/gemini-pro-latest", "models/gemini-flash-latest"),
			want:   "models/gemini-flash-latest",
		},
		{
			name:   "priority order over listing order",
			models: generating("models/gemini-pro-latest", "models/gemini-2.0-flash-exp"),
			want:   "models/gemini-2.0-flash-exp",
		},
		{
			name:   "lite preview",
			models: generating("models/gemini-2.0-flash-lite-preview-02-05", "models/gemini-pro-latest"),
			want:   "models/gemini-2.0-flash-lite-preview-02-05",
		},
		{
			name: "models without generateContent are ignored",
			models: append([]service.ModelInfo{
				{Name: "models/gemini-flash-latest", SupportedActions: []string{"embedContent"}},
			}, generating("models/gemini-pro-latest")...),
			want: "models/gemini-pro-latest",
		},
		{
			name:   "no match falls back",
			models: generating("models/text-bison-001"),
			want:   service.DefaultModel,
		},
		{
			name:   "empty listing falls back",
			models: []service.ModelInfo{},
			want:   service.DefaultModel,
		},
		{
			name: "listing error falls back",
			err:  errors.New("Error 403, Message: API key not valid"),
			want: service.DefaultModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mocks.MockProvider)
			if tt.err != nil {
				provider.On("ListModels", mock.Anything).Return(nil, tt.err)
			} else {
				provider.On("ListModels", mock.Anything).Return(tt.models, nil)
			}

			got := service.SelectModel(context.Background(), provider)
			assert.Equal(t, tt.want, got)
			provider.AssertExpectations(t)
		})
	}
}

func TestDefaultModelIsFirstPriority(t *testing.T) {
	assert.Equal(t, service.DefaultModel, service.ModelPriorities[0])
	assert.Len(t, service.ModelPriorities, 4)
}
