package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/macroai/backend/config"
	"github.com/macroai/backend/internal/mocks"
	"github.com/macroai/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNew(t *testing.T) {
	provider := new(mocks.MockProvider)
	provider.On("ListModels", mock.Anything).Return(
		[]service.ModelInfo{{Name: "models/gemini-pro-latest", SupportedActions: []string{"generateContent"}}}, nil)

	chosen := service.SelectModel(context.Background(), provider)
	cfg := &config.Config{ServerPort: "8080"}
	srv := New(cfg, service.NewNutritionService(provider, chosen))
	require.NotNil(t, srv)
	assert.Equal(t, ":8080", srv.http.Addr)

	// Test health check endpoint
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"MacroAI is running","model":"models/gemini-pro-latest"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Analyze through the full middleware chain
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/analyze", nil)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Unknown routes
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/nope", nil)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().(*net.TCPAddr)
	require.NoError(t, l.Close())

	svc := new(mocks.MockNutritionService)
	svc.On("Model").Return(service.DefaultModel)

	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: strconv.Itoa(addr.Port)}
	srv := New(cfg, svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStartReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	addr := l.Addr().(*net.TCPAddr)

	svc := new(mocks.MockNutritionService)
	svc.On("Model").Return(service.DefaultModel)

	srv := New(&config.Config{ServerHost: "127.0.0.1", ServerPort: strconv.Itoa(addr.Port)}, svc)
	assert.Error(t, srv.Start(context.Background()))
}

