package ai_analysis

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAIService(endpoint string) *aiAnalysisService {
	return NewAIAnalysisService(&config.InternalConfig{
		AIAnalysis: config.AppAIAnalysis{
			BaseUrl:              endpoint,
			ApiKey:               "sk-test",
			Model:                "vision-model",
			RequestTimeoutInSecs: 5,
		},
	}, zap.NewNop()).(*aiAnalysisService)
}

func TestAIAnalysisService_AnalyzeImage(t *testing.T) {
	t.Run("sends image and prompt", func(t *testing.T) {
		var received requests.ChatCompletion
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &received)
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Caries on tooth 36.  "}}]}`))
		}))
		defer server.Close()

		service := newTestAIService(server.URL)
		result, err := service.AnalyzeImage(context.Background(), "https://minio.test/x.png?sig=1", "Check caries")

		require.NoError(t, err)
		assert.Equal(t, "Caries on tooth 36.", result)
		assert.Equal(t, "Bearer sk-test", auth)
		assert.Equal(t, "vision-model", received.Model)
		require.Len(t, received.Messages, 1)
		require.Len(t, received.Messages[0].Content, 2)
		assert.Equal(t, "Check caries", received.Messages[0].Content[0].Text)
		require.NotNil(t, received.Messages[0].Content[1].ImageURL)
		assert.Equal(t, "https://minio.test/x.png?sig=1", received.Messages[0].Content[1].ImageURL.URL)
	})

	t.Run("blank prompt falls back to default", func(t *testing.T) {
		var received requests.ChatCompletion
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &received)
			w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
		}))
		defer server.Close()

		_, err := newTestAIService(server.URL).AnalyzeImage(context.Background(), "https://minio.test/x.png", "  ")

		require.NoError(t, err)
		assert.Equal(t, defaultAnalysisPrompt, received.Messages[0].Content[0].Text)
	})

	t.Run("provider error is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer server.Close()

		_, err := newTestAIService(server.URL).AnalyzeImage(context.Background(), "https://minio.test/x.png", "")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "rate limited")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		_, err := newTestAIService(server.URL).AnalyzeImage(context.Background(), "https://minio.test/x.png", "")

		assert.Error(t, err)
	})
}
