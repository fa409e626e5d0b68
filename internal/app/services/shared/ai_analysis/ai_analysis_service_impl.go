package ai_analysis

import (
	"bytes"
	"context"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultAnalysisPrompt = "You are assisting a dentist. Describe the notable findings in this dental image " +
		"(caries, restorations, bone level, periapical lesions, anomalies). Be concise and state uncertainty."
	maxAnalysisTokens = 800
	maxErrorBodyBytes = 2048
)

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type aiAnalysisService struct {
	Endpoint   string
	ApiKey     string
	ModelName  string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewAIAnalysisService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AIAnalysisService {
	cfg := internalConfig.AIAnalysis

	timeout := time.Duration(cfg.RequestTimeoutInSecs) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.MaxRequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), cfg.MaxRequestsPerSecond)
	}

	return &aiAnalysisService{
		Endpoint:   cfg.BaseUrl,
		ApiKey:     cfg.ApiKey,
		ModelName:  cfg.Model,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (s *aiAnalysisService) Model() string {
	return s.ModelName
}

// AnalyzeImage posts the image URL and prompt as one chat-completions user
// message and returns the first choice text.
func (s *aiAnalysisService) AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("aiAnalysisService.AnalyzeImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if strings.TrimSpace(prompt) == "" {
		prompt = defaultAnalysisPrompt
	}

	if err := s.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrRateLimitWait(err)
	}

	body, err := json.Marshal(&requests.ChatCompletion{
		Model:     s.ModelName,
		MaxTokens: maxAnalysisTokens,
		Messages: []requests.ChatMessage{
			{
				Role: "user",
				Content: []requests.ChatContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &requests.ChatImageURL{URL: imageURL}},
				},
			},
		},
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+s.ApiKey)

	httpResponse, err := s.HTTPClient.Do(httpRequest)
	if err != nil {
		s.Log.Error("aiAnalysisService.AnalyzeImage error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	raw, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		if len(raw) > maxErrorBodyBytes {
			raw = raw[:maxErrorBodyBytes]
		}
		s.Log.Error("aiAnalysisService.AnalyzeImage provider rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, httpResponse.StatusCode),
		)
		return "", exceptions.ErrAIAnalysis(nil, httpResponse.StatusCode, string(raw))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", exceptions.ErrAIAnalysisEmpty(err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", exceptions.ErrAIAnalysisEmpty(nil)
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
