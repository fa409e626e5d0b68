package contracts

import "context"

type AIAnalysisService interface {
	AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error)
	Model() string
}
