package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-deck-kit/pkg/generator"

	"github.com/shouni/go-gemini-client/gemini"
	"google.golang.org/genai"
)

// geminiTextClient は gemini.GenerativeModel を generator.ContentGenerator に適合させます。
type geminiTextClient struct {
	model gemini.GenerativeModel
}

// GenerateText は gemini の GenerateContent(ctx, modelName, prompt) の引数順に並べ替えて呼び出します。
func (c *geminiTextClient) GenerateText(ctx context.Context, prompt, model string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, model, prompt)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (generator.ContentGenerator, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return &geminiTextClient{model: aiClient}, nil
}
