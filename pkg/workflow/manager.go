package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/generator"
	"github.com/shouni/go-deck-kit/pkg/parser"
	"github.com/shouni/go-deck-kit/pkg/prompts"
	"github.com/shouni/go-deck-kit/pkg/publisher"

	"golang.org/x/time/rate"
)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg             config.Config
	aiClient        generator.ContentGenerator
	outlinePrompt   prompts.OutlinePromptBuilder
	writer          publisher.OutputWriter
	observer        generator.Observer
	limiter         *rate.Limiter
	outlineProvider generator.OutlineProvider
}

// New は、設定を基に新しい Manager を初期化します。
// オフラインモードでない場合、API キーがなければ ErrMissingAPIKey を返します。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	cfg := args.Config

	aiClient, err := resolveAIClient(ctx, cfg, args.AIClient)
	if err != nil {
		return nil, err
	}

	oPrompt, err := initializeOutlinePrompt(args.OutlinePrompt)
	if err != nil {
		return nil, err
	}

	writer := args.Writer
	if writer == nil {
		writer = publisher.LocalWriter{}
	}

	m := &Manager{
		cfg:           cfg,
		aiClient:      aiClient,
		outlinePrompt: oPrompt,
		writer:        writer,
		observer:      args.Observer,
		limiter:       newLimiter(cfg.RateInterval, cfg.RateBurst),
	}
	m.outlineProvider = m.buildOutlineGenerator()
	return m, nil
}

// Config は Manager が使用している設定を返します。
func (m *Manager) Config() config.Config {
	return m.cfg
}

// resolveAIClient は注入されたクライアント、オフライン指定、API キーの順に AI クライアントを決定します。
// オフラインの場合は nil を返し、生成は常にフォールバックになります。
func resolveAIClient(ctx context.Context, cfg config.Config, injected generator.ContentGenerator) (generator.ContentGenerator, error) {
	if injected != nil {
		return injected, nil
	}
	if cfg.Offline {
		slog.Info("オフラインモードで起動します。アウトラインは常にフォールバックで生成されます")
		return nil, nil
	}
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return initializeAIClient(ctx, cfg.GeminiAPIKey)
}

// initializeOutlinePrompt はアウトラインのプロンプトビルダーを初期化します。
// 引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializeOutlinePrompt(outlinePrompt prompts.OutlinePromptBuilder) (prompts.OutlinePromptBuilder, error) {
	if outlinePrompt != nil {
		return outlinePrompt, nil
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("TextPromptBuilder の新規作成に失敗しました: %w", err)
	}

	return pb, nil
}

// buildOutlineGenerator はレートリミッターと応答パーサーを組み込んだ OutlineGenerator を作成します。
func (m *Manager) buildOutlineGenerator() *generator.OutlineGenerator {
	p := parser.NewOutlineParser(parser.Limits{
		MaxResponseBytes: m.cfg.MaxResponseBytes,
		MaxNestingDepth:  m.cfg.MaxNestingDepth,
	})

	return generator.NewOutlineGenerator(m.aiClient, m.outlinePrompt, p, m.limiter, m.cfg.GeminiModel).
		WithObserver(m.observer)
}

func newLimiter(interval time.Duration, burst int) *rate.Limiter {
	if burst <= 0 {
		burst = 1
	}
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Every(interval), burst)
}
