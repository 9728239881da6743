package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/parser"
	"github.com/shouni/go-deck-kit/pkg/prompts"

	"golang.org/x/time/rate"
)

// 応答取得の段階で失敗した場合のステージ名です。解析段階のステージ名は parser パッケージで定義しています。
const (
	StagePrompt    = "prompt"
	StageRateLimit = "rate_limit"
	StageTransport = "transport"
)

// OutlineGenerator は、言語モデルにアウトラインを問い合わせ、失敗時はフォールバックに切り替えます。
type OutlineGenerator struct {
	client        ContentGenerator
	promptBuilder prompts.OutlinePromptBuilder
	parser        parser.Parser
	limiter       *rate.Limiter
	model         string
	observer      Observer
}

// NewOutlineGenerator は OutlineGenerator の新しいインスタンスを初期化します。
// client が nil の場合はモデルを呼び出さず、常にフォールバックを返します。
func NewOutlineGenerator(
	client ContentGenerator,
	pb prompts.OutlinePromptBuilder,
	p parser.Parser,
	limiter *rate.Limiter,
	model string,
) *OutlineGenerator {
	return &OutlineGenerator{
		client:        client,
		promptBuilder: pb,
		parser:        p,
		limiter:       limiter,
		model:         model,
		observer:      nopObserver{},
	}
}

// WithObserver は計測用のフックを設定します。
func (g *OutlineGenerator) WithObserver(o Observer) *OutlineGenerator {
	if o != nil {
		g.observer = o
	}
	return g
}

// Generate はアウトラインを生成します。エラーは返さず、どの段階で失敗してもフォールバックを返します。
func (g *OutlineGenerator) Generate(ctx context.Context, req domain.PresentationRequest) *domain.Outline {
	logger := slog.With("topic", req.Topic, "slide_count", req.SlideCount)

	if g.client == nil {
		logger.InfoContext(ctx, "AIクライアントが未設定のため、フォールバックのアウトラインを使用します")
		return g.fallback(req)
	}

	outline, stage, err := g.requestOutline(ctx, req)
	if err != nil {
		logger.WarnContext(ctx, "アウトラインの生成に失敗したため、フォールバックに切り替えます", "stage", stage, "error", err)
		g.observer.OutlineFailed(stage)
		return g.fallback(req)
	}

	normalized := outline.Normalize()
	normalized.Source = domain.SourceModel
	if !outline.IsSequential() {
		logger.InfoContext(ctx, "スライド番号を振り直しました", "slides", len(normalized.Slides))
	}
	logger.InfoContext(ctx, "アウトラインを生成しました", "title", normalized.Title, "slides", len(normalized.Slides))
	g.observer.OutlineGenerated(domain.SourceModel)

	return &normalized
}

// requestOutline はプロンプト構築、レート制御、モデル呼び出し、応答解析を順に行います。
// 失敗時は失敗したステージ名を併せて返します。
func (g *OutlineGenerator) requestOutline(ctx context.Context, req domain.PresentationRequest) (*domain.Outline, string, error) {
	prompt, err := g.promptBuilder.Build(prompts.ModeOutline, prompts.NewTemplateData(req))
	if err != nil {
		return nil, StagePrompt, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, StageRateLimit, fmt.Errorf("レートリミッターの待機に失敗しました: %w", err)
		}
	}

	slog.InfoContext(ctx, "OutlineGenerator: Calling Gemini API", "model", g.model, "prompt_length", len(prompt))
	raw, err := g.client.GenerateText(ctx, prompt, g.model)
	if err != nil {
		return nil, StageTransport, fmt.Errorf("AIモデルの呼び出しに失敗しました: %w", err)
	}

	outline, err := g.parser.Parse(raw)
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return nil, pe.Stage, err
		}
		return nil, parser.StageDecode, err
	}

	return outline, "", nil
}

func (g *OutlineGenerator) fallback(req domain.PresentationRequest) *domain.Outline {
	outline := BuildFallbackOutline(req)
	g.observer.OutlineGenerated(domain.SourceFallback)
	return outline
}
