package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/generator"
	"github.com/shouni/go-deck-kit/pkg/publisher"
)

// DeckOutlineRunner は、リクエストからアウトラインを生成し、必要に応じて JSON として保存します。
type DeckOutlineRunner struct {
	cfg       config.Config
	generator generator.OutlineProvider
	writer    publisher.OutputWriter
}

// NewDeckOutlineRunner は依存関係を注入して初期化します。
func NewDeckOutlineRunner(
	cfg config.Config,
	gen generator.OutlineProvider,
	w publisher.OutputWriter,
) *DeckOutlineRunner {
	return &DeckOutlineRunner{
		cfg:       cfg,
		generator: gen,
		writer:    w,
	}
}

// Run はアウトラインを生成します。モデルが使えない場合もフォールバックのアウトラインを返します。
func (r *DeckOutlineRunner) Run(ctx context.Context, req domain.PresentationRequest) *domain.Outline {
	slog.InfoContext(ctx, "OutlineRunner: Generating outline", "topic", req.Topic, "model", r.cfg.GeminiModel)
	outline := r.generator.Generate(ctx, req)
	slog.InfoContext(ctx, "OutlineRunner: Outline ready", "source", outline.Source, "slides", len(outline.Slides))
	return outline
}

// RunAndSave はアウトラインを生成し、整形済み JSON として outputPath に保存します。
func (r *DeckOutlineRunner) RunAndSave(ctx context.Context, req domain.PresentationRequest, outputPath string) (*domain.Outline, error) {
	outline := r.Run(ctx, req)

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("アウトラインのJSON変換に失敗しました: %w", err)
	}
	if err := r.writer.Write(ctx, outputPath, data); err != nil {
		return nil, fmt.Errorf("アウトラインの保存に失敗しました (path: %s): %w", outputPath, err)
	}

	slog.InfoContext(ctx, "アウトラインを保存しました", "path", outputPath)
	return outline, nil
}
