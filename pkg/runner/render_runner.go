package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-deck-kit/pkg/asset"
	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/domain"
	"github.com/shouni/go-deck-kit/pkg/publisher"
	"github.com/shouni/go-deck-kit/pkg/renderer"

	"golang.org/x/sync/errgroup"
)

// SlideRenderer はスライドと共有スタイルシートを描画する契約です。
type SlideRenderer interface {
	RenderSlide(slide domain.Slide, paletteName string) renderer.Document
	RenderStylesheet(paletteName string) renderer.Document
}

// DeckRenderRunner は、アウトラインの全スライドを並列に描画し、スライド番号順に揃えます。
type DeckRenderRunner struct {
	cfg      config.Config
	renderer SlideRenderer
	writer   publisher.OutputWriter
}

// NewDeckRenderRunner は、依存関係を注入して初期化します。
func NewDeckRenderRunner(cfg config.Config, r SlideRenderer, w publisher.OutputWriter) *DeckRenderRunner {
	return &DeckRenderRunner{
		cfg:      cfg,
		renderer: r,
		writer:   w,
	}
}

// Run はアウトラインを正規化したうえで各スライドを描画し、共有スタイルシートと合わせて返します。
func (r *DeckRenderRunner) Run(ctx context.Context, outline *domain.Outline, paletteName string) (renderer.DocumentSet, error) {
	if outline == nil {
		return renderer.DocumentSet{}, fmt.Errorf("アウトラインが指定されていません")
	}

	normalized := outline.Normalize()
	docs := make([]renderer.Document, len(normalized.Slides))

	eg, egCtx := errgroup.WithContext(ctx)
	if r.cfg.RenderConcurrency > 0 {
		eg.SetLimit(r.cfg.RenderConcurrency)
	}

	for i, slide := range normalized.Slides {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			docs[i] = r.renderer.RenderSlide(slide, paletteName)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return renderer.DocumentSet{}, fmt.Errorf("スライドの描画が中断されました: %w", err)
	}

	slog.InfoContext(ctx, "Successfully rendered slides", "count", len(docs), "palette", domain.LookupPalette(paletteName).Name)
	return renderer.DocumentSet{
		Title:      normalized.Title,
		Slides:     docs,
		Stylesheet: r.renderer.RenderStylesheet(paletteName),
	}, nil
}

// RunAndSave はスライドとスタイルシートを描画し、outputDir に保存したパスを返します。
func (r *DeckRenderRunner) RunAndSave(ctx context.Context, outline *domain.Outline, paletteName, outputDir string) ([]string, error) {
	set, err := r.Run(ctx, outline, paletteName)
	if err != nil {
		return nil, err
	}

	files := append([]renderer.Document{set.Stylesheet}, set.Slides...)
	paths := make([]string, 0, len(files))
	for _, doc := range files {
		p, err := asset.ResolveOutputPath(outputDir, doc.Name)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}

		slog.InfoContext(ctx, "文書を保存しています", "path", p)
		if err := r.writer.Write(ctx, p, doc.Content); err != nil {
			return nil, fmt.Errorf("%s の保存に失敗しました: %w", doc.Name, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}
