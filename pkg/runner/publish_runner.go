package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/shouni/go-deck-kit/pkg/config"
	"github.com/shouni/go-deck-kit/pkg/renderer"
)

// DeckExporter は描画済みの文書からデッキを生成する契約です。
type DeckExporter interface {
	Export(ctx context.Context, docs renderer.DocumentSet, dest string) error
}

// DefaultPublishRunner は pkg/publisher を利用した標準実装です。
type DefaultPublishRunner struct {
	cfg      config.Config
	exporter DeckExporter
}

func NewDefaultPublishRunner(cfg config.Config, exporter DeckExporter) *DefaultPublishRunner {
	return &DefaultPublishRunner{
		cfg:      cfg,
		exporter: exporter,
	}
}

// Run はデッキを dest に書き出します。失敗時は publisher.ErrExportFailed をラップしたエラーを返します。
func (pr *DefaultPublishRunner) Run(ctx context.Context, docs renderer.DocumentSet, dest string) error {
	start := time.Now()
	if err := pr.exporter.Export(ctx, docs, dest); err != nil {
		return err
	}
	slog.InfoContext(ctx, "PublishRunner: Deck exported", "dest", dest, "slides", len(docs.Slides), "elapsed", time.Since(start))
	return nil
}
